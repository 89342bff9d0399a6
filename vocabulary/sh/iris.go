package sh

// Namespace is the base IRI for the SHACL vocabulary.
const Namespace = "http://www.w3.org/ns/shacl#"

// Node kind IRIs, the admissible values of a node-kind constraint.
const (
	// NodeKindIRI constrains values to IRI nodes.
	NodeKindIRI = Namespace + "IRI"

	// NodeKindBlankNode constrains values to blank nodes.
	NodeKindBlankNode = Namespace + "BlankNode"

	// NodeKindLiteral constrains values to literals.
	NodeKindLiteral = Namespace + "Literal"

	// NodeKindBlankNodeOrIRI constrains values to blank nodes or IRIs.
	NodeKindBlankNodeOrIRI = Namespace + "BlankNodeOrIRI"

	// NodeKindBlankNodeOrLiteral constrains values to blank nodes or literals.
	NodeKindBlankNodeOrLiteral = Namespace + "BlankNodeOrLiteral"

	// NodeKindIRIOrLiteral constrains values to IRIs or literals.
	NodeKindIRIOrLiteral = Namespace + "IRIOrLiteral"
)

// Constraint component IRIs referenced by violation records.
const (
	// MinCountConstraintComponent identifies sh:minCount violations.
	MinCountConstraintComponent = Namespace + "MinCountConstraintComponent"

	// MaxCountConstraintComponent identifies sh:maxCount violations.
	MaxCountConstraintComponent = Namespace + "MaxCountConstraintComponent"

	// MinLengthConstraintComponent identifies sh:minLength violations.
	MinLengthConstraintComponent = Namespace + "MinLengthConstraintComponent"

	// MaxLengthConstraintComponent identifies sh:maxLength violations.
	MaxLengthConstraintComponent = Namespace + "MaxLengthConstraintComponent"

	// PatternConstraintComponent identifies sh:pattern violations.
	PatternConstraintComponent = Namespace + "PatternConstraintComponent"

	// InConstraintComponent identifies sh:in violations.
	InConstraintComponent = Namespace + "InConstraintComponent"

	// HasValueConstraintComponent identifies sh:hasValue violations.
	HasValueConstraintComponent = Namespace + "HasValueConstraintComponent"

	// MinInclusiveConstraintComponent identifies sh:minInclusive violations.
	MinInclusiveConstraintComponent = Namespace + "MinInclusiveConstraintComponent"

	// MaxInclusiveConstraintComponent identifies sh:maxInclusive violations.
	MaxInclusiveConstraintComponent = Namespace + "MaxInclusiveConstraintComponent"

	// MinExclusiveConstraintComponent identifies sh:minExclusive violations.
	MinExclusiveConstraintComponent = Namespace + "MinExclusiveConstraintComponent"

	// MaxExclusiveConstraintComponent identifies sh:maxExclusive violations.
	MaxExclusiveConstraintComponent = Namespace + "MaxExclusiveConstraintComponent"
)
