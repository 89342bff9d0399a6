// Package schema defines the immutable ontology model the code generator
// consumes: SHACL shapes with property constraints plus a JSON-LD context.
//
// The model arrives pre-parsed (typically decoded from a JSON document
// produced by a separate extraction step); nothing in this package touches
// SHACL or JSON-LD source documents. All types are plain data. A Model is
// built once per generation run, validated, and treated as read-only from
// then on.
package schema

// Shape is a SHACL node shape constraining instances of a target class.
// One shape produces exactly one generated class family: a domain
// interface, a graph-backed wrapper, and a builder.
type Shape struct {
	// ShapeIRI identifies the shape itself.
	ShapeIRI string `json:"shapeIri"`

	// TargetClass is the IRI of the class whose instances the shape
	// constrains. It names the generated interface.
	TargetClass string `json:"targetClass"`

	// Properties are the property constraints, in declaration order.
	// Order is significant: generated artifacts preserve it.
	Properties []Property `json:"properties"`
}

// Property is a single SHACL property constraint within a shape.
// Exactly one of Datatype and TargetClass is set: Datatype for literal
// values, TargetClass for nested object references.
type Property struct {
	// Path is the predicate IRI. It is the identity key of the property
	// within its shape; duplicates are rejected by Model.Validate.
	Path string `json:"path"`

	// Name is the human-facing property name (sh:name), if declared.
	// When empty, the local name of Path is used instead.
	Name string `json:"name,omitempty"`

	// Description is the sh:description annotation, if declared.
	Description string `json:"description,omitempty"`

	// Datatype is the literal datatype IRI (sh:datatype), if any.
	Datatype string `json:"datatype,omitempty"`

	// TargetClass is the class IRI of nested objects (sh:class), if any.
	TargetClass string `json:"targetClass,omitempty"`

	// MinCount is the minimum cardinality (sh:minCount), nil if unbounded.
	MinCount *int `json:"minCount,omitempty"`

	// MaxCount is the maximum cardinality (sh:maxCount), nil if unbounded.
	MaxCount *int `json:"maxCount,omitempty"`

	// Constraints holds the value restrictions beyond cardinality.
	Constraints Constraints `json:"constraints,omitempty"`
}

// IsList reports whether the property is multi-valued: no maximum
// cardinality, or a maximum above one.
func (p Property) IsList() bool {
	return p.MaxCount == nil || *p.MaxCount > 1
}

// IsRequired reports whether at least one value must be present.
func (p Property) IsRequired() bool {
	return p.MinCount != nil && *p.MinCount >= 1
}

// IsObject reports whether the property references nested objects rather
// than literals.
func (p Property) IsObject() bool {
	return p.TargetClass != ""
}

// Constraints groups the non-cardinality restrictions of a property.
// Pointer fields distinguish "not declared" from zero values.
type Constraints struct {
	// String constraints.
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Numeric range constraints.
	MinInclusive *float64 `json:"minInclusive,omitempty"`
	MaxInclusive *float64 `json:"maxInclusive,omitempty"`
	MinExclusive *float64 `json:"minExclusive,omitempty"`
	MaxExclusive *float64 `json:"maxExclusive,omitempty"`

	// Value constraints. In enumerates the admissible lexical values;
	// HasValue pins the property to one exact value.
	In       []string `json:"in,omitempty"`
	HasValue string   `json:"hasValue,omitempty"`

	// Node constraints.
	NodeKind            NodeKind `json:"nodeKind,omitempty"`
	QualifiedValueShape string   `json:"qualifiedValueShape,omitempty"`
	QualifiedMinCount   *int     `json:"qualifiedMinCount,omitempty"`
	QualifiedMaxCount   *int     `json:"qualifiedMaxCount,omitempty"`
}

// IsZero reports whether no constraint is declared.
func (c Constraints) IsZero() bool {
	return c.MinLength == nil && c.MaxLength == nil && c.Pattern == "" &&
		c.MinInclusive == nil && c.MaxInclusive == nil &&
		c.MinExclusive == nil && c.MaxExclusive == nil &&
		len(c.In) == 0 && c.HasValue == "" &&
		c.NodeKind == "" && c.QualifiedValueShape == ""
}

// NodeKind restricts the RDF node kind of property values (sh:nodeKind).
type NodeKind string

const (
	NodeKindIRI                NodeKind = "IRI"
	NodeKindBlankNode          NodeKind = "BlankNode"
	NodeKindLiteral            NodeKind = "Literal"
	NodeKindBlankNodeOrIRI     NodeKind = "BlankNodeOrIRI"
	NodeKindBlankNodeOrLiteral NodeKind = "BlankNodeOrLiteral"
	NodeKindIRIOrLiteral       NodeKind = "IRIOrLiteral"
)

// IsValid reports whether the node kind is one of the declared values.
// The empty string ("not declared") is not valid.
func (k NodeKind) IsValid() bool {
	switch k {
	case NodeKindIRI, NodeKindBlankNode, NodeKindLiteral,
		NodeKindBlankNodeOrIRI, NodeKindBlankNodeOrLiteral, NodeKindIRIOrLiteral:
		return true
	default:
		return false
	}
}
