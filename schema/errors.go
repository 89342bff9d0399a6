package schema

import "errors"

// Validation errors. Model.Validate wraps these with the offending shape
// and property, so callers can match with errors.Is.
var (
	// ErrDuplicatePath is returned when two properties of one shape share
	// a predicate IRI.
	ErrDuplicatePath = errors.New("duplicate property path in shape")

	// ErrNameCollision is returned when two properties of one shape
	// normalize to the same Go identifier.
	ErrNameCollision = errors.New("property name collision after normalization")

	// ErrEmptyName is returned when a class or property IRI normalizes
	// to an empty Go identifier, e.g. a path that is only a namespace.
	ErrEmptyName = errors.New("IRI normalizes to an empty identifier")

	// ErrConflictingKind is returned when a property declares both a
	// datatype and a target class, or neither.
	ErrConflictingKind = errors.New("property must declare exactly one of datatype or targetClass")

	// ErrCardinality is returned when minCount exceeds maxCount.
	ErrCardinality = errors.New("minCount exceeds maxCount")

	// ErrMissingTarget is returned when a shape has no target class.
	ErrMissingTarget = errors.New("shape has no target class")
)
