package runtime

import "errors"

var (
	// ErrRequiredAbsent is returned when a required single-valued
	// property has no value in the graph at access time.
	ErrRequiredAbsent = errors.New("required property has no value")

	// ErrUnregistered is returned when no factory is registered for a
	// class IRI.
	ErrUnregistered = errors.New("no wrapper factory registered for class")

	// ErrConversion is returned when a literal's lexical form cannot be
	// converted to the resolved scalar type.
	ErrConversion = errors.New("literal conversion failed")
)
