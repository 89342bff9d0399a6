package runtime

import (
	"fmt"

	"github.com/geoknoesis/rdf-go/rdf"
)

// Property accessors implement the read semantics of generated wrapper
// getters. Generated code composes one of these with a Lazy cell; the
// accessor itself is stateless.

// RequiredLiteral reads the single required literal value at the
// predicate. Absence is an immediate, descriptive error; when several
// values are present the first convertible one wins.
func RequiredLiteral[T any](h Handle, predicate rdf.IRI, conv func(rdf.Literal) (T, error)) (T, error) {
	var zero T
	literals := h.Literals(predicate)
	if len(literals) == 0 {
		return zero, fmt.Errorf("%w: <%s> on %s", ErrRequiredAbsent, predicate.Value, h.Node())
	}
	return conv(literals[0])
}

// OptionalLiteral reads the single optional literal value at the
// predicate. Absence yields nil.
func OptionalLiteral[T any](h Handle, predicate rdf.IRI, conv func(rdf.Literal) (T, error)) (*T, error) {
	literals := h.Literals(predicate)
	if len(literals) == 0 {
		return nil, nil
	}
	v, err := conv(literals[0])
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// LiteralList reads all literal values at the predicate. In lenient mode
// values whose lexical form fails conversion are dropped; in strict mode
// the first failure aborts the read.
func LiteralList[T any](h Handle, predicate rdf.IRI, conv func(rdf.Literal) (T, error), strict bool) ([]T, error) {
	literals := h.Literals(predicate)
	out := make([]T, 0, len(literals))
	for _, lit := range literals {
		v, err := conv(lit)
		if err != nil {
			if strict {
				return nil, fmt.Errorf("<%s>: %w", predicate.Value, err)
			}
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// RequiredObject materializes the single required nested object at the
// predicate through the registry. The registered factory attaches the
// nested shape's own predicate set to the handle it receives.
func RequiredObject[T any](h Handle, predicate rdf.IRI, classIRI string) (T, error) {
	var zero T
	refs := h.References(predicate)
	if len(refs) == 0 {
		return zero, fmt.Errorf("%w: <%s> on %s", ErrRequiredAbsent, predicate.Value, h.Node())
	}
	return MaterializeAs[T](classIRI, NewHandle(h.Graph(), refs[0]))
}

// OptionalObject materializes the single optional nested object at the
// predicate; absence yields the zero (nil interface) value.
func OptionalObject[T any](h Handle, predicate rdf.IRI, classIRI string) (T, error) {
	var zero T
	refs := h.References(predicate)
	if len(refs) == 0 {
		return zero, nil
	}
	return MaterializeAs[T](classIRI, NewHandle(h.Graph(), refs[0]))
}

// ObjectList materializes every nested object at the predicate, one
// wrapper per reference.
func ObjectList[T any](h Handle, predicate rdf.IRI, classIRI string) ([]T, error) {
	refs := h.References(predicate)
	out := make([]T, 0, len(refs))
	for _, ref := range refs {
		v, err := MaterializeAs[T](classIRI, NewHandle(h.Graph(), ref))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
