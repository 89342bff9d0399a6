package naming

import (
	"fmt"

	"github.com/geoknoesis/kastor-go/vocabulary/xsd"
)

// Scalar enumerates the Go scalar types literal properties resolve to.
type Scalar int

const (
	ScalarString Scalar = iota
	ScalarInt
	ScalarFloat
	ScalarBool
)

// GoType returns the Go type name for the scalar.
func (s Scalar) GoType() string {
	switch s {
	case ScalarInt:
		return "int"
	case ScalarFloat:
		return "float64"
	case ScalarBool:
		return "bool"
	default:
		return "string"
	}
}

// String returns the scalar's name for diagnostics.
func (s Scalar) String() string { return s.GoType() }

// TypeRef is the resolved target-language type of a property: either a
// scalar for literal properties or a reference to the generated class for
// object properties, wrapped in optional/list per cardinality.
type TypeRef struct {
	// Scalar is the literal mapping; meaningful only when IsClass is false.
	Scalar Scalar

	// ClassIRI is the referenced class; set only when IsClass is true.
	ClassIRI string

	// IsClass marks an object property (reference to a generated type).
	IsClass bool

	// List marks a multi-valued property.
	List bool

	// Optional marks a single-valued property that may be absent.
	Optional bool
}

// ClassName returns the generated type name for a class reference.
func (t TypeRef) ClassName() string { return ClassNameOf(t.ClassIRI) }

// scalarByDatatype maps the recognized XSD datatype IRIs onto scalars.
var scalarByDatatype = map[string]Scalar{
	xsd.String:             ScalarString,
	xsd.AnyURI:             ScalarString,
	xsd.DateTime:           ScalarString,
	xsd.Date:               ScalarString,
	xsd.Time:               ScalarString,
	xsd.Integer:            ScalarInt,
	xsd.Int:                ScalarInt,
	xsd.Long:               ScalarInt,
	xsd.Short:              ScalarInt,
	xsd.NonNegativeInteger: ScalarInt,
	xsd.PositiveInteger:    ScalarInt,
	xsd.Decimal:            ScalarFloat,
	xsd.Double:             ScalarFloat,
	xsd.Float:              ScalarFloat,
	xsd.Boolean:            ScalarBool,
}

// ScalarOf maps a datatype IRI to its scalar. The second result reports
// whether the datatype was recognized; unrecognized datatypes map to
// ScalarString, the caller decides whether that fallback is acceptable.
func ScalarOf(datatype string) (Scalar, bool) {
	s, ok := scalarByDatatype[datatype]
	if !ok {
		return ScalarString, false
	}
	return s, true
}

// ResolveType resolves a property's target-language type from its
// datatype XOR target class plus cardinality bounds. In strict mode an
// unrecognized datatype is an error; in lenient mode it falls back to
// string and the caller is expected to log the fallback.
func ResolveType(datatype, targetClass string, minCount, maxCount *int, strict bool) (TypeRef, error) {
	isList := maxCount == nil || *maxCount > 1
	isRequired := minCount != nil && *minCount >= 1

	ref := TypeRef{
		List:     isList,
		Optional: !isList && !isRequired,
	}

	if targetClass != "" {
		ref.IsClass = true
		ref.ClassIRI = targetClass
		return ref, nil
	}

	scalar, known := ScalarOf(datatype)
	if !known && strict {
		return TypeRef{}, fmt.Errorf("unrecognized datatype %s", datatype)
	}
	ref.Scalar = scalar
	return ref, nil
}
