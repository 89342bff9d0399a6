package runtime

import (
	"fmt"
	"strconv"

	"github.com/geoknoesis/rdf-go/rdf"
)

// Literal conversion functions turn lexical forms into the resolved Go
// scalar. Signatures line up with the conv parameter of the literal
// accessors so generated code can pass them directly.

// AsString returns the lexical form unchanged. It never fails.
func AsString(l rdf.Literal) (string, error) {
	return l.Lexical, nil
}

// AsInt parses the lexical form as a base-10 integer.
func AsInt(l rdf.Literal) (int, error) {
	v, err := strconv.Atoi(l.Lexical)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as int", ErrConversion, l.Lexical)
	}
	return v, nil
}

// AsFloat parses the lexical form as a float64.
func AsFloat(l rdf.Literal) (float64, error) {
	v, err := strconv.ParseFloat(l.Lexical, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as float64", ErrConversion, l.Lexical)
	}
	return v, nil
}

// AsBool parses the lexical form as a boolean. The XSD lexical space
// admits "true"/"false" and "1"/"0".
func AsBool(l rdf.Literal) (bool, error) {
	switch l.Lexical {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q as bool", ErrConversion, l.Lexical)
	}
}
