package runtime

import (
	"fmt"
	"regexp"
	"slices"
	"sync"

	"github.com/geoknoesis/rdf-go/rdf"
)

// Local constraint checks back the fail-fast validation generated into
// builder setters. Each returns a descriptive error naming the property
// and the violated constraint; setters run every applicable check before
// writing anything to the graph.

// patternCache holds compiled patterns keyed by source text. Setter
// checks run per value, so compilation is amortized.
var patternCache sync.Map

func compiledPattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patternCache.Store(pattern, re)
	return re, nil
}

// CheckMinLength enforces a minimum string length in runes.
func CheckMinLength(property, value string, min int) error {
	if len([]rune(value)) < min {
		return fmt.Errorf("%s: value %q shorter than minLength %d", property, value, min)
	}
	return nil
}

// CheckMaxLength enforces a maximum string length in runes.
func CheckMaxLength(property, value string, max int) error {
	if len([]rune(value)) > max {
		return fmt.Errorf("%s: value %q longer than maxLength %d", property, value, max)
	}
	return nil
}

// CheckPattern enforces a regular-expression constraint.
func CheckPattern(property, value, pattern string) error {
	re, err := compiledPattern(pattern)
	if err != nil {
		return fmt.Errorf("%s: invalid pattern %q: %w", property, pattern, err)
	}
	if !re.MatchString(value) {
		return fmt.Errorf("%s: value %q does not match pattern %q", property, value, pattern)
	}
	return nil
}

// CheckIn enforces membership in an enumerated value set.
func CheckIn(property, value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("%s: value %q not in %v", property, value, allowed)
	}
	return nil
}

// CheckHasValue enforces exact-value equality.
func CheckHasValue(property, value, expected string) error {
	if value != expected {
		return fmt.Errorf("%s: value %q does not equal required value %q", property, value, expected)
	}
	return nil
}

// CheckMinInclusive enforces value >= bound.
func CheckMinInclusive(property string, value, bound float64) error {
	if value < bound {
		return fmt.Errorf("%s: value %v below minInclusive %v", property, value, bound)
	}
	return nil
}

// CheckMaxInclusive enforces value <= bound.
func CheckMaxInclusive(property string, value, bound float64) error {
	if value > bound {
		return fmt.Errorf("%s: value %v above maxInclusive %v", property, value, bound)
	}
	return nil
}

// CheckMinExclusive enforces value > bound.
func CheckMinExclusive(property string, value, bound float64) error {
	if value <= bound {
		return fmt.Errorf("%s: value %v not above minExclusive %v", property, value, bound)
	}
	return nil
}

// CheckMaxExclusive enforces value < bound.
func CheckMaxExclusive(property string, value, bound float64) error {
	if value >= bound {
		return fmt.Errorf("%s: value %v not below maxExclusive %v", property, value, bound)
	}
	return nil
}

// CheckNodeKind enforces a sh:nodeKind constraint on a reference value.
// The kind is the bare SHACL node-kind name ("IRI", "BlankNode",
// "BlankNodeOrIRI", ...).
func CheckNodeKind(property string, node rdf.Term, kind string) error {
	ok := false
	switch kind {
	case "IRI":
		ok = node.Kind() == rdf.TermIRI
	case "BlankNode":
		ok = node.Kind() == rdf.TermBlankNode
	case "Literal":
		ok = node.Kind() == rdf.TermLiteral
	case "BlankNodeOrIRI":
		ok = node.Kind() == rdf.TermBlankNode || node.Kind() == rdf.TermIRI
	case "BlankNodeOrLiteral":
		ok = node.Kind() == rdf.TermBlankNode || node.Kind() == rdf.TermLiteral
	case "IRIOrLiteral":
		ok = node.Kind() == rdf.TermIRI || node.Kind() == rdf.TermLiteral
	default:
		return fmt.Errorf("%s: unknown node kind %q", property, kind)
	}
	if !ok {
		return fmt.Errorf("%s: node %s does not satisfy nodeKind %s", property, node, kind)
	}
	return nil
}
