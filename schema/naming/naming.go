// Package naming provides the pure name and type resolution functions
// shared by all emitters. Every function here is deterministic and
// idempotent in its output: the same IRI yields the same identifier no
// matter which emitter asks, which is what keeps the generated interface,
// wrapper, and builder consistent with each other.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LocalName returns the fragment of an IRI, or its last path segment when
// there is no fragment.
func LocalName(iri string) string {
	if i := strings.LastIndexByte(iri, '#'); i >= 0 {
		return iri[i+1:]
	}
	trimmed := strings.TrimRight(iri, "/")
	if i := strings.LastIndexByte(trimmed, '/'); i >= 0 {
		return trimmed[i+1:]
	}
	if i := strings.LastIndexByte(trimmed, ':'); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

// ClassNameOf maps a class IRI to a PascalCase Go type name: the local
// name is split on '-' and '_' and each segment is title-cased.
func ClassNameOf(iri string) string {
	segments := splitSegments(LocalName(iri))
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(titleCase(s))
	}
	return b.String()
}

// PropertyNameOf maps a property name (or IRI local name) to a camelCase
// Go identifier: same splitting rule as ClassNameOf with the first
// segment lower-cased.
func PropertyNameOf(name string) string {
	segments := splitSegments(name)
	var b strings.Builder
	for i, s := range segments {
		if i == 0 {
			b.WriteString(lowerFirst(s))
			continue
		}
		b.WriteString(titleCase(s))
	}
	return b.String()
}

// ExportedPropertyNameOf is PropertyNameOf with the first rune upper-cased,
// for generated method names.
func ExportedPropertyNameOf(name string) string {
	return titleCase(PropertyNameOf(name))
}

func splitSegments(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_'
	})
	return parts
}

// titleCase upper-cases the first rune only; the rest of the segment is
// preserved so acronym-containing names like "baseIRI" survive.
func titleCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
