// Package rdf provides IRI constants for the core RDF vocabulary.
package rdf

// Namespace is the base IRI for the RDF vocabulary.
const Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

const (
	// Type is the rdf:type predicate, asserted by builder factories on
	// every created resource.
	Type = Namespace + "type"

	// LangString is the rdf:langString datatype carried by
	// language-tagged literals.
	LangString = Namespace + "langString"

	// JSONLDID is the JSON-LD "@id" keyword, the alias target of
	// identifier-typed context mappings.
	JSONLDID = "@id"
)
