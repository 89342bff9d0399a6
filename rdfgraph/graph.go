// Package rdfgraph provides the minimal in-memory triple store the
// generated runtime code works against: appending triples while building
// instances, and enumerating literal or object values by subject and
// predicate while reading them back through wrappers.
//
// A Graph is not safe for concurrent mutation. The intended lifecycle is
// single-owner writes during building, then arbitrary concurrent reads.
package rdfgraph

import (
	"github.com/geoknoesis/rdf-go/rdf"
)

type spKey struct {
	subject   string
	predicate string
}

// Graph is a mutable set of triples with a subject+predicate index.
type Graph struct {
	triples []rdf.Triple
	index   map[spKey][]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{index: make(map[spKey][]int)}
}

// Add appends a triple. Duplicates are kept; RDF set semantics are the
// caller's concern.
func (g *Graph) Add(t rdf.Triple) {
	k := spKey{subject: termKey(t.S), predicate: t.P.Value}
	g.index[k] = append(g.index[k], len(g.triples))
	g.triples = append(g.triples, t)
}

// Len returns the number of triples.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns all triples in insertion order. The returned slice is
// shared; callers must not mutate it.
func (g *Graph) Triples() []rdf.Triple { return g.triples }

// Objects returns every object term at (subject, predicate), in
// insertion order.
func (g *Graph) Objects(subject rdf.Term, predicate rdf.IRI) []rdf.Term {
	idx := g.index[spKey{subject: termKey(subject), predicate: predicate.Value}]
	if len(idx) == 0 {
		return nil
	}
	out := make([]rdf.Term, 0, len(idx))
	for _, i := range idx {
		out = append(out, g.triples[i].O)
	}
	return out
}

// Literals returns the literal objects at (subject, predicate), skipping
// non-literal values.
func (g *Graph) Literals(subject rdf.Term, predicate rdf.IRI) []rdf.Literal {
	objects := g.Objects(subject, predicate)
	out := make([]rdf.Literal, 0, len(objects))
	for _, o := range objects {
		if lit, ok := o.(rdf.Literal); ok {
			out = append(out, lit)
		}
	}
	return out
}

// References returns the IRI and blank-node objects at (subject,
// predicate), skipping literals.
func (g *Graph) References(subject rdf.Term, predicate rdf.IRI) []rdf.Term {
	objects := g.Objects(subject, predicate)
	out := make([]rdf.Term, 0, len(objects))
	for _, o := range objects {
		switch o.Kind() {
		case rdf.TermIRI, rdf.TermBlankNode:
			out = append(out, o)
		}
	}
	return out
}

// Count returns the number of values at (subject, predicate).
func (g *Graph) Count(subject rdf.Term, predicate rdf.IRI) int {
	return len(g.index[spKey{subject: termKey(subject), predicate: predicate.Value}])
}

// termKey produces the index key for a subject term. Kinds share the
// String() rendering convention of rdf-go, which is injective across
// IRIs, blank nodes, and literals.
func termKey(t rdf.Term) string {
	if t == nil {
		return ""
	}
	return t.String()
}
