// Package runtime is the support library generated code links against.
// It carries the pieces every generated artifact shares: the graph-backed
// handle wrappers read through, the compute-once memoization cell, the
// materialization registry, literal conversion, validation reports, and
// the build context the instance DSL mutates.
package runtime

import (
	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/geoknoesis/kastor-go/rdfgraph"
)

// Handle pairs a graph node with the graph it lives in, plus the set of
// predicates the owning wrapper declares. Wrappers treat the graph as
// read-only; Handle values are cheap to copy.
type Handle struct {
	node  rdf.Term
	graph *rdfgraph.Graph
	owned map[string]struct{}
}

// NewHandle creates a handle for node in graph. The predicates are those
// the wrapper's shape declares; closed-world readers can ask Owns to
// distinguish modeled from extraneous predicates.
func NewHandle(graph *rdfgraph.Graph, node rdf.Term, predicates ...rdf.IRI) Handle {
	owned := make(map[string]struct{}, len(predicates))
	for _, p := range predicates {
		owned[p.Value] = struct{}{}
	}
	return Handle{node: node, graph: graph, owned: owned}
}

// Node returns the wrapped graph node.
func (h Handle) Node() rdf.Term { return h.node }

// Graph returns the backing graph.
func (h Handle) Graph() *rdfgraph.Graph { return h.graph }

// Owns reports whether the predicate belongs to the wrapper's shape.
func (h Handle) Owns(predicate rdf.IRI) bool {
	_, ok := h.owned[predicate.Value]
	return ok
}

// Literals enumerates the literal values at the given predicate.
func (h Handle) Literals(predicate rdf.IRI) []rdf.Literal {
	return h.graph.Literals(h.node, predicate)
}

// References enumerates the object-valued terms at the given predicate.
func (h Handle) References(predicate rdf.IRI) []rdf.Term {
	return h.graph.References(h.node, predicate)
}

// Count returns the number of values at the given predicate.
func (h Handle) Count(predicate rdf.IRI) int {
	return h.graph.Count(h.node, predicate)
}
