package runtime

import (
	"fmt"
	"sync"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/geoknoesis/kastor-go/rdfgraph"
)

// Validator is an external validation routine: given a graph and a node,
// it produces a report. Used by code generated in the "external"
// validation mode, which delegates instead of embedding count checks.
type Validator func(g *rdfgraph.Graph, node rdf.Term) Report

var (
	validatorMu sync.RWMutex
	validators  = make(map[string]Validator)
)

// RegisterValidator installs a named external validator. Expected to run
// during program initialization, before any generated Validate call.
func RegisterValidator(name string, v Validator) {
	validatorMu.Lock()
	defer validatorMu.Unlock()
	validators[name] = v
}

// ValidateWith delegates to the named validator. An unregistered name is
// a wiring mistake, not a data problem, and panics.
func ValidateWith(name string, g *rdfgraph.Graph, node rdf.Term) Report {
	validatorMu.RLock()
	v, ok := validators[name]
	validatorMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("runtime: external validator %q not registered", name))
	}
	return v(g, node)
}

// Unbounded marks an undeclared cardinality bound in CheckCardinality.
const Unbounded = -1

// CheckCardinality counts the values at (node, predicate) and reports
// violations against the given bounds; pass Unbounded for an undeclared
// bound. Shared by embedded-mode Validate bodies in both wrappers and
// builders.
func CheckCardinality(g *rdfgraph.Graph, node rdf.Term, shapeIRI, path string, minCount, maxCount int) []Violation {
	count := g.Count(node, rdf.IRI{Value: path})
	var out []Violation
	if minCount != Unbounded && count < minCount {
		out = append(out, Violation{
			ShapeIRI: shapeIRI,
			Path:     path,
			Kind:     ConstraintMinCount,
			Message:  fmt.Sprintf("found %d values, need at least %d", count, minCount),
		})
	}
	if maxCount != Unbounded && count > maxCount {
		out = append(out, Violation{
			ShapeIRI: shapeIRI,
			Path:     path,
			Kind:     ConstraintMaxCount,
			Message:  fmt.Sprintf("found %d values, allowed at most %d", count, maxCount),
		})
	}
	return out
}
