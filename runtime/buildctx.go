package runtime

import (
	"github.com/google/uuid"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/geoknoesis/kastor-go/rdfgraph"
	rdfvoc "github.com/geoknoesis/kastor-go/vocabulary/rdf"
)

// BuildContext is the mutable state behind a generated instance DSL: the
// graph under construction plus every resource created through a factory.
// It is single-owner; nothing here is safe for concurrent use.
type BuildContext struct {
	graph     *rdfgraph.Graph
	instances []rdf.Term
	namespace string
}

// NewBuildContext creates a build context minting resource IRIs under
// the given namespace.
func NewBuildContext(namespace string) *BuildContext {
	return &BuildContext{
		graph:     rdfgraph.New(),
		namespace: namespace,
	}
}

// Graph returns the graph under construction.
func (c *BuildContext) Graph() *rdfgraph.Graph { return c.graph }

// Instances returns every resource created through NewResource, in
// creation order.
func (c *BuildContext) Instances() []rdf.Term { return c.instances }

// NewResource mints a fresh resource IRI, asserts its rdf:type triple,
// and records it in the instance collection.
func (c *BuildContext) NewResource(classIRI string) rdf.IRI {
	node := rdf.IRI{Value: c.namespace + uuid.New().String()}
	c.graph.Add(rdf.Triple{S: node, P: rdf.IRI{Value: rdfvoc.Type}, O: rdf.IRI{Value: classIRI}})
	c.instances = append(c.instances, node)
	return node
}

// Add appends a triple to the graph under construction.
func (c *BuildContext) Add(t rdf.Triple) { c.graph.Add(t) }
