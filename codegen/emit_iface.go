package codegen

import (
	"fmt"

	"github.com/geoknoesis/kastor-go/codegen/gocode"
)

// emitInterface produces the pure domain interface for one class: a
// typed, documented contract with the class IRI as type-level metadata
// and each predicate IRI as property-level metadata. It has no
// dependency on the RDF runtime.
func (g *Generator) emitInterface(m ClassModel) *gocode.File {
	f := &gocode.File{
		HeaderComment: headerComment,
		PackageName:   g.opts.PackageName,
	}

	iface := gocode.Interface{
		Name: m.ClassName,
		Doc: []string{
			fmt.Sprintf("%s is the domain interface for class", m.ClassName),
			fmt.Sprintf("<%s>.", m.ClassIRI),
		},
	}

	for _, p := range m.Properties {
		iface.Methods = append(iface.Methods, gocode.Method{
			Name:    p.Exported,
			Doc:     g.propertyDoc(p),
			Results: []string{p.resultType(), "error"},
		})
	}

	f.Add(iface)
	return f
}

// propertyDoc builds the doc comment of one interface property:
// description, JSON-LD alias when one exists, predicate IRI, and (when
// configured) the declared cardinality.
func (g *Generator) propertyDoc(p PropertyModel) []string {
	var doc []string
	if p.Description != "" {
		doc = append(doc, fmt.Sprintf("%s returns %s", p.Exported, p.Description))
	} else {
		doc = append(doc, fmt.Sprintf("%s returns the values of the property.", p.Exported))
	}
	if p.Alias != "" {
		doc = append(doc, fmt.Sprintf("JSON-LD alias: %q.", p.Alias))
	}
	doc = append(doc, fmt.Sprintf("Predicate: <%s>.", p.IRI))
	if g.opts.CardinalityDocs && p.HasCardinality() {
		doc = append(doc, "Cardinality: "+cardinalityDoc(p)+".")
	}
	return doc
}

func cardinalityDoc(p PropertyModel) string {
	switch {
	case p.MinCount != unbounded && p.MaxCount != unbounded && p.MinCount == p.MaxCount:
		return fmt.Sprintf("exactly %d", p.MinCount)
	case p.MinCount != unbounded && p.MaxCount != unbounded:
		return fmt.Sprintf("%d..%d", p.MinCount, p.MaxCount)
	case p.MinCount != unbounded:
		return fmt.Sprintf("at least %d", p.MinCount)
	default:
		return fmt.Sprintf("at most %d", p.MaxCount)
	}
}

// resultType is the Go result type of the property's accessor, shared by
// the interface and wrapper emitters so the two always agree.
func (p PropertyModel) resultType() string {
	if p.Type.IsClass {
		name := p.Type.ClassName()
		if p.Type.List {
			return "[]" + name
		}
		return name
	}
	goType := p.Type.Scalar.GoType()
	switch {
	case p.Type.List:
		return "[]" + goType
	case p.Type.Optional:
		return "*" + goType
	default:
		return goType
	}
}
