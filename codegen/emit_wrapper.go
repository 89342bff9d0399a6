package codegen

import (
	"fmt"
	"strconv"

	"github.com/geoknoesis/kastor-go/codegen/gocode"
)

// emitWrapper produces the graph-backed lazy implementation of one
// interface. The wrapper holds one memoization cell per property,
// registers its factory with the materialization registry at load time,
// and implements Validate per the configured mode.
func (g *Generator) emitWrapper(m ClassModel) *gocode.File {
	f := &gocode.File{
		HeaderComment: headerComment,
		PackageName:   g.opts.PackageName,
	}
	f.AddImport(gocode.Import{Path: rdfImportPath})
	f.AddImport(gocode.Import{Path: modulePath + "/rdfgraph"})
	f.AddImport(gocode.Import{Path: modulePath + "/runtime"})

	f.Add(
		g.wrapperConsts(m),
		g.wrapperPredicatesVar(m),
		g.wrapperRegistration(m),
		g.wrapperStruct(m),
		g.wrapperMaterializeFunc(m),
		g.wrapperConstructor(m),
	)
	for _, p := range m.Properties {
		f.Add(g.wrapperAccessor(m, p))
	}
	if fn, ok := g.validateFunc(m, wrapperValidateTarget(m)); ok {
		f.Add(fn)
	}
	return f
}

// classIRIConst is the exported class IRI constant name for a class.
func classIRIConst(className string) string { return className + "ClassIRI" }

func (m ClassModel) shapeIRIConst() string { return lowerFirst(m.ClassName) + "ShapeIRI" }

func (m ClassModel) predicateConst(p PropertyModel) string {
	return lowerFirst(m.ClassName) + p.Exported + "IRI"
}

func (m ClassModel) predicatesVar() string { return lowerFirst(m.ClassName) + "Predicates" }

func (g *Generator) wrapperConsts(m ClassModel) gocode.Decl {
	c := gocode.Const{
		Specs: []gocode.ConstSpec{
			{
				Doc:   []string{fmt.Sprintf("%s is the target class of the %s shape.", classIRIConst(m.ClassName), m.ClassName)},
				Name:  classIRIConst(m.ClassName),
				Value: strconv.Quote(m.ClassIRI),
			},
			{
				Sep:   true,
				Name:  m.shapeIRIConst(),
				Value: strconv.Quote(m.ShapeIRI),
			},
		},
	}
	for i, p := range m.Properties {
		c.Specs = append(c.Specs, gocode.ConstSpec{
			Sep:   i == 0,
			Name:  m.predicateConst(p),
			Value: strconv.Quote(p.IRI),
		})
	}
	return c
}

func (g *Generator) wrapperPredicatesVar(m ClassModel) gocode.Decl {
	value := []string{"[]rdf.IRI{"}
	for _, p := range m.Properties {
		value = append(value, fmt.Sprintf("\t{Value: %s},", m.predicateConst(p)))
	}
	value = append(value, "}")
	return gocode.Var{
		Doc:   []string{fmt.Sprintf("%s are the predicates owned by the %s wrapper.", m.predicatesVar(), m.ClassName)},
		Name:  m.predicatesVar(),
		Value: value,
	}
}

func (g *Generator) wrapperRegistration(m ClassModel) gocode.Decl {
	return gocode.Func{
		Name: "init",
		Body: []string{
			fmt.Sprintf("runtime.Register(%s, func(h runtime.Handle) any {", classIRIConst(m.ClassName)),
			fmt.Sprintf("\treturn new%sWrapper(h)", m.ClassName),
			"})",
		},
	}
}

func (g *Generator) wrapperStruct(m ClassModel) gocode.Decl {
	s := gocode.Struct{
		Name: m.WrapperName,
		Doc: []string{
			fmt.Sprintf("%s is the lazy, graph-backed implementation of %s.", m.WrapperName, m.ClassName),
			"Each property is computed on first access and memoized; the backing",
			"graph is treated as read-only.",
		},
		Fields: []gocode.Field{{Name: "h", Type: "runtime.Handle"}},
	}
	for i, p := range m.Properties {
		s.Fields = append(s.Fields, gocode.Field{
			Sep:  i == 0,
			Name: p.Name,
			Type: "runtime.Lazy[" + p.resultType() + "]",
		})
	}
	return s
}

func (g *Generator) wrapperMaterializeFunc(m ClassModel) gocode.Decl {
	return gocode.Func{
		Doc: []string{
			fmt.Sprintf("Materialize%s wraps a graph node in the %s interface.", m.ClassName, m.ClassName),
		},
		Name: "Materialize" + m.ClassName,
		Params: []gocode.Param{
			{Name: "g", Type: "*rdfgraph.Graph"},
			{Name: "node", Type: "rdf.Term"},
		},
		Results: []string{m.ClassName},
		Body: []string{
			fmt.Sprintf("return new%sWrapper(runtime.NewHandle(g, node))", m.ClassName),
		},
	}
}

func (g *Generator) wrapperConstructor(m ClassModel) gocode.Decl {
	return gocode.Func{
		Name:    "new" + m.ClassName + "Wrapper",
		Params:  []gocode.Param{{Name: "h", Type: "runtime.Handle"}},
		Results: []string{"*" + m.WrapperName},
		Body: []string{
			fmt.Sprintf("return &%s{h: runtime.NewHandle(h.Graph(), h.Node(), %s...)}",
				m.WrapperName, m.predicatesVar()),
		},
	}
}

func (g *Generator) wrapperAccessor(m ClassModel, p PropertyModel) gocode.Decl {
	result := p.resultType()
	return gocode.Func{
		Recv:    &gocode.Param{Name: "w", Type: "*" + m.WrapperName},
		Name:    p.Exported,
		Results: []string{result, "error"},
		Body: []string{
			fmt.Sprintf("return w.%s.Resolve(func() (%s, error) {", p.Name, result),
			"\treturn " + g.accessorRead(m, p),
			"})",
		},
	}
}

// accessorRead is the graph-reading expression inside a property's
// memoized compute function.
func (g *Generator) accessorRead(m ClassModel, p PropertyModel) string {
	predicate := fmt.Sprintf("rdf.IRI{Value: %s}", m.predicateConst(p))

	if p.Type.IsClass {
		class := strconv.Quote(p.Type.ClassIRI)
		name := p.Type.ClassName()
		switch {
		case p.Type.List:
			return fmt.Sprintf("runtime.ObjectList[%s](w.h, %s, %s)", name, predicate, class)
		case p.Type.Optional:
			return fmt.Sprintf("runtime.OptionalObject[%s](w.h, %s, %s)", name, predicate, class)
		default:
			return fmt.Sprintf("runtime.RequiredObject[%s](w.h, %s, %s)", name, predicate, class)
		}
	}

	conv := convFunc(p)
	switch {
	case p.Type.List:
		return fmt.Sprintf("runtime.LiteralList(w.h, %s, %s, %t)", predicate, conv, g.opts.StrictDatatypes)
	case p.Type.Optional:
		return fmt.Sprintf("runtime.OptionalLiteral(w.h, %s, %s)", predicate, conv)
	default:
		return fmt.Sprintf("runtime.RequiredLiteral(w.h, %s, %s)", predicate, conv)
	}
}

func convFunc(p PropertyModel) string {
	switch p.Type.Scalar.GoType() {
	case "int":
		return "runtime.AsInt"
	case "float64":
		return "runtime.AsFloat"
	case "bool":
		return "runtime.AsBool"
	default:
		return "runtime.AsString"
	}
}
