package codegen

import (
	"fmt"

	"github.com/geoknoesis/kastor-go/codegen/gocode"
)

// emitDSL produces the single instance-construction DSL file: the
// umbrella Builder entry point plus, per class, a factory function and a
// builder type with fail-fast setters and the optional Validate method.
func (g *Generator) emitDSL(classes []ClassModel) *gocode.File {
	f := &gocode.File{
		HeaderComment: headerComment,
		PackageName:   g.opts.PackageName,
	}
	f.AddImport(gocode.Import{Path: "io"})
	f.AddImport(gocode.Import{Path: rdfImportPath})
	f.AddImport(gocode.Import{Path: modulePath + "/export"})
	f.AddImport(gocode.Import{Path: modulePath + "/rdfgraph"})
	f.AddImport(gocode.Import{Path: modulePath + "/runtime"})

	f.Add(g.umbrellaDecls()...)
	for _, m := range classes {
		f.Add(g.classFactory(m), g.classBuilderStruct(m))
		for _, p := range m.Properties {
			f.Add(g.setters(m, p)...)
		}
		if fn, ok := g.validateFunc(m, builderValidateTarget(m)); ok {
			f.Add(fn)
		}
	}
	return f
}

func (g *Generator) validationEnabled() bool {
	return g.opts.ValidationMode != ValidationNone
}

// umbrellaDecls emits the DSL entry point: Builder, NewBuilder, Build,
// Instances, and (with validation enabled) the accumulated report.
func (g *Generator) umbrellaDecls() []gocode.Decl {
	builder := gocode.Struct{
		Name: "Builder",
		Doc: []string{
			"Builder is the entry point of the instance-construction DSL.",
			"It owns the graph under construction and every created resource.",
			"A Builder is single-owner: not safe for concurrent use.",
		},
		Fields: []gocode.Field{{Name: "ctx", Type: "*runtime.BuildContext"}},
	}
	if g.validationEnabled() {
		builder.Fields = append(builder.Fields, gocode.Field{Name: "report", Type: "runtime.Report"})
	}

	decls := []gocode.Decl{
		builder,
		gocode.Func{
			Doc: []string{
				"NewBuilder creates a DSL context minting resource IRIs under the",
				"given namespace.",
			},
			Name:    "NewBuilder",
			Params:  []gocode.Param{{Name: "namespace", Type: "string"}},
			Results: []string{"*Builder"},
			Body:    []string{"return &Builder{ctx: runtime.NewBuildContext(namespace)}"},
		},
		gocode.Func{
			Doc:     []string{"Build returns the populated graph."},
			Recv:    &gocode.Param{Name: "b", Type: "*Builder"},
			Name:    "Build",
			Results: []string{"*rdfgraph.Graph"},
			Body:    []string{"return b.ctx.Graph()"},
		},
		gocode.Func{
			Doc:     []string{"Instances returns every resource created through the DSL."},
			Recv:    &gocode.Param{Name: "b", Type: "*Builder"},
			Name:    "Instances",
			Results: []string{"[]rdf.Term"},
			Body:    []string{"return b.ctx.Instances()"},
		},
		gocode.Func{
			Doc:     []string{"Export serializes the populated graph in the given format."},
			Recv:    &gocode.Param{Name: "b", Type: "*Builder"},
			Name:    "Export",
			Params:  []gocode.Param{{Name: "w", Type: "io.Writer"}, {Name: "format", Type: "export.Format"}},
			Results: []string{"error"},
			Body:    []string{"return export.Write(w, b.ctx.Graph(), format)"},
		},
	}
	if g.validationEnabled() {
		decls = append(decls, gocode.Func{
			Doc: []string{
				"Validate returns the report accumulated across all factory calls.",
			},
			Recv:    &gocode.Param{Name: "b", Type: "*Builder"},
			Name:    "Validate",
			Results: []string{"runtime.Report"},
			Body:    []string{"return b.report"},
		})
	}
	return decls
}

// classFactory emits the top-level factory for one class: create the
// resource, assert its type triple, run the builder block, optionally
// validate, and record the instance.
func (g *Generator) classFactory(m ClassModel) gocode.Decl {
	body := []string{
		fmt.Sprintf("node := b.ctx.NewResource(%s)", classIRIConst(m.ClassName)),
		fmt.Sprintf("builder := &%s{ctx: b.ctx, node: node}", m.BuilderName),
		"if fn != nil {",
		"\tfn(builder)",
		"}",
	}
	if g.validationEnabled() {
		body = append(body, "b.report.Merge(builder.Validate())")
	}
	body = append(body, "return node")

	return gocode.Func{
		Doc: []string{
			fmt.Sprintf("New%s creates a %s resource, asserts its type triple, and runs", m.ClassName, m.ClassName),
			"the builder block.",
		},
		Recv:    &gocode.Param{Name: "b", Type: "*Builder"},
		Name:    "New" + m.ClassName,
		Params:  []gocode.Param{{Name: "fn", Type: "func(*" + m.BuilderName + ")"}},
		Results: []string{"rdf.Term"},
		Body:    body,
	}
}

func (g *Generator) classBuilderStruct(m ClassModel) gocode.Decl {
	return gocode.Struct{
		Name: m.BuilderName,
		Doc: []string{
			fmt.Sprintf("%s builds one %s instance. Setters fail fast on local", m.BuilderName, m.ClassName),
			"constraint violations and write nothing on failure.",
		},
		Fields: []gocode.Field{
			{Name: "ctx", Type: "*runtime.BuildContext"},
			{Name: "node", Type: "rdf.Term"},
		},
	}
}

// setters emits the setter methods for one property: a single-value
// setter, a variadic setter for list properties, and a language-tagged
// variant for string properties when enabled.
func (g *Generator) setters(m ClassModel, p PropertyModel) []gocode.Decl {
	if p.Type.IsClass {
		return g.objectSetters(m, p)
	}
	return g.literalSetters(m, p)
}

func (g *Generator) literalSetters(m ClassModel, p PropertyModel) []gocode.Decl {
	strategy := strategyFor(p.Type.Scalar)
	decls := []gocode.Decl{g.singleLiteralSetter(m, p, strategy)}
	if p.List() {
		decls = append(decls, g.listLiteralSetter(m, p, strategy))
	}
	if g.opts.LangTags && strategy.goType() == "string" {
		decls = append(decls, g.langLiteralSetter(m, p, strategy))
	}
	return decls
}

func (g *Generator) singleLiteralSetter(m ClassModel, p PropertyModel, strategy setterStrategy) gocode.Decl {
	body := []string{"lit := " + strategy.literalExpr(p, "value")}
	body = append(body, strategy.checkLines(p, "value", "lit")...)
	body = append(body, g.addTriple(m, p, "lit"), "return nil")

	return gocode.Func{
		Doc:     g.setterDoc(p.Exported, p),
		Recv:    &gocode.Param{Name: "b", Type: "*" + m.BuilderName},
		Name:    p.Exported,
		Params:  []gocode.Param{{Name: "value", Type: strategy.goType()}},
		Results: []string{"error"},
		Body:    body,
	}
}

func (g *Generator) listLiteralSetter(m ClassModel, p PropertyModel, strategy setterStrategy) gocode.Decl {
	body := []string{"lits := make([]rdf.Literal, 0, len(values))"}
	body = append(body, "for _, value := range values {")
	body = append(body, "\tlit := "+strategy.literalExpr(p, "value"))
	body = append(body, indent(strategy.checkLines(p, "value", "lit"))...)
	body = append(body, "\tlits = append(lits, lit)", "}")
	body = append(body,
		"for _, lit := range lits {",
		"\t"+g.addTriple(m, p, "lit"),
		"}",
		"return nil")

	return gocode.Func{
		Doc: append(g.setterDoc(p.Exported+"List", p),
			"The call is atomic: when any value fails a check, nothing is written."),
		Recv:    &gocode.Param{Name: "b", Type: "*" + m.BuilderName},
		Name:    p.Exported + "List",
		Params:  []gocode.Param{{Name: "values", Type: strategy.goType(), Variadic: true}},
		Results: []string{"error"},
		Body:    body,
	}
}

func (g *Generator) langLiteralSetter(m ClassModel, p PropertyModel, strategy setterStrategy) gocode.Decl {
	body := []string{"lit := runtime.LangLiteral(value, lang)"}
	body = append(body, strategy.checkLines(p, "value", "lit")...)
	body = append(body, g.addTriple(m, p, "lit"), "return nil")

	return gocode.Func{
		Doc: []string{
			fmt.Sprintf("%sLang sets <%s> as a language-tagged literal.", p.Exported, p.IRI),
		},
		Recv:    &gocode.Param{Name: "b", Type: "*" + m.BuilderName},
		Name:    p.Exported + "Lang",
		Params:  []gocode.Param{{Name: "value", Type: "string"}, {Name: "lang", Type: "string"}},
		Results: []string{"error"},
		Body:    body,
	}
}

func (g *Generator) objectSetters(m ClassModel, p PropertyModel) []gocode.Decl {
	single := gocode.Func{
		Doc:     g.setterDoc(p.Exported, p),
		Recv:    &gocode.Param{Name: "b", Type: "*" + m.BuilderName},
		Name:    p.Exported,
		Params:  []gocode.Param{{Name: "node", Type: "rdf.Term"}},
		Results: []string{"error"},
		Body: append(append([]string{}, g.nodeKindCheck(p, "node")...),
			g.addTriple(m, p, "node"), "return nil"),
	}
	decls := []gocode.Decl{single}

	if p.List() {
		body := []string{"for _, node := range nodes {"}
		body = append(body, indent(g.nodeKindCheck(p, "node"))...)
		body = append(body, "}")
		body = append(body,
			"for _, node := range nodes {",
			"\t"+g.addTriple(m, p, "node"),
			"}",
			"return nil")
		if len(g.nodeKindCheck(p, "node")) == 0 {
			// No per-value checks; a single write loop suffices.
			body = []string{
				"for _, node := range nodes {",
				"\t" + g.addTriple(m, p, "node"),
				"}",
				"return nil",
			}
		}
		decls = append(decls, gocode.Func{
			Doc: append(g.setterDoc(p.Exported+"List", p),
				"The call is atomic: when any value fails a check, nothing is written."),
			Recv:    &gocode.Param{Name: "b", Type: "*" + m.BuilderName},
			Name:    p.Exported + "List",
			Params:  []gocode.Param{{Name: "nodes", Type: "rdf.Term", Variadic: true}},
			Results: []string{"error"},
			Body:    body,
		})
	}
	return decls
}

func (g *Generator) nodeKindCheck(p PropertyModel, nodeVar string) []string {
	if p.Constraints.NodeKind == "" {
		return nil
	}
	return checkStmt(fmt.Sprintf("runtime.CheckNodeKind(%q, %s, %q)",
		p.Name, nodeVar, string(p.Constraints.NodeKind)))
}

func (g *Generator) addTriple(m ClassModel, p PropertyModel, objectExpr string) string {
	return fmt.Sprintf("b.ctx.Add(rdf.Triple{S: b.node, P: rdf.IRI{Value: %s}, O: %s})",
		m.predicateConst(p), objectExpr)
}

func (g *Generator) setterDoc(methodName string, p PropertyModel) []string {
	doc := []string{fmt.Sprintf("%s sets <%s>.", methodName, p.IRI)}
	if !p.Constraints.IsZero() {
		doc = append(doc, "The value is checked against the declared constraints before any write.")
	}
	return doc
}

func indent(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = "\t" + line
	}
	return out
}
