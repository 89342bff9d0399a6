package gocode

import (
	"fmt"
	"go/format"
	"sort"
	"strings"
)

// Render produces the file's source text, normalized through gofmt so
// the bytes match what a developer would commit. Output is
// deterministic: imports are grouped (standard library first, then the
// rest) and sorted, declarations keep their insertion order.
func (f *File) Render() ([]byte, error) {
	var b strings.Builder

	if f.HeaderComment != "" {
		b.WriteString("// " + f.HeaderComment + "\n\n")
	}
	for _, line := range f.PackageDoc {
		writeCommentLine(&b, "", line)
	}
	b.WriteString("package " + f.PackageName + "\n")

	f.renderImports(&b)

	for _, d := range f.Decls {
		b.WriteString("\n")
		renderDecl(&b, d)
	}

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("format rendered package %s: %w", f.PackageName, err)
	}
	return src, nil
}

func (f *File) renderImports(b *strings.Builder) {
	if len(f.Imports) == 0 {
		return
	}

	var std, rest []Import
	for _, imp := range f.Imports {
		if isStdlib(imp.Path) {
			std = append(std, imp)
		} else {
			rest = append(rest, imp)
		}
	}
	sortImports(std)
	sortImports(rest)

	b.WriteString("\nimport (\n")
	for _, imp := range std {
		writeImport(b, imp)
	}
	if len(std) > 0 && len(rest) > 0 {
		b.WriteString("\n")
	}
	for _, imp := range rest {
		writeImport(b, imp)
	}
	b.WriteString(")\n")
}

func sortImports(imports []Import) {
	sort.Slice(imports, func(i, j int) bool { return imports[i].Path < imports[j].Path })
}

func writeImport(b *strings.Builder, imp Import) {
	if imp.Alias != "" {
		b.WriteString("\t" + imp.Alias + " \"" + imp.Path + "\"\n")
		return
	}
	b.WriteString("\t\"" + imp.Path + "\"\n")
}

func isStdlib(path string) bool {
	first := path
	if i := strings.IndexByte(path, '/'); i >= 0 {
		first = path[:i]
	}
	return !strings.Contains(first, ".")
}

func renderDecl(b *strings.Builder, d Decl) {
	switch decl := d.(type) {
	case Const:
		renderConst(b, decl)
	case Var:
		renderVar(b, decl)
	case Interface:
		renderInterface(b, decl)
	case Struct:
		renderStruct(b, decl)
	case Func:
		renderFunc(b, decl)
	}
}

func renderConst(b *strings.Builder, c Const) {
	writeComment(b, "", c.Doc)
	if len(c.Specs) == 1 && len(c.Specs[0].Doc) == 0 {
		s := c.Specs[0]
		b.WriteString("const " + s.Name + " = " + s.Value + "\n")
		return
	}
	b.WriteString("const (\n")
	for i, s := range c.Specs {
		if i > 0 && (s.Sep || len(s.Doc) > 0) {
			b.WriteString("\n")
		}
		writeComment(b, "\t", s.Doc)
		b.WriteString("\t" + s.Name + " = " + s.Value + "\n")
	}
	b.WriteString(")\n")
}

func renderVar(b *strings.Builder, v Var) {
	writeComment(b, "", v.Doc)
	b.WriteString("var " + v.Name)
	if v.Type != "" {
		b.WriteString(" " + v.Type)
	}
	if len(v.Value) > 0 {
		// Continuation lines carry their own indentation.
		b.WriteString(" = " + v.Value[0] + "\n")
		for _, line := range v.Value[1:] {
			b.WriteString(line + "\n")
		}
		return
	}
	b.WriteString("\n")
}

func renderInterface(b *strings.Builder, iface Interface) {
	writeComment(b, "", iface.Doc)
	b.WriteString("type " + iface.Name + " interface {\n")
	for i, m := range iface.Methods {
		if i > 0 {
			b.WriteString("\n")
		}
		writeComment(b, "\t", m.Doc)
		b.WriteString("\t" + m.Name + "(" + renderParams(m.Params) + ")" + renderResults(m.Results) + "\n")
	}
	b.WriteString("}\n")
}

func renderStruct(b *strings.Builder, s Struct) {
	writeComment(b, "", s.Doc)
	b.WriteString("type " + s.Name + " struct {\n")
	for i, f := range s.Fields {
		if i > 0 && (f.Sep || len(f.Doc) > 0) {
			b.WriteString("\n")
		}
		writeComment(b, "\t", f.Doc)
		if f.Name == "" {
			b.WriteString("\t" + f.Type + "\n")
			continue
		}
		b.WriteString("\t" + f.Name + " " + f.Type + "\n")
	}
	b.WriteString("}\n")
}

func renderFunc(b *strings.Builder, fn Func) {
	writeComment(b, "", fn.Doc)
	b.WriteString("func ")
	if fn.Recv != nil {
		b.WriteString("(" + fn.Recv.Name + " " + fn.Recv.Type + ") ")
	}
	b.WriteString(fn.Name + "(" + renderParams(fn.Params) + ")" + renderResults(fn.Results) + " {\n")
	for _, line := range fn.Body {
		if line == "" {
			b.WriteString("\n")
			continue
		}
		b.WriteString("\t" + line + "\n")
	}
	b.WriteString("}\n")
}

func renderParams(params []Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		typ := p.Type
		if p.Variadic {
			typ = "..." + typ
		}
		if p.Name == "" {
			parts = append(parts, typ)
			continue
		}
		parts = append(parts, p.Name+" "+typ)
	}
	return strings.Join(parts, ", ")
}

func renderResults(results []string) string {
	switch len(results) {
	case 0:
		return ""
	case 1:
		return " " + results[0]
	default:
		return " (" + strings.Join(results, ", ") + ")"
	}
}

func writeComment(b *strings.Builder, indent string, lines []string) {
	for _, line := range lines {
		writeCommentLine(b, indent, line)
	}
}

func writeCommentLine(b *strings.Builder, indent, line string) {
	if line == "" {
		b.WriteString(indent + "//\n")
		return
	}
	b.WriteString(indent + "// " + line + "\n")
}
