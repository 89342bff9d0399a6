package gocode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, f *File) string {
	t.Helper()
	src, err := f.Render()
	require.NoError(t, err)
	return string(src)
}

func TestRender_HeaderAndPackage(t *testing.T) {
	f := &File{
		HeaderComment: "Code generated by kastor-gen. DO NOT EDIT.",
		PackageDoc:    []string{"Package ontology holds generated bindings."},
		PackageName:   "ontology",
	}

	got := render(t, f)
	assert.Equal(t, "// Code generated by kastor-gen. DO NOT EDIT.\n\n"+
		"// Package ontology holds generated bindings.\n"+
		"package ontology\n", got)
}

func TestRender_ImportGrouping(t *testing.T) {
	f := &File{PackageName: "ontology"}
	f.AddImport(Import{Path: "github.com/geoknoesis/rdf-go/rdf"})
	f.AddImport(Import{Path: "sync"})
	f.AddImport(Import{Path: "fmt"})
	f.AddImport(Import{Alias: "rdfvoc", Path: "github.com/geoknoesis/kastor-go/vocabulary/rdf"})

	got := render(t, f)
	want := "package ontology\n\n" +
		"import (\n" +
		"\t\"fmt\"\n" +
		"\t\"sync\"\n" +
		"\n" +
		"\trdfvoc \"github.com/geoknoesis/kastor-go/vocabulary/rdf\"\n" +
		"\t\"github.com/geoknoesis/rdf-go/rdf\"\n" +
		")\n"
	assert.Equal(t, want, got)
}

func TestAddImport_Deduplicates(t *testing.T) {
	f := &File{PackageName: "p"}
	f.AddImport(Import{Path: "fmt"})
	f.AddImport(Import{Path: "fmt"})
	assert.Len(t, f.Imports, 1)
}

func TestRender_ConstForms(t *testing.T) {
	single := Const{Specs: []ConstSpec{{Name: "PersonClassIRI", Value: `"http://example.org/vocab#Person"`}}}
	grouped := Const{
		Doc: []string{"Predicate IRIs."},
		Specs: []ConstSpec{
			{Name: "a", Value: `"x"`},
			{Doc: []string{"b is special."}, Name: "b", Value: `"y"`},
		},
	}

	f := &File{PackageName: "p", Decls: []Decl{single, grouped}}
	got := render(t, f)

	assert.Contains(t, got, "const PersonClassIRI = \"http://example.org/vocab#Person\"\n")
	assert.Contains(t, got, "// Predicate IRIs.\nconst (\n\ta = \"x\"\n\n\t// b is special.\n\tb = \"y\"\n)\n")
}

func TestRender_ConstAlignment(t *testing.T) {
	c := Const{
		Specs: []ConstSpec{
			{Name: "nameIRI", Value: `"n"`},
			{Name: "nicknameIRI", Value: `"k"`},
			{Sep: true, Name: "x", Value: `"y"`},
		},
	}
	f := &File{PackageName: "p", Decls: []Decl{c}}

	got := render(t, f)
	want := "const (\n" +
		"\tnameIRI     = \"n\"\n" +
		"\tnicknameIRI = \"k\"\n" +
		"\n" +
		"\tx = \"y\"\n" +
		")\n"
	assert.Contains(t, got, want)
}

func TestRender_VarMultiline(t *testing.T) {
	v := Var{
		Name: "personPredicates",
		Value: []string{
			"[]rdf.IRI{",
			"\t{Value: personNameIRI},",
			"}",
		},
	}
	f := &File{PackageName: "p", Decls: []Decl{v}}

	got := render(t, f)
	assert.Contains(t, got, "var personPredicates = []rdf.IRI{\n\t{Value: personNameIRI},\n}\n")
}

func TestRender_Interface(t *testing.T) {
	iface := Interface{
		Doc:  []string{"Person is a person."},
		Name: "Person",
		Methods: []Method{
			{Doc: []string{"Name returns the name."}, Name: "Name", Results: []string{"string", "error"}},
			{Name: "Age", Results: []string{"*int", "error"}},
		},
	}
	f := &File{PackageName: "p", Decls: []Decl{iface}}

	got := render(t, f)
	want := "// Person is a person.\n" +
		"type Person interface {\n" +
		"\t// Name returns the name.\n" +
		"\tName() (string, error)\n" +
		"\n" +
		"\tAge() (*int, error)\n" +
		"}\n"
	assert.Contains(t, got, want)
}

func TestRender_StructAlignment(t *testing.T) {
	s := Struct{
		Name: "personWrapper",
		Fields: []Field{
			{Name: "h", Type: "runtime.Handle"},
			{Sep: true, Name: "name", Type: "runtime.Lazy[string]"},
			{Name: "nickname", Type: "runtime.Lazy[[]string]"},
		},
	}
	f := &File{PackageName: "p", Decls: []Decl{s}}

	got := render(t, f)
	want := "type personWrapper struct {\n" +
		"\th runtime.Handle\n" +
		"\n" +
		"\tname     runtime.Lazy[string]\n" +
		"\tnickname runtime.Lazy[[]string]\n" +
		"}\n"
	assert.Contains(t, got, want)
}

func TestRender_FuncAndMethod(t *testing.T) {
	fn := Func{
		Doc:     []string{"NewBuilder creates a builder."},
		Name:    "NewBuilder",
		Params:  []Param{{Name: "namespace", Type: "string"}},
		Results: []string{"*Builder"},
		Body:    []string{"return &Builder{}"},
	}
	method := Func{
		Recv:    &Param{Name: "w", Type: "*personWrapper"},
		Name:    "Name",
		Results: []string{"string", "error"},
		Body: []string{
			"return w.name.Resolve(func() (string, error) {",
			"\treturn \"\", nil",
			"})",
		},
	}
	f := &File{PackageName: "p", Decls: []Decl{fn, method}}

	got := render(t, f)
	assert.Contains(t, got, "// NewBuilder creates a builder.\nfunc NewBuilder(namespace string) *Builder {\n\treturn &Builder{}\n}\n")
	assert.Contains(t, got, "func (w *personWrapper) Name() (string, error) {\n\treturn w.name.Resolve(func() (string, error) {\n\t\treturn \"\", nil\n\t})\n}\n")
}

func TestRender_VariadicParam(t *testing.T) {
	fn := Func{
		Name:    "NicknameList",
		Params:  []Param{{Name: "values", Type: "string", Variadic: true}},
		Results: []string{"error"},
		Body:    []string{"return nil"},
	}
	f := &File{PackageName: "p", Decls: []Decl{fn}}

	assert.Contains(t, render(t, f), "func NicknameList(values ...string) error {\n")
}

func TestRender_InvalidSourceRejected(t *testing.T) {
	f := &File{PackageName: "p", Decls: []Decl{
		Func{Name: "broken", Body: []string{"return ]["}},
	}}

	_, err := f.Render()
	require.Error(t, err)
}

func TestRender_Deterministic(t *testing.T) {
	build := func() *File {
		f := &File{PackageName: "p"}
		f.AddImport(Import{Path: "github.com/google/uuid"})
		f.AddImport(Import{Path: "fmt"})
		f.Add(Const{Specs: []ConstSpec{{Name: "x", Value: "1"}}})
		return f
	}

	first := render(t, build())
	for range 5 {
		require.Equal(t, first, render(t, build()))
	}
}
