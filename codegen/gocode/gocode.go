// Package gocode is the structured code model the emitters target: a
// small declaration tree plus a deterministic renderer. Emitters never
// concatenate source text directly; they build File values and let the
// renderer produce the bytes. This keeps generated output syntactically
// uniform and lets tests assert against structure instead of text.
package gocode

// File is one generated Go source file.
type File struct {
	// HeaderComment is the marker comment above the package clause,
	// e.g. the standard "Code generated ... DO NOT EDIT." line.
	HeaderComment string

	// PackageDoc is the package doc comment, one line per entry.
	PackageDoc []string

	// PackageName is the package clause name.
	PackageName string

	// Imports lists imported packages. The renderer groups and sorts
	// them; declaration order does not matter.
	Imports []Import

	// Decls are the top-level declarations, rendered in order.
	Decls []Decl
}

// AddImport records an import, ignoring duplicates.
func (f *File) AddImport(imp Import) {
	for _, existing := range f.Imports {
		if existing.Path == imp.Path {
			return
		}
	}
	f.Imports = append(f.Imports, imp)
}

// Add appends declarations.
func (f *File) Add(decls ...Decl) {
	f.Decls = append(f.Decls, decls...)
}

// Import is one import spec.
type Import struct {
	// Alias is the local name, empty for the default.
	Alias string

	// Path is the import path.
	Path string
}

// Decl is a top-level declaration node.
type Decl interface {
	isDecl()
}

// Const is a grouped const declaration.
type Const struct {
	// Doc is the doc comment on the group.
	Doc []string

	Specs []ConstSpec
}

// ConstSpec is one constant in a group.
type ConstSpec struct {
	// Doc is the doc comment on the constant.
	Doc []string

	// Sep renders a blank line before the spec, starting a new
	// alignment run in the formatted output.
	Sep bool

	Name string

	// Value is the rendered constant expression.
	Value string
}

// Var is a single var declaration.
type Var struct {
	Doc  []string
	Name string

	// Type is the declared type, empty when inferred.
	Type string

	// Value is the rendered initializer expression, possibly spanning
	// multiple lines.
	Value []string
}

// Interface is an interface type declaration.
type Interface struct {
	Doc     []string
	Name    string
	Methods []Method
}

// Method is one method signature inside an interface.
type Method struct {
	Doc     []string
	Name    string
	Params  []Param
	Results []string
}

// Struct is a struct type declaration.
type Struct struct {
	Doc    []string
	Name   string
	Fields []Field
}

// Field is one struct field. An empty Name renders an embedded field.
type Field struct {
	Doc []string

	// Sep renders a blank line before the field, starting a new
	// alignment run in the formatted output.
	Sep bool

	Name string
	Type string
}

// Func is a function or method declaration.
type Func struct {
	Doc []string

	// Recv is the receiver, nil for plain functions.
	Recv *Param

	Name    string
	Params  []Param
	Results []string

	// Body holds statement lines, already indented relative to the
	// function body (one leading tab per nesting level).
	Body []string
}

// Param is a named, typed parameter or receiver.
type Param struct {
	Name string
	Type string

	// Variadic renders the type as "...Type".
	Variadic bool
}

func (Const) isDecl()     {}
func (Var) isDecl()       {}
func (Interface) isDecl() {}
func (Struct) isDecl()    {}
func (Func) isDecl()      {}
