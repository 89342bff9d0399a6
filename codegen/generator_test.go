package codegen

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/kastor-go/schema"
)

func intPtr(v int) *int { return &v }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testModel() *schema.Model {
	return &schema.Model{
		Shapes: []schema.Shape{
			{
				ShapeIRI:    "http://example.org/vocab#PersonShape",
				TargetClass: "http://example.org/vocab#Person",
				Properties: []schema.Property{
					{
						Path:        "http://example.org/vocab#name",
						Description: "The person's full name.",
						Datatype:    "http://www.w3.org/2001/XMLSchema#string",
						MinCount:    intPtr(1),
						MaxCount:    intPtr(1),
						Constraints: schema.Constraints{MinLength: intPtr(1)},
					},
					{
						Path:     "http://example.org/vocab#age",
						Datatype: "http://www.w3.org/2001/XMLSchema#integer",
						MaxCount: intPtr(1),
						Constraints: schema.Constraints{
							MinInclusive: floatPtr(0),
						},
					},
					{
						Path:        "http://example.org/vocab#knows",
						TargetClass: "http://example.org/vocab#Person",
					},
				},
			},
		},
		Context: schema.Context{
			PropertyMappings: map[string]schema.TermDefinition{
				"name": {ID: "http://example.org/vocab#name"},
			},
		},
	}
}

func floatPtr(v float64) *float64 { return &v }

func generate(t *testing.T, opts Options, m *schema.Model) *Result {
	t.Helper()
	g, err := New(opts, discardLogger())
	require.NoError(t, err)
	result, err := g.Generate(m)
	require.NoError(t, err)
	return result
}

func render(t *testing.T, a Artifact) string {
	t.Helper()
	src, err := a.Render()
	require.NoError(t, err)
	return string(src)
}

func TestGenerate_ArtifactSet(t *testing.T) {
	result := generate(t, DefaultOptions(), testModel())

	require.Len(t, result.Artifacts, 3)
	assert.Equal(t, "person_iface.go", result.Artifacts[0].Filename)
	assert.Equal(t, "person_wrapper.go", result.Artifacts[1].Filename)
	assert.Equal(t, "dsl.go", result.Artifacts[2].Filename)
	assert.Empty(t, result.SkippedClasses)
}

func TestGenerate_Deterministic(t *testing.T) {
	first := generate(t, DefaultOptions(), testModel())
	second := generate(t, DefaultOptions(), testModel())

	require.Len(t, second.Artifacts, len(first.Artifacts))
	for i := range first.Artifacts {
		assert.Equal(t, first.Artifacts[i].Filename, second.Artifacts[i].Filename)
		assert.Equal(t, render(t, first.Artifacts[i]), render(t, second.Artifacts[i]),
			"artifact %s differs between runs", first.Artifacts[i].Filename)
	}
}

func TestGenerate_InterfaceContent(t *testing.T) {
	result := generate(t, DefaultOptions(), testModel())
	src := render(t, result.Artifacts[0])

	assert.Contains(t, src, "// Code generated by kastor-gen. DO NOT EDIT.")
	assert.Contains(t, src, "package ontology\n")
	assert.Contains(t, src, "type Person interface {")
	assert.Contains(t, src, "Name() (string, error)")
	assert.Contains(t, src, "Age() (*int, error)")
	assert.Contains(t, src, "Knows() ([]Person, error)")

	// Documentation carries description, alias, predicate, cardinality.
	assert.Contains(t, src, "The person's full name.")
	assert.Contains(t, src, `JSON-LD alias: "name".`)
	assert.Contains(t, src, "Predicate: <http://example.org/vocab#name>.")
	assert.Contains(t, src, "Cardinality: exactly 1.")
}

func TestGenerate_WrapperContent(t *testing.T) {
	result := generate(t, DefaultOptions(), testModel())
	src := render(t, result.Artifacts[1])

	assert.Contains(t, src, `PersonClassIRI = "http://example.org/vocab#Person"`)
	assert.Contains(t, src, "type personWrapper struct {")
	assert.Contains(t, src, "runtime.Lazy[string]")
	assert.Contains(t, src, "func MaterializePerson(")
	assert.Contains(t, src, "runtime.Register(PersonClassIRI,")
	assert.Contains(t, src, "runtime.RequiredLiteral(w.h,")
	assert.Contains(t, src, "func (w *personWrapper) Validate() runtime.Report {")
	assert.Contains(t, src, "runtime.CheckCardinality(")
}

func TestGenerate_DSLContent(t *testing.T) {
	result := generate(t, DefaultOptions(), testModel())
	src := render(t, result.Artifacts[2])

	assert.Contains(t, src, "type Builder struct {")
	assert.Contains(t, src, "func NewBuilder(namespace string) *Builder {")
	assert.Contains(t, src, "func (b *Builder) NewPerson(fn func(*PersonBuilder)) rdf.Term {")
	assert.Contains(t, src, "type PersonBuilder struct {")
	assert.Contains(t, src, "func (b *PersonBuilder) Name(value string) error {")
	assert.Contains(t, src, "runtime.CheckMinLength(\"name\", value, 1)")
	assert.Contains(t, src, "func (b *PersonBuilder) NameLang(value string, lang string) error {")
	assert.Contains(t, src, "func (b *PersonBuilder) KnowsList(nodes ...rdf.Term) error {")
	assert.Contains(t, src, "func (b *Builder) Export(w io.Writer, format export.Format) error {")
	assert.Contains(t, src, "func (b *PersonBuilder) Validate() runtime.Report {")
}

func TestGenerate_ValidationModeNone(t *testing.T) {
	opts := DefaultOptions()
	opts.ValidationMode = ValidationNone
	result := generate(t, opts, testModel())

	for _, a := range result.Artifacts {
		assert.NotContains(t, render(t, a), "Validate() runtime.Report", "artifact %s", a.Filename)
	}
}

func TestGenerate_ValidationModeExternal(t *testing.T) {
	opts := DefaultOptions()
	opts.ValidationMode = ValidationExternal
	opts.ExternalValidator = "shacl"
	result := generate(t, opts, testModel())

	wrapper := render(t, result.Artifacts[1])
	assert.Contains(t, wrapper, `runtime.ValidateWith("shacl",`)
	assert.NotContains(t, wrapper, "runtime.CheckCardinality(")
}

func TestGenerate_LangTagsDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.LangTags = false
	result := generate(t, opts, testModel())

	dsl := render(t, result.Artifacts[2])
	assert.Contains(t, dsl, "func (b *PersonBuilder) Name(value string) error {")
	assert.NotContains(t, dsl, "NameLang")
}

func TestGenerate_SkipsMissingShapes(t *testing.T) {
	m := testModel()
	m.Shapes[0].Properties[2].TargetClass = "http://example.org/vocab#Organization"
	m.Context.TypeMappings = map[string]string{
		"Event": "http://example.org/vocab#Event",
	}

	result := generate(t, DefaultOptions(), m)
	assert.ElementsMatch(t, []string{
		"http://example.org/vocab#Organization",
		"http://example.org/vocab#Event",
	}, result.SkippedClasses)

	// The referencing shape still generates; skipping is a warning.
	require.Len(t, result.Artifacts, 3)
}

func TestGenerate_StrictDatatypeFails(t *testing.T) {
	m := testModel()
	m.Shapes[0].Properties[1].Datatype = "http://example.org/custom#temperature"

	opts := DefaultOptions()
	opts.StrictDatatypes = true
	g, err := New(opts, discardLogger())
	require.NoError(t, err)

	_, err = g.Generate(m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "custom#temperature")
}

func TestGenerate_LenientDatatypeFallsBack(t *testing.T) {
	m := testModel()
	m.Shapes[0].Properties[1].Datatype = "http://example.org/custom#temperature"

	result := generate(t, DefaultOptions(), m)
	src := render(t, result.Artifacts[0])
	assert.Contains(t, src, "Age() (*string, error)")
}

func TestGenerate_InvalidModelRejected(t *testing.T) {
	m := testModel()
	m.Shapes[0].TargetClass = ""

	g, err := New(DefaultOptions(), discardLogger())
	require.NoError(t, err)
	_, err = g.Generate(m)
	require.ErrorIs(t, err, schema.ErrMissingTarget)
}

func TestGenerate_NamespaceOnlyPathRejected(t *testing.T) {
	m := testModel()
	m.Shapes[0].Properties[0].Path = "http://example.org/vocab#"

	g, err := New(DefaultOptions(), discardLogger())
	require.NoError(t, err)
	_, err = g.Generate(m)
	require.ErrorIs(t, err, schema.ErrEmptyName)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(Options{}, discardLogger())
	require.Error(t, err)

	opts := DefaultOptions()
	opts.ValidationMode = ValidationExternal
	_, err = New(opts, discardLogger())
	require.Error(t, err)
}

func TestParseValidationMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ValidationMode
		wantErr bool
	}{
		{"", ValidationEmbedded, false},
		{"none", ValidationNone, false},
		{"embedded", ValidationEmbedded, false},
		{"external", ValidationExternal, false},
		{"bogus", "", true},
	}
	for _, tt := range tests {
		got, err := ParseValidationMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestFileBase(t *testing.T) {
	assert.Equal(t, "person", fileBase("Person"))
	assert.Equal(t, "postal_address", fileBase("PostalAddress"))
}
