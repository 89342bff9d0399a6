package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validShape() Shape {
	return Shape{
		ShapeIRI:    "http://example.org/vocab#PersonShape",
		TargetClass: "http://example.org/vocab#Person",
		Properties: []Property{
			{
				Path:     "http://example.org/vocab#name",
				Datatype: "http://www.w3.org/2001/XMLSchema#string",
				MinCount: intPtr(1),
				MaxCount: intPtr(1),
			},
			{
				Path:        "http://example.org/vocab#knows",
				TargetClass: "http://example.org/vocab#Person",
			},
		},
	}
}

func TestModelValidate_OK(t *testing.T) {
	m := &Model{Shapes: []Shape{validShape()}}
	require.NoError(t, m.Validate())
}

func TestModelValidate_MissingTargetClass(t *testing.T) {
	s := validShape()
	s.TargetClass = ""
	m := &Model{Shapes: []Shape{s}}

	err := m.Validate()
	require.ErrorIs(t, err, ErrMissingTarget)
}

func TestModelValidate_DatatypeAndTargetClass(t *testing.T) {
	s := validShape()
	s.Properties[0].TargetClass = "http://example.org/vocab#Person"
	m := &Model{Shapes: []Shape{s}}

	require.ErrorIs(t, m.Validate(), ErrConflictingKind)
}

func TestModelValidate_NeitherDatatypeNorTargetClass(t *testing.T) {
	s := validShape()
	s.Properties[0].Datatype = ""
	m := &Model{Shapes: []Shape{s}}

	require.ErrorIs(t, m.Validate(), ErrConflictingKind)
}

func TestModelValidate_InvertedCardinality(t *testing.T) {
	s := validShape()
	s.Properties[0].MinCount = intPtr(3)
	s.Properties[0].MaxCount = intPtr(1)
	m := &Model{Shapes: []Shape{s}}

	require.ErrorIs(t, m.Validate(), ErrCardinality)
}

func TestModelValidate_DuplicatePath(t *testing.T) {
	s := validShape()
	s.Properties = append(s.Properties, Property{
		Path:     "http://example.org/vocab#name",
		Datatype: "http://www.w3.org/2001/XMLSchema#string",
	})
	m := &Model{Shapes: []Shape{s}}

	require.ErrorIs(t, m.Validate(), ErrDuplicatePath)
}

func TestModelValidate_NameCollision(t *testing.T) {
	// Distinct predicates whose local names normalize to the same Go
	// identifier.
	s := validShape()
	s.Properties = append(s.Properties, Property{
		Path:     "http://example.org/other#name",
		Datatype: "http://www.w3.org/2001/XMLSchema#string",
	})
	m := &Model{Shapes: []Shape{s}}

	err := m.Validate()
	require.ErrorIs(t, err, ErrNameCollision)
	assert.Contains(t, err.Error(), `"name"`)
}

func TestModelValidate_NamespaceOnlyPath(t *testing.T) {
	// A path that is all namespace normalizes to an empty identifier.
	s := validShape()
	s.Properties[0].Path = "http://example.org/vocab#"
	m := &Model{Shapes: []Shape{s}}

	require.ErrorIs(t, m.Validate(), ErrEmptyName)
}

func TestModelValidate_NamespaceOnlyTargetClass(t *testing.T) {
	s := validShape()
	s.TargetClass = "http://example.org/vocab#"
	m := &Model{Shapes: []Shape{s}}

	require.ErrorIs(t, m.Validate(), ErrEmptyName)
}

func TestPropertyGoName(t *testing.T) {
	p := Property{Path: "http://example.org/vocab#postal-code"}
	assert.Equal(t, "postalCode", p.GoName())

	p.Name = "zip_code"
	assert.Equal(t, "zipCode", p.GoName())
}

func TestPropertyCardinalityPredicates(t *testing.T) {
	tests := []struct {
		name     string
		min, max *int
		list     bool
		required bool
	}{
		{"exactly one", intPtr(1), intPtr(1), false, true},
		{"optional single", nil, intPtr(1), false, false},
		{"zero min single", intPtr(0), intPtr(1), false, false},
		{"unbounded", nil, nil, true, false},
		{"bounded list", intPtr(1), intPtr(5), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Property{MinCount: tt.min, MaxCount: tt.max}
			assert.Equal(t, tt.list, p.IsList())
			assert.Equal(t, tt.required, p.IsRequired())
		})
	}
}

func TestDecode(t *testing.T) {
	doc := `{
	  "shapes": [
	    {
	      "shapeIri": "http://example.org/vocab#PersonShape",
	      "targetClass": "http://example.org/vocab#Person",
	      "properties": [
	        {
	          "path": "http://example.org/vocab#name",
	          "datatype": "http://www.w3.org/2001/XMLSchema#string",
	          "minCount": 1,
	          "maxCount": 1,
	          "constraints": {"minLength": 1}
	        }
	      ]
	    }
	  ],
	  "context": {
	    "prefixes": {"ex": "http://example.org/vocab#"},
	    "propertyMappings": {
	      "name": {"id": "http://example.org/vocab#name"}
	    }
	  }
	}`

	m, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, m.Shapes, 1)

	p := m.Shapes[0].Properties[0]
	assert.True(t, p.IsRequired())
	assert.False(t, p.IsList())
	require.NotNil(t, p.Constraints.MinLength)
	assert.Equal(t, 1, *p.Constraints.MinLength)

	assert.Equal(t, "name", m.Context.AliasFor("http://example.org/vocab#name"))
}

func TestDecode_UnknownFieldRejected(t *testing.T) {
	doc := `{"shapes": [], "extra": true}`
	_, err := Decode(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode model")
}

func TestDecode_InvalidModelRejected(t *testing.T) {
	doc := `{"shapes": [{"shapeIri": "s", "properties": []}]}`
	_, err := Decode(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrMissingTarget)
}

func TestShapeFor(t *testing.T) {
	m := &Model{Shapes: []Shape{validShape()}}

	require.NotNil(t, m.ShapeFor("http://example.org/vocab#Person"))
	assert.Nil(t, m.ShapeFor("http://example.org/vocab#Address"))
}
