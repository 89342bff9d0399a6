package codegen

import (
	"fmt"
	"log/slog"
	"unicode"
	"unicode/utf8"

	"github.com/geoknoesis/kastor-go/schema"
	"github.com/geoknoesis/kastor-go/schema/naming"
)

// unbounded marks an undeclared cardinality bound in the derived models;
// it matches runtime.Unbounded so derived values can be emitted verbatim
// into CheckCardinality calls.
const unbounded = -1

// ClassModel is the generator-internal model of one shape, consumed by
// all three emitters. Derived once per shape, discarded after the run.
type ClassModel struct {
	// ClassName is the generated interface name.
	ClassName string

	// ClassIRI is the shape's target class.
	ClassIRI string

	// ShapeIRI identifies the originating shape, referenced by
	// generated violation records.
	ShapeIRI string

	// BuilderName is the generated builder type name.
	BuilderName string

	// WrapperName is the unexported wrapper type name.
	WrapperName string

	// Properties are the derived property models, in shape order.
	Properties []PropertyModel
}

// PropertyModel is the derived model of one property constraint.
type PropertyModel struct {
	// Name is the camelCase identifier, used in diagnostics and as the
	// base of generated field and method names.
	Name string

	// Exported is the PascalCase method name.
	Exported string

	// IRI is the predicate path.
	IRI string

	// Datatype is the declared literal datatype IRI, "" for objects.
	Datatype string

	// Description is the sh:description text, "" if undeclared.
	Description string

	// Alias is the JSON-LD context alias for the predicate, "" if none.
	Alias string

	// Type is the resolved target-language type.
	Type naming.TypeRef

	// MinCount and MaxCount are the cardinality bounds, unbounded (-1)
	// when undeclared.
	MinCount int
	MaxCount int

	// Constraints carries the remaining declared restrictions.
	Constraints schema.Constraints
}

// Required reports whether at least one value must be present.
func (p PropertyModel) Required() bool { return p.MinCount >= 1 }

// List reports whether the property is multi-valued.
func (p PropertyModel) List() bool { return p.Type.List }

// HasCardinality reports whether any bound is declared.
func (p PropertyModel) HasCardinality() bool {
	return p.MinCount != unbounded || p.MaxCount != unbounded
}

// classModel derives the ClassModel for a shape. Unrecognized datatypes
// fail in strict mode; in lenient mode they fall back to string with a
// logged warning naming the datatype.
func (g *Generator) classModel(shape schema.Shape) (ClassModel, error) {
	className := naming.ClassNameOf(shape.TargetClass)
	m := ClassModel{
		ClassName:   className,
		ClassIRI:    shape.TargetClass,
		ShapeIRI:    shape.ShapeIRI,
		BuilderName: className + "Builder",
		WrapperName: lowerFirst(className) + "Wrapper",
		Properties:  make([]PropertyModel, 0, len(shape.Properties)),
	}

	for _, p := range shape.Properties {
		pm, err := g.propertyModel(shape, p)
		if err != nil {
			return ClassModel{}, err
		}
		m.Properties = append(m.Properties, pm)
	}
	return m, nil
}

func (g *Generator) propertyModel(shape schema.Shape, p schema.Property) (PropertyModel, error) {
	if p.Datatype != "" {
		if _, known := naming.ScalarOf(p.Datatype); !known {
			if g.opts.StrictDatatypes {
				return PropertyModel{}, fmt.Errorf("shape %s: property %s: unrecognized datatype %s",
					shape.ShapeIRI, p.Path, p.Datatype)
			}
			g.logger.Warn("unrecognized datatype, falling back to string",
				slog.String("shape", shape.ShapeIRI),
				slog.String("path", p.Path),
				slog.String("datatype", p.Datatype))
		}
	}

	typeRef, err := naming.ResolveType(p.Datatype, p.TargetClass, p.MinCount, p.MaxCount, false)
	if err != nil {
		return PropertyModel{}, fmt.Errorf("shape %s: property %s: %w", shape.ShapeIRI, p.Path, err)
	}

	name := p.GoName()
	pm := PropertyModel{
		Name:        name,
		Exported:    upperFirst(name),
		IRI:         p.Path,
		Datatype:    p.Datatype,
		Description: p.Description,
		Alias:       g.model.Context.AliasFor(p.Path),
		Type:        typeRef,
		MinCount:    unbounded,
		MaxCount:    unbounded,
		Constraints: p.Constraints,
	}
	if p.MinCount != nil {
		pm.MinCount = *p.MinCount
	}
	if p.MaxCount != nil {
		pm.MaxCount = *p.MaxCount
	}
	return pm, nil
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
