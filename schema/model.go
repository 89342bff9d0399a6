package schema

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/geoknoesis/kastor-go/schema/naming"
)

// Model is the generator's sole input: the full set of shapes plus the
// JSON-LD context. Built once per run, validated, then read-only.
type Model struct {
	Shapes  []Shape `json:"shapes"`
	Context Context `json:"context,omitempty"`
}

// ShapeFor returns the shape targeting the given class IRI, or nil when
// no shape targets it.
func (m *Model) ShapeFor(classIRI string) *Shape {
	for i := range m.Shapes {
		if m.Shapes[i].TargetClass == classIRI {
			return &m.Shapes[i]
		}
	}
	return nil
}

// Validate checks the structural invariants the emitters rely on:
// every shape has a target class, every property declares exactly one of
// datatype/targetClass, cardinality bounds are ordered, predicate IRIs
// are unique within a shape, identifiers normalize to something
// non-empty, and no two properties normalize to the same Go identifier.
// Duplicates are reported rather than silently overwritten.
func (m *Model) Validate() error {
	for si := range m.Shapes {
		if err := m.Shapes[si].validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Shape) validate() error {
	if s.TargetClass == "" {
		return fmt.Errorf("shape %s: %w", s.ShapeIRI, ErrMissingTarget)
	}
	if naming.ClassNameOf(s.TargetClass) == "" {
		return fmt.Errorf("shape %s: target class %s: %w", s.ShapeIRI, s.TargetClass, ErrEmptyName)
	}

	seenPaths := make(map[string]struct{}, len(s.Properties))
	seenNames := make(map[string]string, len(s.Properties))

	for i := range s.Properties {
		p := &s.Properties[i]

		if p.Path == "" {
			return fmt.Errorf("shape %s: property %d has no path", s.ShapeIRI, i)
		}
		if (p.Datatype == "") == (p.TargetClass == "") {
			return fmt.Errorf("shape %s: property %s: %w", s.ShapeIRI, p.Path, ErrConflictingKind)
		}
		if p.MinCount != nil && p.MaxCount != nil && *p.MinCount > *p.MaxCount {
			return fmt.Errorf("shape %s: property %s: %w (%d > %d)",
				s.ShapeIRI, p.Path, ErrCardinality, *p.MinCount, *p.MaxCount)
		}

		if _, dup := seenPaths[p.Path]; dup {
			return fmt.Errorf("shape %s: %w: %s", s.ShapeIRI, ErrDuplicatePath, p.Path)
		}
		seenPaths[p.Path] = struct{}{}

		name := p.GoName()
		if name == "" {
			return fmt.Errorf("shape %s: property %s: %w", s.ShapeIRI, p.Path, ErrEmptyName)
		}
		if prev, collides := seenNames[name]; collides {
			return fmt.Errorf("shape %s: %w: %s and %s both map to %q",
				s.ShapeIRI, ErrNameCollision, prev, p.Path, name)
		}
		seenNames[name] = p.Path
	}
	return nil
}

// GoName returns the normalized identifier for the property: its declared
// name when present, otherwise the local name of its path IRI.
func (p Property) GoName() string {
	if p.Name != "" {
		return naming.PropertyNameOf(p.Name)
	}
	return naming.PropertyNameOf(naming.LocalName(p.Path))
}

// Decode reads a JSON-serialized model and validates it.
func Decode(r io.Reader) (*Model, error) {
	var m Model
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and validates a model document from disk.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return m, nil
}
