package codegen

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode"

	"github.com/geoknoesis/kastor-go/codegen/gocode"
	"github.com/geoknoesis/kastor-go/schema"
)

// Artifact is one generated source file.
type Artifact struct {
	// Filename is the artifact's file name, without directory.
	Filename string

	// File is the structured representation; render it for the bytes.
	File *gocode.File
}

// Render returns the artifact's gofmt-normalized source text.
func (a Artifact) Render() ([]byte, error) { return a.File.Render() }

// Result is the outcome of one generation run.
type Result struct {
	// Artifacts are the generated files: one interface and one wrapper
	// per shape, plus the single DSL file, in model order.
	Artifacts []Artifact

	// SkippedClasses lists expected classes for which no shape exists.
	// Skipping is a warning, not a failure.
	SkippedClasses []string
}

// Generator runs the generation pipeline. A Generator is not safe for
// concurrent Generate calls; create one per run.
type Generator struct {
	opts   Options
	logger *slog.Logger
	model  *schema.Model
}

// New creates a generator with the given options.
func New(opts Options, logger *slog.Logger) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("codegen options: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{opts: opts, logger: logger}, nil
}

// Generate validates the model and produces the full artifact set: per
// shape an interface file and a wrapper file, plus one DSL file with a
// builder per class and the umbrella entry point.
func (g *Generator) Generate(m *schema.Model) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("schema model: %w", err)
	}
	g.model = m
	defer func() { g.model = nil }()

	result := &Result{}
	g.noteMissingShapes(m, result)

	classes := make([]ClassModel, 0, len(m.Shapes))
	for _, shape := range m.Shapes {
		cm, err := g.classModel(shape)
		if err != nil {
			return nil, err
		}
		classes = append(classes, cm)

		result.Artifacts = append(result.Artifacts,
			Artifact{Filename: fileBase(cm.ClassName) + "_iface.go", File: g.emitInterface(cm)},
			Artifact{Filename: fileBase(cm.ClassName) + "_wrapper.go", File: g.emitWrapper(cm)},
		)
	}

	result.Artifacts = append(result.Artifacts,
		Artifact{Filename: "dsl.go", File: g.emitDSL(classes)})

	g.logger.Info("generation complete",
		slog.Int("shapes", len(m.Shapes)),
		slog.Int("artifacts", len(result.Artifacts)))
	return result, nil
}

// noteMissingShapes warns about classes the model refers to without
// providing a shape: nested targetClass references and JSON-LD type
// mappings. Those classes are simply not generated.
func (g *Generator) noteMissingShapes(m *schema.Model, result *Result) {
	seen := make(map[string]struct{})
	note := func(classIRI, origin string) {
		if m.ShapeFor(classIRI) != nil {
			return
		}
		if _, dup := seen[classIRI]; dup {
			return
		}
		seen[classIRI] = struct{}{}
		result.SkippedClasses = append(result.SkippedClasses, classIRI)
		g.logger.Warn("no shape for expected class, skipping",
			slog.String("class", classIRI),
			slog.String("referenced_by", origin))
	}

	for _, shape := range m.Shapes {
		for _, p := range shape.Properties {
			if p.TargetClass != "" {
				note(p.TargetClass, shape.ShapeIRI)
			}
		}
	}
	// Deterministic order over the alias map.
	for _, alias := range sortedKeys(m.Context.TypeMappings) {
		note(m.Context.TypeMappings[alias], "context type mapping "+alias)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// fileBase converts a class name to its snake_case file stem.
func fileBase(className string) string {
	var b strings.Builder
	for i, r := range className {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
