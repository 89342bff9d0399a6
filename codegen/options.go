// Package codegen drives the ontology-to-Go generation pipeline: it
// derives per-class builder models from a validated schema model and runs
// the interface, wrapper, and DSL emitters over them, assembling one set
// of source artifacts per run.
//
// The pipeline is single-pass and side-effect free: Model → resolve →
// {interface, wrapper, DSL} → artifacts. The schema model is never
// mutated, and generating twice from the same model yields byte-identical
// output.
package codegen

import "fmt"

// modulePath anchors the import paths of the runtime packages generated
// code depends on.
const modulePath = "github.com/geoknoesis/kastor-go"

// rdfImportPath is the RDF term model generated code uses.
const rdfImportPath = "github.com/geoknoesis/rdf-go/rdf"

// headerComment is the marker on every generated file.
const headerComment = "Code generated by kastor-gen. DO NOT EDIT."

// ValidationMode selects how generated Validate methods behave. The mode
// is fixed at generation time, not per call.
type ValidationMode string

const (
	// ValidationNone omits Validate methods entirely.
	ValidationNone ValidationMode = "none"

	// ValidationEmbedded generates cardinality checks inline.
	ValidationEmbedded ValidationMode = "embedded"

	// ValidationExternal delegates to a named registered validator.
	ValidationExternal ValidationMode = "external"
)

// ParseValidationMode normalizes a mode string.
func ParseValidationMode(s string) (ValidationMode, error) {
	switch ValidationMode(s) {
	case ValidationNone, ValidationEmbedded, ValidationExternal:
		return ValidationMode(s), nil
	case "":
		return ValidationEmbedded, nil
	default:
		return "", fmt.Errorf("unknown validation mode %q", s)
	}
}

// Options is the generation-time configuration.
type Options struct {
	// PackageName is the package clause of all generated files.
	PackageName string

	// ValidationMode selects none/embedded/external validation.
	ValidationMode ValidationMode

	// ExternalValidator names the registered validator external mode
	// delegates to. Required when ValidationMode is ValidationExternal.
	ExternalValidator string

	// StrictDatatypes fails generation on unrecognized literal
	// datatypes and makes generated list accessors reject (rather than
	// drop) unconvertible values. Off by default: the lenient fallback
	// to string mirrors the original behavior.
	StrictDatatypes bool

	// LangTags emits language-tagged setter variants for string
	// properties.
	LangTags bool

	// CardinalityDocs annotates generated interface properties with
	// their cardinality.
	CardinalityDocs bool
}

// DefaultOptions returns the default generation configuration.
func DefaultOptions() Options {
	return Options{
		PackageName:     "ontology",
		ValidationMode:  ValidationEmbedded,
		LangTags:        true,
		CardinalityDocs: true,
	}
}

// Validate checks option consistency.
func (o Options) Validate() error {
	if o.PackageName == "" {
		return fmt.Errorf("package name must not be empty")
	}
	if _, err := ParseValidationMode(string(o.ValidationMode)); err != nil {
		return err
	}
	if o.ValidationMode == ValidationExternal && o.ExternalValidator == "" {
		return fmt.Errorf("external validation mode requires a validator name")
	}
	return nil
}
