// Package config provides configuration loading and management for kastor.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/kastor-go/codegen"
)

// Config represents the complete kastor configuration.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Generation GenerationConfig `yaml:"generation"`
}

// InputConfig configures where model documents come from.
type InputConfig struct {
	// Models are glob patterns matching model JSON documents,
	// e.g. "schemas/**/*.json". Doublestar patterns are supported.
	Models []string `yaml:"models"`
}

// OutputConfig configures where generated code is written.
type OutputConfig struct {
	// Dir is the directory generated files are written into.
	Dir string `yaml:"dir"`
}

// GenerationConfig configures the generator itself.
type GenerationConfig struct {
	// Package is the package clause of generated files.
	Package string `yaml:"package"`

	// Validation selects the validation mode: none, embedded, external.
	Validation string `yaml:"validation"`

	// ExternalValidator names the registered validator for external mode.
	ExternalValidator string `yaml:"externalValidator"`

	// StrictDatatypes fails generation on unrecognized datatypes instead
	// of falling back to string.
	StrictDatatypes bool `yaml:"strictDatatypes"`

	// LangTags enables language-tagged setter variants.
	LangTags *bool `yaml:"langTags"`

	// CardinalityDocs annotates interface properties with cardinality.
	CardinalityDocs *bool `yaml:"cardinalityDocs"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Models: []string{"*.model.json"},
		},
		Output: OutputConfig{
			Dir: "ontology",
		},
		Generation: GenerationConfig{
			Package:    "ontology",
			Validation: string(codegen.ValidationEmbedded),
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Input.Models) == 0 {
		return fmt.Errorf("input.models is required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if _, err := c.Options(); err != nil {
		return err
	}
	return nil
}

// Options derives the generator options from the configuration.
func (c *Config) Options() (codegen.Options, error) {
	mode, err := codegen.ParseValidationMode(c.Generation.Validation)
	if err != nil {
		return codegen.Options{}, fmt.Errorf("generation.validation: %w", err)
	}

	opts := codegen.DefaultOptions()
	if c.Generation.Package != "" {
		opts.PackageName = c.Generation.Package
	}
	opts.ValidationMode = mode
	opts.ExternalValidator = c.Generation.ExternalValidator
	opts.StrictDatatypes = c.Generation.StrictDatatypes
	if c.Generation.LangTags != nil {
		opts.LangTags = *c.Generation.LangTags
	}
	if c.Generation.CardinalityDocs != nil {
		opts.CardinalityDocs = *c.Generation.CardinalityDocs
	}

	if err := opts.Validate(); err != nil {
		return codegen.Options{}, err
	}
	return opts, nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	// Input
	if len(other.Input.Models) > 0 {
		c.Input.Models = other.Input.Models
	}

	// Output
	if other.Output.Dir != "" {
		c.Output.Dir = other.Output.Dir
	}

	// Generation
	if other.Generation.Package != "" {
		c.Generation.Package = other.Generation.Package
	}
	if other.Generation.Validation != "" {
		c.Generation.Validation = other.Generation.Validation
	}
	if other.Generation.ExternalValidator != "" {
		c.Generation.ExternalValidator = other.Generation.ExternalValidator
	}
	if other.Generation.StrictDatatypes {
		c.Generation.StrictDatatypes = true
	}
	if other.Generation.LangTags != nil {
		c.Generation.LangTags = other.Generation.LangTags
	}
	if other.Generation.CardinalityDocs != nil {
		c.Generation.CardinalityDocs = other.Generation.CardinalityDocs
	}
}
