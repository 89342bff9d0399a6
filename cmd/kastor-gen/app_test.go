package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/kastor-go/config"
)

const personModel = `{
  "shapes": [
    {
      "shapeIri": "http://example.org/vocab#PersonShape",
      "targetClass": "http://example.org/vocab#Person",
      "properties": [
        {
          "path": "http://example.org/vocab#name",
          "datatype": "http://www.w3.org/2001/XMLSchema#string",
          "minCount": 1,
          "maxCount": 1
        }
      ]
    }
  ]
}`

func testApp(t *testing.T, cfg *config.Config) *app {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := newApp(cfg, logger)
	require.NoError(t, err)
	return a
}

func writeModel(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(personModel), 0644))
	return path
}

func TestRunOnce_SingleModel(t *testing.T) {
	dir := t.TempDir()
	model := writeModel(t, dir, "person.model.json")
	outDir := filepath.Join(dir, "out")

	cfg := config.DefaultConfig()
	cfg.Input.Models = []string{model}
	cfg.Output.Dir = outDir

	require.NoError(t, testApp(t, cfg).RunOnce())

	for _, name := range []string{"person_iface.go", "person_wrapper.go", "dsl.go"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "Code generated by kastor-gen. DO NOT EDIT.")
	}
}

func TestRunOnce_MultipleModelsUseSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeModel(t, dir, "people.model.json")
	writeModel(t, dir, "places.model.json")
	outDir := filepath.Join(dir, "out")

	cfg := config.DefaultConfig()
	cfg.Input.Models = []string{filepath.Join(dir, "*.model.json")}
	cfg.Output.Dir = outDir

	require.NoError(t, testApp(t, cfg).RunOnce())

	_, err := os.Stat(filepath.Join(outDir, "people", "dsl.go"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "places", "dsl.go"))
	require.NoError(t, err)
}

func TestRunOnce_Deterministic(t *testing.T) {
	dir := t.TempDir()
	model := writeModel(t, dir, "person.model.json")
	outDir := filepath.Join(dir, "out")

	cfg := config.DefaultConfig()
	cfg.Input.Models = []string{model}
	cfg.Output.Dir = outDir

	a := testApp(t, cfg)
	require.NoError(t, a.RunOnce())
	first, err := os.ReadFile(filepath.Join(outDir, "dsl.go"))
	require.NoError(t, err)

	require.NoError(t, a.RunOnce())
	second, err := os.ReadFile(filepath.Join(outDir, "dsl.go"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestResolveModels_NoMatches(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Input.Models = []string{filepath.Join(t.TempDir(), "*.json")}

	_, err := testApp(t, cfg).resolveModels()
	require.Error(t, err)
}

func TestResolveModels_Doublestar(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "schemas", "people")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeModel(t, nested, "person.model.json")

	cfg := config.DefaultConfig()
	cfg.Input.Models = []string{filepath.Join(dir, "**", "*.model.json")}

	paths, err := testApp(t, cfg).resolveModels()
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, filepath.Join(nested, "person.model.json"), paths[0])
}

func TestModelStem(t *testing.T) {
	assert.Equal(t, "person", modelStem("schemas/person.model.json"))
	assert.Equal(t, "person", modelStem("person.json"))
	assert.Equal(t, "person", modelStem("person"))
}
