// Package export serializes instance graphs built through the generated
// DSL to standard RDF formats. Serialization is delegated to the rdf-go
// encoders; this package only chooses the format and streams the graph.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/geoknoesis/rdf-go/rdf"

	"github.com/geoknoesis/kastor-go/rdfgraph"
)

// Write serializes the graph to w in the given format. Triples are
// written in insertion order, which keeps output deterministic for a
// deterministically built graph.
func Write(w io.Writer, g *rdfgraph.Graph, format Format) (err error) {
	if _, ok := GetFormatInfo(format); !ok {
		return fmt.Errorf("unsupported export format %q", format)
	}

	enc, err := rdf.NewWriter(w, rdfFormat(format))
	if err != nil {
		return fmt.Errorf("create %s writer: %w", format, err)
	}
	defer func() {
		if cerr := enc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s writer: %w", format, cerr)
		}
	}()

	for _, t := range g.Triples() {
		if werr := enc.Write(rdf.Statement{S: t.S, P: t.P, O: t.O}); werr != nil {
			return fmt.Errorf("write triple: %w", werr)
		}
	}
	if ferr := enc.Flush(); ferr != nil {
		return fmt.Errorf("flush %s writer: %w", format, ferr)
	}
	return nil
}

// WriteFile serializes the graph to a file, creating or truncating it.
func WriteFile(path string, g *rdfgraph.Graph, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, g, format); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}
