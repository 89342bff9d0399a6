package export

import (
	"fmt"

	"github.com/geoknoesis/rdf-go/rdf"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatJSONLD produces JSON-LD (.jsonld) output.
	FormatJSONLD Format = "jsonld"
)

// FormatInfo provides metadata about an export format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD - JSON for Linked Data",
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat normalizes a format string ("turtle", "ttl", "nt", ...) to
// a supported Format.
func ParseFormat(s string) (Format, error) {
	parsed, ok := rdf.ParseFormat(s)
	if !ok {
		return "", fmt.Errorf("unknown format %q", s)
	}
	f := Format(parsed)
	if _, supported := FormatRegistry[f]; !supported {
		return "", fmt.Errorf("unsupported export format %q", s)
	}
	return f, nil
}

// rdfFormat maps an export format onto the serializer's format name.
// The identifiers coincide; the indirection keeps the registry the single
// place that defines what kastor exports.
func rdfFormat(f Format) rdf.Format {
	return rdf.Format(f)
}
