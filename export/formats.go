package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/geoknoesis/rdf-go/rdf"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle is the native line-oriented Turtle output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"

	// FormatRDFXML produces RDF/XML (.rdf) output.
	FormatRDFXML Format = "rdfxml"

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

	rdf rdf.Format
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatTurtle: {
		Name:        FormatTurtle,
		MIMEType:    "text/turtle",
		Extension:   ".ttl",
		Description: "Turtle - Terse RDF Triple Language",
		rdf:         rdf.FormatTurtle,
	},
	FormatNTriples: {
		Name:        FormatNTriples,
		MIMEType:    "application/n-triples",
		Extension:   ".nt",
		Description: "N-Triples - Line-based RDF format",
		rdf:         rdf.FormatNTriples,
	},
	FormatRDFXML: {
		Name:        FormatRDFXML,
		MIMEType:    "application/rdf+xml",
		Extension:   ".rdf",
		Description: "RDF/XML - XML serialization of RDF",
		rdf:         rdf.FormatRDFXML,
	},
	FormatJSONLD: {
		Name:        FormatJSONLD,
		MIMEType:    "application/ld+json",
		Extension:   ".jsonld",
		Description: "JSON-LD - JSON for Linked Data",
		rdf:         rdf.FormatJSONLD,
	},
}

// GetFormatInfo returns metadata for a format.
func GetFormatInfo(format Format) (FormatInfo, bool) {
	info, ok := FormatRegistry[format]
	return info, ok
}

// ParseFormat resolves a format name or common alias ("ttl", "nt", "xml",
// "json-ld").
func ParseFormat(name string) (Format, error) {
	if f, ok := rdf.ParseFormat(name); ok {
		for _, info := range FormatRegistry {
			if info.rdf == f {
				return info.Name, nil
			}
		}
	}
	return "", fmt.Errorf("unsupported format %q (supported: %s)", name, strings.Join(FormatNames(), ", "))
}

// FormatNames returns the registered format names sorted.
func FormatNames() []string {
	names := make([]string, 0, len(FormatRegistry))
	for name := range FormatRegistry {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}
