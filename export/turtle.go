// Package export provides the Turtle line format, output sinks and
// conversion of generated Turtle into other RDF serializations.
package export

import (
	"fmt"
	"strings"
)

// Separator joins the parts of a statement and the lines of a multi-line
// object so every statement stays on a single output line.
const Separator = "\t"

// FormatPrefix returns a Turtle prefix declaration. An empty prefix
// declares the default namespace.
func FormatPrefix(prefix, iri string) string {
	return fmt.Sprintf("@prefix %s: <%s> .", prefix, iri)
}

// FormatTriple returns "subject<TAB>predicate<TAB>object ." for already
// serialized terms.
func FormatTriple(subject, predicate, object string) string {
	return subject + Separator + predicate + Separator + object + " ."
}

// JoinLines joins the lines of a multi-line object with Separator.
func JoinLines(lines ...string) string {
	return strings.Join(lines, Separator)
}

// Literal returns s as a quoted Turtle string literal.
func Literal(s string) string {
	return `"` + escapeString(s) + `"`
}

// escapeString escapes special characters in strings for RDF serialization.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	s = strings.ReplaceAll(s, "\r", "\\r")
	s = strings.ReplaceAll(s, "\t", "\\t")
	return s
}
