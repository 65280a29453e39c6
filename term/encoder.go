// Package term turns raw Hozo labels into Turtle-safe RDF terms.
//
// Encode maps a natural-language label to a local name. A Resolver decides
// whether a raw term already carries a known namespace prefix and places it
// in the default namespace otherwise.
package term

import "strings"

// Underscored characters are each replaced by "_"; escaped characters are
// percent-encoded using their UTF-8 bytes.
var substitutions = strings.NewReplacer(
	"(", "_",
	")", "_",
	"（", "_",
	"）", "_",
	" ", "_",
	"/", "_",
	"％", "%EF%BC%85",
	`"`, "%22",
	"'", "%27",
	",", "%2C",
	"#", "%23",
	"[", "%5B",
	"]", "%5D",
	"<", "%3C",
	">", "%3E",
)

// Encode converts a label into a local name that is safe inside a Turtle
// prefixed name. The substitution runs in a single pass and exactly one
// trailing "_" is removed afterwards.
//
// Encode is not idempotent. A label ending in several converted characters
// loses one more trailing "_" on every pass.
func Encode(label string) string {
	return strings.TrimSuffix(substitutions.Replace(label), "_")
}
