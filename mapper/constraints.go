package mapper

import (
	"regexp"
	"strings"
)

// qualifier matches a trailing bracketed annotation such as "[opt]" or
// "[0..1)". It opens with "[" and must close with "]" or ")" at the very end.
// A "(" never opens one, so "Tank (large)" keeps its parentheses and resolves
// to the same term as the concept labelled "Tank (large)". The leftmost
// opener wins, so "a[b]c[d]" becomes "a" while "a[b]c" is unchanged.
var qualifier = regexp.MustCompile(`\[.*?[\])]$`)

// Alternatives splits a class_constraint on "|" and returns the usable
// alternatives in order. Each alternative is trimmed and loses its trailing
// qualifier; alternatives that are then empty or start with "#" or "p-" are
// dropped.
func Alternatives(classConstraint string) []string {
	if classConstraint == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(classConstraint, "|") {
		alt := strings.TrimSpace(part)
		alt = strings.TrimSpace(qualifier.ReplaceAllString(alt, ""))
		if alt == "" || strings.HasPrefix(alt, "#") || strings.HasPrefix(alt, "p-") {
			continue
		}
		out = append(out, alt)
	}
	return out
}
