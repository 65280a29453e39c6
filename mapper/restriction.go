package mapper

import (
	"strings"

	"github.com/c360studio/hozo2owl/export"
	vocab "github.com/c360studio/hozo2owl/vocabulary/hozo"
)

// restriction renders an anonymous owl:Restriction on property whose last
// clause is filler, as one tab-joined object.
func restriction(property, fillerPredicate, filler string) string {
	return export.JoinLines(
		"[ "+vocab.Type+" "+vocab.Restriction+" ;",
		"  "+vocab.OnProperty+" "+property+" ;",
		"  "+fillerPredicate+" "+filler,
		"]",
	)
}

// someValuesFrom renders the filler class for constraints: the single term,
// or an anonymous union of all terms in order.
func someValuesFrom(constraints []string) string {
	if len(constraints) == 1 {
		return constraints[0]
	}
	return "[ " + vocab.UnionOf + " (" + strings.Join(constraints, " ") + ") ]"
}
