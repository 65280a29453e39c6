package term

import (
	"strings"

	"github.com/c360studio/hozo2owl/namespace"
)

// Classification is the result of Classify: either Prefixed or Unprefixed.
type Classification interface {
	classification()
}

// Prefixed is a raw term of the form "<Prefix>:<Local>" whose prefix is in
// the table.
type Prefixed struct {
	Prefix string
	Local  string
}

// Unprefixed is a raw term that belongs in the default namespace.
type Unprefixed struct {
	Local string
}

func (Prefixed) classification()   {}
func (Unprefixed) classification() {}

// Resolver maps raw terms to RDF terms against a prefix table.
type Resolver struct {
	prefixes *namespace.Table
}

// NewResolver creates a resolver. A nil table puts every term in the
// default namespace.
func NewResolver(prefixes *namespace.Table) *Resolver {
	return &Resolver{prefixes: prefixes}
}

// Classify splits raw on its first ":" when the part before it is a known
// prefix.
func (r *Resolver) Classify(raw string) Classification {
	if prefix, ok := r.prefixes.Match(raw); ok {
		return Prefixed{Prefix: prefix, Local: raw[len(prefix)+1:]}
	}
	return Unprefixed{Local: raw}
}

// Resolve returns the RDF term for raw without a marker.
func (r *Resolver) Resolve(raw string) string {
	return r.ResolveMarked(raw, "")
}

// ResolveMarked returns the RDF term for raw with marker inserted before the
// encoded local name, e.g. "has_" for property terms.
//
//	yamato:part of  -> yamato:part_of      (no marker)
//	yamato:part of  -> yamato:has_part_of  (marker "has_")
//	part            -> :has_part           (marker "has_")
func (r *Resolver) ResolveMarked(raw, marker string) string {
	switch c := r.Classify(raw).(type) {
	case Prefixed:
		if marker == "" {
			// ":" has no substitution, so encoding the whole term keeps the prefix.
			return Encode(raw)
		}
		return c.Prefix + ":" + marker + Encode(c.Local)
	case Unprefixed:
		return ":" + marker + Encode(c.Local)
	default:
		panic("term: unknown classification")
	}
}

// LocalName returns the part of an RDF term after its first ":".
func LocalName(rdfTerm string) string {
	if i := strings.IndexByte(rdfTerm, ':'); i >= 0 {
		return rdfTerm[i+1:]
	}
	return rdfTerm
}
