package term

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/c360studio/hozo2owl/namespace"
)

func testTable() *namespace.Table {
	return namespace.MustTable(
		namespace.Entry{Prefix: "yamato", IRI: "http://www.hozo.jp/owl/YAMATO.owl#"},
		namespace.Entry{Prefix: "ex", IRI: "http://example.org/"},
	)
}

func TestResolver_Classify(t *testing.T) {
	r := NewResolver(testTable())

	assert.Equal(t, Prefixed{Prefix: "yamato", Local: "Engine"}, r.Classify("yamato:Engine"))
	assert.Equal(t, Prefixed{Prefix: "ex", Local: "a:b"}, r.Classify("ex:a:b"))
	assert.Equal(t, Unprefixed{Local: "Water Tank"}, r.Classify("Water Tank"))
	assert.Equal(t, Unprefixed{Local: "unknown:Thing"}, r.Classify("unknown:Thing"))
	assert.Equal(t, Unprefixed{Local: "yamatoEngine"}, r.Classify("yamatoEngine"))
}

func TestResolver_ResolveMarked(t *testing.T) {
	r := NewResolver(testTable())

	tests := []struct {
		name   string
		raw    string
		marker string
		want   string
	}{
		{"prefixed", "yamato:Engine", "", "yamato:Engine"},
		{"prefixed encoded", "yamato:water tank", "", "yamato:water_tank"},
		{"prefixed marker", "yamato:part", "has_", "yamato:has_part"},
		{"prefixed marker encodes rest only", "yamato:part of (x)", "has_", "yamato:has_part_of__x"},
		{"prefixed marker keeps later colons", "ex:a:b", "has_", "ex:has_a:b"},
		{"unprefixed", "Water Tank", "", ":Water_Tank"},
		{"unprefixed marker", "part", "has_", ":has_part"},
		{"unknown prefix goes to default namespace", "foo:bar", "", ":foo:bar"},
		{"hyphenated relation", "part-of", "has_", ":has_part-of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ResolveMarked(tt.raw, tt.marker))
		})
	}
}

func TestResolver_PrefixRoundTrip(t *testing.T) {
	r := NewResolver(testTable())
	for _, raw := range []string{"yamato:x", "yamato:a b", "ex:(x)", "ex:"} {
		for _, marker := range []string{"", "has_"} {
			got := r.ResolveMarked(raw, marker)
			p := raw[:strings.IndexByte(raw, ':')+1]
			assert.True(t, strings.HasPrefix(got, p), "ResolveMarked(%q, %q) = %q", raw, marker, got)
		}
	}
}

func TestResolver_DefaultNamespace(t *testing.T) {
	r := NewResolver(testTable())
	for _, raw := range []string{"Tank", "big tank", "x:y", ""} {
		for _, marker := range []string{"", "has_"} {
			got := r.ResolveMarked(raw, marker)
			assert.True(t, strings.HasPrefix(got, ":"+marker), "ResolveMarked(%q, %q) = %q", raw, marker, got)
		}
	}
}

func TestResolver_NilTable(t *testing.T) {
	r := NewResolver(nil)
	assert.Equal(t, ":yamato:Engine", r.Resolve("yamato:Engine"))
}

func TestLocalName(t *testing.T) {
	assert.Equal(t, "Engine", LocalName("yamato:Engine"))
	assert.Equal(t, "", LocalName(":"))
	assert.Equal(t, "a:b", LocalName("ex:a:b"))
	assert.Equal(t, "plain", LocalName("plain"))
}
