package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlternatives(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"yamato:Engine", []string{"yamato:Engine"}},
		{"yamato:Engine|yamato:Motor", []string{"yamato:Engine", "yamato:Motor"}},
		{"p-excluded|yamato:Valid[opt]", []string{"yamato:Valid"}},
		{"#note|p-x", nil},
		{"Tank(0..1)", []string{"Tank(0..1)"}},
		{"Tank (large)", []string{"Tank (large)"}},
		{"Tank[0..1)", []string{"Tank"}},
		{"Tank [opt] ", []string{"Tank"}},
		{" a | b ", []string{"a", "b"}},
		{"a[b]c[d]", []string{"a"}},
		{"a[b]c", []string{"a[b]c"}},
		{"a(b]", []string{"a(b]"}},
		{"a(b)[c]", []string{"a(b)"}},
		{"[only]|x", []string{"x"}},
		{"||", nil},
		{"P-upper", []string{"P-upper"}},
		{"yamato:p-x", []string{"yamato:p-x"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Alternatives(tt.in), "Alternatives(%q)", tt.in)
	}
}
