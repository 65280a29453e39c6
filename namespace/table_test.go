package namespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewTable_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{"valid", []Entry{{"yamato", "http://y/"}, {"ex", "http://e/"}}, nil},
		{"empty table", nil, nil},
		{"empty prefix", []Entry{{"", "http://y/"}}, ErrEmptyPrefix},
		{"colon", []Entry{{"a:b", "http://y/"}}, ErrInvalidPrefix},
		{"space", []Entry{{"a b", "http://y/"}}, ErrInvalidPrefix},
		{"encoded character", []Entry{{"a(b", "http://y/"}}, ErrInvalidPrefix},
		{"duplicate", []Entry{{"a", "http://1/"}, {"a", "http://2/"}}, ErrDuplicatePrefix},
		{"empty iri", []Entry{{"a", ""}}, ErrEmptyIRI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.entries...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTable_LookupAndMatch(t *testing.T) {
	tbl := MustTable(Entry{"yamato", "http://y/"}, Entry{"ex", "http://e/"})

	iri, ok := tbl.Lookup("ex")
	assert.True(t, ok)
	assert.Equal(t, "http://e/", iri)

	_, ok = tbl.Lookup("missing")
	assert.False(t, ok)

	p, ok := tbl.Match("yamato:Engine")
	assert.True(t, ok)
	assert.Equal(t, "yamato", p)

	_, ok = tbl.Match("yamato")
	assert.False(t, ok, "prefix without colon is not a match")

	_, ok = tbl.Match("yamatoX:Engine")
	assert.False(t, ok)
}

func TestTable_NilIsEmpty(t *testing.T) {
	var tbl *Table
	assert.Equal(t, 0, tbl.Len())
	assert.Nil(t, tbl.Entries())
	_, ok := tbl.Match("a:b")
	assert.False(t, ok)
	assert.NoError(t, tbl.Validate())
}

func TestTable_EntriesIsCopy(t *testing.T) {
	tbl := MustTable(Entry{"a", "http://a/"})
	entries := tbl.Entries()
	entries[0].IRI = "changed"

	iri, _ := tbl.Lookup("a")
	assert.Equal(t, "http://a/", iri)
}

func TestTable_YAMLKeepsOrder(t *testing.T) {
	src := `
zeta: http://z/
alpha: http://a/
mid: http://m/
`
	var tbl Table
	require.NoError(t, yaml.Unmarshal([]byte(src), &tbl))

	assert.Equal(t, []Entry{
		{"zeta", "http://z/"},
		{"alpha", "http://a/"},
		{"mid", "http://m/"},
	}, tbl.Entries())

	out, err := yaml.Marshal(tbl)
	require.NoError(t, err)
	assert.Equal(t, "zeta: http://z/\nalpha: http://a/\nmid: http://m/\n", string(out))
}

func TestTable_YAMLRejectsSequence(t *testing.T) {
	var tbl Table
	err := yaml.Unmarshal([]byte("- a\n- b\n"), &tbl)
	assert.Error(t, err)
}
