package export_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/c360studio/hozo2owl/export"
)

func TestFormatTriple(t *testing.T) {
	got := export.FormatTriple(":Tank", "rdfs:subClassOf", ":Any")
	if got != ":Tank\trdfs:subClassOf\t:Any ." {
		t.Errorf("FormatTriple = %q", got)
	}
}

func TestFormatPrefix(t *testing.T) {
	if got := export.FormatPrefix("owl", "http://www.w3.org/2002/07/owl#"); got != "@prefix owl: <http://www.w3.org/2002/07/owl#> ." {
		t.Errorf("FormatPrefix = %q", got)
	}
	if got := export.FormatPrefix("", "http://example.org/"); got != "@prefix : <http://example.org/> ." {
		t.Errorf("FormatPrefix default = %q", got)
	}
}

func TestLiteral(t *testing.T) {
	tests := map[string]string{
		"Water Tank":     `"Water Tank"`,
		`say "hi"`:       `"say \"hi\""`,
		"line1\nline2":   `"line1\nline2"`,
		`back\slash`:     `"back\\slash"`,
		"tab\there\r":    `"tab\there\r"`,
		"":               `""`,
		"日本語のラベル": `"日本語のラベル"`,
	}
	for in, want := range tests {
		if got := export.Literal(in); got != want {
			t.Errorf("Literal(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestJoinLines(t *testing.T) {
	if got := export.JoinLines("[ a", "  b", "]"); got != "[ a\t  b\t]" {
		t.Errorf("JoinLines = %q", got)
	}
}

func TestLineWriter(t *testing.T) {
	var buf bytes.Buffer
	lw := export.NewLineWriter(&buf)
	for _, l := range []string{"a", "", "b"} {
		if err := lw.WriteLine(l); err != nil {
			t.Fatalf("WriteLine: %v", err)
		}
	}
	if err := lw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if buf.String() != "a\n\nb\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestLineBuffer(t *testing.T) {
	var b export.LineBuffer
	if b.String() != "" {
		t.Errorf("empty buffer String = %q", b.String())
	}
	_ = b.WriteLine("x")
	_ = b.WriteLine("y")
	if len(b.Lines()) != 2 || b.String() != "x\ny\n" {
		t.Errorf("buffer = %q", b.String())
	}
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.ttl")

	err := export.WriteFileAtomic(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "content\n")
		return err
	})
	if err != nil {
		t.Fatalf("WriteFileAtomic: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "content\n" {
		t.Fatalf("file = %q, %v", data, err)
	}

	failing := filepath.Join(dir, "failed.ttl")
	boom := errors.New("boom")
	err = export.WriteFileAtomic(failing, func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if _, err := os.Stat(failing); !os.IsNotExist(err) {
		t.Errorf("failed write left a file behind: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]export.Format{
		"turtle":   export.FormatTurtle,
		"ttl":      export.FormatTurtle,
		"nt":       export.FormatNTriples,
		"ntriples": export.FormatNTriples,
		"rdfxml":   export.FormatRDFXML,
		"json-ld":  export.FormatJSONLD,
	}
	for name, want := range tests {
		got, err := export.ParseFormat(name)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", name, got, err, want)
		}
	}

	if _, err := export.ParseFormat("trig"); err == nil {
		t.Error("quad formats are not supported for output")
	}
	if _, err := export.ParseFormat("csv"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestFormatRegistry(t *testing.T) {
	for _, name := range export.FormatNames() {
		info, ok := export.GetFormatInfo(export.Format(name))
		if !ok {
			t.Fatalf("format %s missing from registry", name)
		}
		if !strings.HasPrefix(info.Extension, ".") || info.MIMEType == "" {
			t.Errorf("format %s has incomplete metadata: %+v", name, info)
		}
	}
}

const sampleTurtle = `@prefix : <http://example.org/onto#> .
@prefix rdfs: <http://www.w3.org/2000/01/rdf-schema#> .
@prefix owl: <http://www.w3.org/2002/07/owl#> .

:Tank	rdfs:subClassOf	:Any .
:Tank	rdfs:label	"Tank" .
`

func TestVerify(t *testing.T) {
	n, err := export.Verify(context.Background(), strings.NewReader(sampleTurtle))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if n != 2 {
		t.Errorf("statements = %d, want 2", n)
	}
}

func TestVerify_UndeclaredPrefix(t *testing.T) {
	_, err := export.Verify(context.Background(), strings.NewReader(":a :b :c .\n"))
	if !errors.Is(err, export.ErrInvalidTurtle) {
		t.Errorf("err = %v, want ErrInvalidTurtle", err)
	}
}

func TestTranscodeNTriples(t *testing.T) {
	var out bytes.Buffer
	n, err := export.Transcode(context.Background(), strings.NewReader(sampleTurtle), &out, export.FormatNTriples)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	if n != 2 {
		t.Errorf("statements = %d, want 2", n)
	}
	s := out.String()
	if !strings.Contains(s, "<http://example.org/onto#Tank>") {
		t.Errorf("missing expanded subject IRI:\n%s", s)
	}
	if !strings.Contains(s, "<http://www.w3.org/2000/01/rdf-schema#subClassOf>") {
		t.Errorf("missing expanded predicate IRI:\n%s", s)
	}
}
