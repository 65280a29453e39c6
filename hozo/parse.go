package hozo

import (
	"encoding/xml"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/c360studio/semstreams/errors"
	"golang.org/x/net/html/charset"
)

// ErrMalformedDocument is returned when the input is not well-formed XML.
var ErrMalformedDocument = stderrors.New("malformed hozo document")

// Parse decodes a Hozo XML document. Encodings other than UTF-8 are
// honoured when the XML declaration names them.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.WrapInvalid(fmt.Errorf("%w: %v", ErrMalformedDocument, err),
			"hozo", "Parse", "decode XML")
	}
	return &doc, nil
}

// ParseFile opens and parses the document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
