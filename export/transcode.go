package export

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/c360studio/semstreams/errors"
	"github.com/geoknoesis/rdf-go/rdf"
)

// ErrInvalidTurtle is returned when generated Turtle does not parse.
var ErrInvalidTurtle = stderrors.New("generated turtle does not parse")

// Verify parses Turtle from r and returns the number of RDF statements it
// contains.
func Verify(ctx context.Context, r io.Reader) (int64, error) {
	var n int64
	err := rdf.Parse(ctx, r, rdf.FormatTurtle, func(rdf.Statement) error {
		n++
		return nil
	})
	if err != nil {
		return n, errors.WrapInvalid(fmt.Errorf("%w: %v", ErrInvalidTurtle, err),
			"export", "Verify", "parse turtle")
	}
	return n, nil
}

// Transcode parses Turtle from r and writes it to w in format. It returns
// the number of statements written.
func Transcode(ctx context.Context, r io.Reader, w io.Writer, format Format) (int64, error) {
	info, ok := GetFormatInfo(format)
	if !ok {
		return 0, fmt.Errorf("unsupported format: %s", format)
	}

	writer, err := rdf.NewWriter(w, info.rdf)
	if err != nil {
		return 0, errors.WrapFatal(err, "export", "Transcode", "create "+string(format)+" writer")
	}

	var n int64
	parseErr := rdf.Parse(ctx, r, rdf.FormatTurtle, func(st rdf.Statement) error {
		if err := writer.Write(st); err != nil {
			return err
		}
		n++
		return nil
	})
	if parseErr != nil {
		writer.Close()
		return n, errors.WrapInvalid(fmt.Errorf("%w: %v", ErrInvalidTurtle, parseErr),
			"export", "Transcode", "parse turtle")
	}

	if err := writer.Flush(); err != nil {
		writer.Close()
		return n, errors.WrapFatal(err, "export", "Transcode", "flush "+string(format))
	}
	if err := writer.Close(); err != nil {
		return n, errors.WrapFatal(err, "export", "Transcode", "close "+string(format))
	}
	return n, nil
}
