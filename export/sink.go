package export

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/c360studio/semstreams/errors"
)

// LineWriter writes one line per call to an io.Writer.
type LineWriter struct {
	w *bufio.Writer
}

// NewLineWriter creates a buffered line writer. Call Flush when done.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: bufio.NewWriter(w)}
}

// WriteLine writes line followed by a newline.
func (lw *LineWriter) WriteLine(line string) error {
	if _, err := lw.w.WriteString(line); err != nil {
		return err
	}
	return lw.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (lw *LineWriter) Flush() error {
	return lw.w.Flush()
}

// LineBuffer collects lines in memory.
type LineBuffer struct {
	lines []string
}

// WriteLine appends line.
func (b *LineBuffer) WriteLine(line string) error {
	b.lines = append(b.lines, line)
	return nil
}

// Lines returns the collected lines.
func (b *LineBuffer) Lines() []string {
	return b.lines
}

// String returns the lines joined with newlines, including a final one.
func (b *LineBuffer) String() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n") + "\n"
}

// WriteFileAtomic calls write with a temporary file next to path and renames
// it into place only when write succeeds. A failed run leaves no file.
func WriteFileAtomic(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.WrapFatal(err, "export", "WriteFileAtomic", "create temp file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return errors.WrapFatal(err, "export", "WriteFileAtomic", "chmod temp file")
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapFatal(err, "export", "WriteFileAtomic", "close temp file")
	}
	if err := os.Rename(tmpName, path); err != nil {
		return errors.WrapFatal(err, "export", "WriteFileAtomic", "rename temp file")
	}
	return nil
}
