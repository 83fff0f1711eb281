package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/nao1215/tgscrape/internal/model"
)

// snapshotFileMode is the permission of the written snapshot. The snapshot
// only holds public channel content.
const snapshotFileMode = 0o644

// JSONWriter outputs posts as a JSON array.
//
// Design decision: We use standard encoding/json because the snapshot is a
// flat array of one small struct and needs nothing beyond disabling HTML
// escaping.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
// The snapshot itself is always compact; this exists for debugging output.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// WritePosts outputs posts as one JSON array followed by a newline.
// Post text is HTML, so '<', '>' and '&' are written as-is, and non-ASCII
// characters are never escaped. A nil slice is written as [].
func (w *JSONWriter) WritePosts(posts []model.Post) (int, error) {
	if posts == nil {
		posts = []model.Post{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if w.indent {
		enc.SetIndent("", w.indentString)
	}
	if err := enc.Encode(posts); err != nil {
		return 0, err
	}

	return w.output.Write(buf.Bytes())
}

// WriteSnapshot writes posts to path, replacing any previous file.
//
// The data goes to a temporary file in the same directory which is then
// renamed over path, so readers see either the old or the new snapshot and
// never a partial one. Missing parent directories are created.
func WriteSnapshot(path string, posts []model.Post) (err error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary snapshot: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()         //nolint:errcheck // already failing
			_ = os.Remove(tmpPath) //nolint:errcheck // best effort cleanup
		}
	}()

	if _, err = NewJSONWriter(tmp).WritePosts(posts); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to flush snapshot: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close snapshot: %w", err)
	}
	if err = os.Chmod(tmpPath, snapshotFileMode); err != nil {
		return fmt.Errorf("failed to set snapshot permissions: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}
