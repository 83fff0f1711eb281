package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/tgscrape/internal/model"
)

// SimpleWriter outputs the run summary as plain text lines, the same style
// as the crawl progress output.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// WriteSummary outputs the summary in human-readable format.
func (w *SimpleWriter) WriteSummary(summary *model.CrawlSummary) (int, error) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nTotal posts scraped: %d\n", summary.Posts)
	fmt.Fprintf(&sb, "Pages fetched: %d\n", summary.Pages)
	if summary.Posts > 0 {
		fmt.Fprintf(&sb, "Id range: %d..%d\n", summary.OldestID, summary.NewestID)
	}
	if summary.Complete() {
		fmt.Fprintf(&sb, "Stopped: %s\n", summary.StopReason)
	} else {
		fmt.Fprintf(&sb, "Stopped: %s (%s)\n", summary.StopReason, summary.Error)
	}
	fmt.Fprintf(&sb, "Saved to %s (%d posts)\n", summary.OutputPath, summary.Posts)

	return io.WriteString(w.output, sb.String())
}
