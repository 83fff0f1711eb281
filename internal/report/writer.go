package report

import (
	"io"

	"github.com/nao1215/tgscrape/internal/model"
)

// SummaryWriter writes the run summary shown at the end of a crawl.
//
// Design decision: We use an interface so the CLI can pick the plain text
// or Markdown rendering with the same call.
type SummaryWriter interface {
	// WriteSummary outputs the summary and returns the number of bytes written.
	WriteSummary(summary *model.CrawlSummary) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
