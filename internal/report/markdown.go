package report

import (
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	"github.com/nao1215/tgscrape/internal/model"
)

// MarkdownWriter outputs the run summary in GitHub flavored Markdown, for
// pasting into issues or CI job summaries.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation, which gives us tables and alerts without hand-escaping.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// WriteSummary outputs the summary in Markdown format.
func (w *MarkdownWriter) WriteSummary(summary *model.CrawlSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Crawl of @" + summary.Channel)
	md.PlainText("")

	rows := [][]string{
		{"Channel", "`" + summary.Channel + "`"},
		{"Started", summary.StartedAt.Format("2006-01-02 15:04:05 MST")},
		{"Duration", summary.Duration.Round(time.Millisecond).String()},
		{"Pages Fetched", strconv.Itoa(summary.Pages)},
		{"Posts Collected", strconv.Itoa(summary.Posts)},
	}
	if summary.Posts > 0 {
		rows = append(rows,
			[]string{"Newest Post", strconv.FormatInt(summary.NewestID, 10)},
			[]string{"Oldest Post", strconv.FormatInt(summary.OldestID, 10)},
		)
	}
	rows = append(rows,
		[]string{"Stop Reason", summary.StopReason},
		[]string{"Snapshot", "`" + summary.OutputPath + "`"},
	)

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	if summary.Complete() {
		md.Note("History walk finished without errors.")
	} else {
		md.Warningf("Crawl stopped early after a fetch error: %s. The snapshot holds partial results.", summary.Error)
	}

	return len(md.String()), md.Build()
}
