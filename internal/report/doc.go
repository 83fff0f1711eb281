// Package report writes the results of a crawl.
//
// Two kinds of output exist:
//   - the snapshot: every collected post as one compact JSON array, written
//     atomically to a file (JSONWriter, WriteSnapshot)
//   - the run summary shown to the user: plain text (SimpleWriter) or
//     Markdown (MarkdownWriter)
package report
