// Package log builds the structured logger used by tgscrape, on top of the
// standard slog package.
//
// The crawl handles whole HTML pages and raw post markup. Logging either by
// accident would bury the useful fields, so TruncatingHandler shortens long
// string attributes before they reach the output handler.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("page merged", "page", 3, "new", 20)
//	slog.SetDefault(logger)
package log
