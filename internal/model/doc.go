// Package model defines the data structures shared by the crawler, the
// report writers and the CLI.
//
// This package contains the following main types:
//   - Post: A single channel message as rendered on the web preview
//   - CrawlSummary: A human-oriented description of one crawl run
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The crawler produces Posts and the report package serializes
// them, so centralizing the types prevents import cycles.
package model
