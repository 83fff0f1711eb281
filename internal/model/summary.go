package model

import "time"

// CrawlSummary describes the outcome of one crawl run for display.
// It is derived from the crawl result after the fact and is never persisted.
type CrawlSummary struct {
	// Channel is the channel identifier that was crawled.
	Channel string

	// OutputPath is where the snapshot was written.
	OutputPath string

	// Pages is the number of fetch attempts made, including a failed one.
	Pages int

	// Posts is the number of unique posts collected.
	Posts int

	// NewestID and OldestID bound the collected ids. Both are 0 when no
	// posts were collected.
	NewestID int64
	OldestID int64

	// StopReason is the human-readable termination reason.
	StopReason string

	// Error holds the fetch error text when the crawl stopped early.
	Error string

	// StartedAt is when the crawl began.
	StartedAt time.Time

	// Duration is how long the crawl took, excluding the snapshot write.
	Duration time.Duration
}

// NewCrawlSummary builds a summary from a newest-first post list.
func NewCrawlSummary(channel string, posts []Post) *CrawlSummary {
	s := &CrawlSummary{
		Channel: channel,
		Posts:   len(posts),
	}
	if len(posts) > 0 {
		s.NewestID = posts[0].ID
		s.OldestID = posts[len(posts)-1].ID
	}
	return s
}

// Complete reports whether the crawl ended without a fetch error.
func (s *CrawlSummary) Complete() bool {
	return s.Error == ""
}
