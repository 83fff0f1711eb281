package crawler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/nao1215/tgscrape/internal/config"
	"github.com/nao1215/tgscrape/internal/model"
)

// StopReason tells why a crawl ended.
type StopReason int

const (
	// StopNone means the crawl has not stopped yet.
	StopNone StopReason = iota

	// StopFetchError means a page could not be fetched. Result.Err holds
	// the *FetchError.
	StopFetchError

	// StopEmptyPage means a page contained no posts: either the end of
	// history or a malformed response.
	StopEmptyPage

	// StopNoNewPosts means every post on a page had already been seen, so
	// pagination did not advance.
	StopNoNewPosts

	// StopReachedOrigin means the first post of the channel was reached.
	StopReachedOrigin

	// StopIterationCap means the crawl fetched MaxPages pages.
	StopIterationCap
)

// String returns a short description of the reason.
func (r StopReason) String() string {
	switch r {
	case StopFetchError:
		return "fetch error"
	case StopEmptyPage:
		return "no posts found"
	case StopNoNewPosts:
		return "no new posts"
	case StopReachedOrigin:
		return "reached beginning"
	case StopIterationCap:
		return "page limit reached"
	default:
		return "running"
	}
}

// Result is the outcome of one crawl.
type Result struct {
	// Posts are the unique posts collected, sorted by id descending.
	Posts []model.Post

	// Pages is the number of fetch attempts, including a failed one.
	Pages int

	// Reason is why the crawl stopped.
	Reason StopReason

	// Err is the fetch error when Reason is StopFetchError.
	Err error
}

// Crawler walks a channel's history backward, one page at a time.
type Crawler struct {
	// fetcher retrieves pages.
	fetcher Fetcher

	// extract turns a page into posts.
	extract ExtractFunc

	// channel is only used for progress output.
	channel string

	// maxPages is the hard iteration cap.
	maxPages int

	// delay is the politeness pause between two fetches.
	delay time.Duration

	// progress receives the human-readable progress lines.
	progress io.Writer

	logger *slog.Logger
}

// Option configures a Crawler.
type Option func(*Crawler)

// WithExtractor replaces the page extractor.
func WithExtractor(extract ExtractFunc) Option {
	return func(c *Crawler) {
		c.extract = extract
	}
}

// WithChannel sets the channel name shown in progress output.
func WithChannel(channel string) Option {
	return func(c *Crawler) {
		c.channel = channel
	}
}

// WithMaxPages sets the iteration cap. Non-positive values keep the default.
func WithMaxPages(maxPages int) Option {
	return func(c *Crawler) {
		if maxPages > 0 {
			c.maxPages = maxPages
		}
	}
}

// WithDelay sets the pause between page fetches.
func WithDelay(d time.Duration) Option {
	return func(c *Crawler) {
		c.delay = d
	}
}

// WithProgress sets where progress lines are printed.
func WithProgress(w io.Writer) Option {
	return func(c *Crawler) {
		c.progress = w
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Crawler) {
		c.logger = logger
	}
}

// New creates a Crawler that reads pages from fetcher.
func New(fetcher Fetcher, opts ...Option) *Crawler {
	c := &Crawler{
		fetcher:  fetcher,
		extract:  ExtractPosts,
		channel:  config.DefaultChannel,
		maxPages: config.DefaultMaxPages,
		delay:    config.DefaultDelay,
		progress: io.Discard,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Crawl walks the history from the newest page backward until a stop
// condition fires and returns everything collected.
//
// Crawl never fails: a fetch error ends the walk and is reported in
// Result.Err next to the posts gathered before it.
func (c *Crawler) Crawl(ctx context.Context) *Result {
	st := newState()
	res := &Result{Reason: StopNone}

	c.printf("Scraping @%s...\n", c.channel)

	for page := 1; page <= c.maxPages; page++ {
		c.printf("  Page %d, before=%s, total=%d\n", page, formatCursor(st.cursor), st.total())

		res.Pages++
		body, err := c.fetcher.Fetch(ctx, st.cursor)
		if err != nil {
			c.printf("  Fetch error: %v\n", err)
			c.logger.Warn("page fetch failed", "page", page, "cursor", st.cursor, "error", err)
			res.Reason = StopFetchError
			res.Err = err
			break
		}

		posts := c.extract(body)
		if len(posts) == 0 {
			c.printf("  No posts found, stopping.\n")
			res.Reason = StopEmptyPage
			break
		}

		added := st.merge(posts)
		c.logger.Debug("page merged",
			"page", page,
			"cursor", st.cursor,
			"extracted", len(posts),
			"new", added,
			"total", st.total(),
		)
		if added == 0 {
			c.printf("  No new posts, stopping.\n")
			res.Reason = StopNoNewPosts
			break
		}

		minID := nextCursor(posts)
		if minID <= 1 {
			c.printf("  Reached beginning.\n")
			res.Reason = StopReachedOrigin
			break
		}
		st.cursor = minID

		if page < c.maxPages {
			c.wait(ctx)
		}
	}

	if res.Reason == StopNone {
		c.printf("  Page limit reached, stopping.\n")
		c.logger.Warn("iteration cap reached", "maxPages", c.maxPages, "cursor", st.cursor)
		res.Reason = StopIterationCap
	}

	res.Posts = st.sorted()
	return res
}

// wait pauses for the politeness delay. A cancelled context ends the pause
// early; the next fetch then fails with the context error.
func (c *Crawler) wait(ctx context.Context) {
	if c.delay <= 0 {
		return
	}
	timer := time.NewTimer(c.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// printf writes one progress line. Progress output is best effort.
func (c *Crawler) printf(format string, args ...any) {
	fmt.Fprintf(c.progress, format, args...)
}

// formatCursor renders the cursor for progress output.
func formatCursor(cursor int64) string {
	if cursor == NoCursor {
		return "none"
	}
	return strconv.FormatInt(cursor, 10)
}
