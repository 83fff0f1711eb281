// Package crawler walks the public web preview of a channel backward in time
// and collects every post it renders.
//
// # Architecture
//
// The package is built from three pieces:
//
//   - Fetcher: retrieves one history page for a pagination cursor
//   - ExtractFunc: turns one page of HTML into posts (ExtractPosts by default)
//   - Crawler: drives fetch, extract and merge until a stop condition fires
//
// The Crawler owns the crawl state (the set of seen ids, the accumulated
// posts and the cursor) for the duration of one Crawl call. Nothing is shared
// across goroutines: pages are fetched strictly one after another.
//
// # Pagination
//
// The web preview pages backward by post id. The cursor for the next request
// is always the smallest id extracted from the current page, including ids
// that were already seen, so the cursor moves down even when pages overlap.
//
// # Termination
//
// A crawl stops when a fetch fails, a page has no posts, a page adds no new
// posts, the first post of the channel (id 1) is reached, or the iteration
// cap is hit. A fetch failure is not an error for the caller: the posts
// collected so far are still returned.
//
// # Usage
//
//	fetcher := crawler.NewHTTPFetcher(cfg.ChannelURL())
//	c := crawler.New(fetcher, crawler.WithMaxPages(500))
//	result := c.Crawl(ctx)
package crawler
