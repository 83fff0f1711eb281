package crawler

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nao1215/tgscrape/internal/model"
)

// message describes one container of a fake web preview page.
type message struct {
	DataPost string // overrides "testchan/<ID>" when set
	ID       int64
	Text     string
	Date     string
	Views    string
	Photo    string // full style attribute value of the photo wrap
	Video    string
	NoBubble bool
}

// renderPage builds web preview markup for the given messages, in order.
func renderPage(msgs ...message) string {
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html><html><head><title>Test channel</title></head><body>`)
	sb.WriteString(`<section class="tgme_channel_history js-message_history">`)
	for _, m := range msgs {
		dataPost := m.DataPost
		if dataPost == "" {
			dataPost = fmt.Sprintf("testchan/%d", m.ID)
		}
		sb.WriteString(`<div class="tgme_widget_message_wrap js-widget_message_wrap">`)
		fmt.Fprintf(&sb, `<div class="tgme_widget_message text_not_supported_wrap js-widget_message" data-post="%s">`, dataPost)
		if !m.NoBubble {
			sb.WriteString(`<div class="tgme_widget_message_bubble">`)
			if m.Photo != "" {
				fmt.Fprintf(&sb, `<a class="tgme_widget_message_photo_wrap" href="https://t.me/%s" style="%s"></a>`, dataPost, m.Photo)
			}
			if m.Video != "" {
				fmt.Fprintf(&sb, `<div class="tgme_widget_message_video_wrap"><video src="%s" class="tgme_widget_message_video" muted playsinline></video></div>`, m.Video)
			}
			if m.Text != "" {
				fmt.Fprintf(&sb, `<div class="tgme_widget_message_text js-message_text" dir="auto">%s</div>`, m.Text)
			}
			sb.WriteString(`<div class="tgme_widget_message_footer compact js-message_footer"><div class="tgme_widget_message_info short js-message_info">`)
			if m.Views != "" {
				fmt.Fprintf(&sb, `<span class="tgme_widget_message_views">%s</span>`, m.Views)
			}
			if m.Date != "" {
				fmt.Fprintf(&sb, `<span class="tgme_widget_message_meta"><a class="tgme_widget_message_date" href="https://t.me/%s"><time datetime="%s" class="time">10:00</time></a></span>`, dataPost, m.Date)
			}
			sb.WriteString(`</div></div></div>`)
		}
		sb.WriteString(`</div></div>`)
	}
	sb.WriteString(`</section></body></html>`)
	return sb.String()
}

// textPost returns a minimal real post.
func textPost(id int64) model.Post {
	return model.Post{ID: id, Text: "post " + strconv.FormatInt(id, 10)}
}

// textPosts returns minimal real posts for ids, in the given order.
func textPosts(ids ...int64) []model.Post {
	posts := make([]model.Post, 0, len(ids))
	for _, id := range ids {
		posts = append(posts, textPost(id))
	}
	return posts
}

// pagedSource is a Fetcher and ExtractFunc pair that serves pre-built
// pages keyed by cursor. The fetched "HTML" is just the cursor, which the
// paired extractor maps back to posts.
type pagedSource struct {
	// pages maps a cursor to the posts of the page below it.
	pages map[int64][]model.Post

	// next, when set, builds the page for cursors missing from pages.
	next func(cursor int64) []model.Post

	// failOn maps a 1-based call number to the error returned by that call.
	failOn map[int]error

	// calls records the cursor of every Fetch call.
	calls []int64
}

func (s *pagedSource) Fetch(ctx context.Context, cursor int64) (string, error) {
	s.calls = append(s.calls, cursor)
	if err, ok := s.failOn[len(s.calls)]; ok {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", &FetchError{URL: "stub", Err: err}
	}
	return strconv.FormatInt(cursor, 10), nil
}

func (s *pagedSource) Extract(page string) []model.Post {
	cursor, err := strconv.ParseInt(page, 10, 64)
	if err != nil {
		return nil
	}
	if posts, ok := s.pages[cursor]; ok {
		return posts
	}
	if s.next != nil {
		return s.next(cursor)
	}
	return nil
}

// newTestCrawler wires a pagedSource into a Crawler without delays.
func newTestCrawler(src *pagedSource, opts ...Option) *Crawler {
	base := []Option{WithExtractor(src.Extract), WithDelay(0)}
	return New(src, append(base, opts...)...)
}

// ids returns the ids of posts in order.
func ids(posts []model.Post) []int64 {
	out := make([]int64, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
