package model

import "sort"

// Post is one channel message rendered on the web preview page.
//
// The JSON field names are part of the output snapshot format and must not
// change.
type Post struct {
	// ID is the message id within the channel. Ids are 1-based and
	// assigned in channel order, so a higher id is a newer post.
	ID int64 `json:"id"`

	// Text is the inner HTML of the message body, not plain text.
	Text string `json:"text"`

	// Date is the ISO-8601 timestamp exactly as published by the page.
	Date string `json:"date"`

	// Views is the view counter display string (e.g. "12K").
	Views string `json:"views"`

	// Photo is the URL of an attached image.
	Photo string `json:"photo"`

	// Video is the URL of an attached video.
	Video string `json:"video"`
}

// IsEmpty reports whether the post is a placeholder render with no text,
// no photo and no video. Such posts are never real messages.
func (p Post) IsEmpty() bool {
	return p.Text == "" && p.Photo == "" && p.Video == ""
}

// SortNewestFirst sorts posts in place by ID descending.
func SortNewestFirst(posts []Post) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].ID > posts[j].ID
	})
}

// MinID returns the smallest id in posts. It returns 0 for an empty slice.
func MinID(posts []Post) int64 {
	if len(posts) == 0 {
		return 0
	}
	lowest := posts[0].ID
	for _, p := range posts[1:] {
		if p.ID < lowest {
			lowest = p.ID
		}
	}
	return lowest
}
