package crawler

import "github.com/nao1215/tgscrape/internal/model"

// state is the crawl state of one Crawl call. It never outlives the call.
type state struct {
	// seen holds every accepted id. The accumulated list contains each id
	// at most once.
	seen map[int64]struct{}

	// accumulated is the working collection. Its order is irrelevant; it is
	// sorted once when the crawl finishes.
	accumulated []model.Post

	// cursor is the id boundary of the next request, or NoCursor.
	cursor int64
}

func newState() *state {
	return &state{
		seen:        make(map[int64]struct{}),
		accumulated: make([]model.Post, 0),
		cursor:      NoCursor,
	}
}

// merge adds the posts whose ids have not been seen and returns how many
// were added.
func (s *state) merge(posts []model.Post) int {
	added := 0
	for _, p := range posts {
		if _, ok := s.seen[p.ID]; ok {
			continue
		}
		s.seen[p.ID] = struct{}{}
		s.accumulated = append(s.accumulated, p)
		added++
	}
	return added
}

// total is the number of unique posts collected so far.
func (s *state) total() int {
	return len(s.accumulated)
}

// sorted returns the accumulated posts newest first.
func (s *state) sorted() []model.Post {
	posts := make([]model.Post, len(s.accumulated))
	copy(posts, s.accumulated)
	model.SortNewestFirst(posts)
	return posts
}

// nextCursor is the smallest id among all posts extracted from a page,
// whether or not they were new.
func nextCursor(page []model.Post) int64 {
	return model.MinID(page)
}
