package crawler

import (
	"testing"

	"github.com/nao1215/tgscrape/internal/model"
)

func TestStateMerge(t *testing.T) {
	t.Parallel()

	t.Run("counts only new ids", func(t *testing.T) {
		t.Parallel()

		st := newState()
		if added := st.merge(textPosts(100, 99)); added != 2 {
			t.Errorf("expected 2 new posts, got %d", added)
		}
		if added := st.merge(textPosts(99, 98)); added != 1 {
			t.Errorf("expected 1 new post, got %d", added)
		}
		if st.total() != 3 {
			t.Errorf("expected 3 posts in total, got %d", st.total())
		}
	})

	t.Run("merging the same page twice is idempotent", func(t *testing.T) {
		t.Parallel()

		page := textPosts(10, 9, 8, 7)

		once := newState()
		once.merge(page)

		twice := newState()
		twice.merge(page)
		if added := twice.merge(page); added != 0 {
			t.Errorf("expected second merge to add nothing, added %d", added)
		}

		if !equalIDs(ids(once.sorted()), ids(twice.sorted())) {
			t.Errorf("expected identical sets, got %v and %v", ids(once.sorted()), ids(twice.sorted()))
		}
	})

	t.Run("duplicate ids within one page are kept once", func(t *testing.T) {
		t.Parallel()

		st := newState()
		if added := st.merge(textPosts(5, 5, 4)); added != 2 {
			t.Errorf("expected 2 new posts, got %d", added)
		}
	})

	t.Run("first occurrence of an id wins", func(t *testing.T) {
		t.Parallel()

		st := newState()
		st.merge([]model.Post{{ID: 1, Text: "first"}})
		st.merge([]model.Post{{ID: 1, Text: "second"}})
		if got := st.sorted()[0].Text; got != "first" {
			t.Errorf("expected first version to be kept, got %q", got)
		}
	})
}

func TestStateSorted(t *testing.T) {
	t.Parallel()

	st := newState()
	st.merge(textPosts(3, 7, 1))
	st.merge(textPosts(9, 2))

	got := ids(st.sorted())
	want := []int64{9, 7, 3, 2, 1}
	if !equalIDs(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// sorting must not reorder the working collection
	if st.accumulated[0].ID != 3 {
		t.Errorf("expected accumulation order to be untouched, got %v", ids(st.accumulated))
	}
}

func TestNextCursor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page []model.Post
		want int64
	}{
		{name: "newest first page", page: textPosts(100, 99, 98), want: 98},
		{name: "unordered page", page: textPosts(40, 12, 33), want: 12},
		{name: "single post", page: textPosts(5), want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := nextCursor(tt.page); got != tt.want {
				t.Errorf("nextCursor = %d, want %d", got, tt.want)
			}
		})
	}
}
