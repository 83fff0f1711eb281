package crawler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/nao1215/tgscrape/internal/model"
)

// Selectors of the web preview markup.
const (
	selectorWrap    = ".tgme_widget_message_wrap"
	selectorBubble  = ".tgme_widget_message_bubble"
	selectorMessage = ".tgme_widget_message[data-post]"
	selectorText    = ".tgme_widget_message_text"
	selectorTime    = "time[datetime]"
	selectorViews   = ".tgme_widget_message_views"
	selectorPhoto   = ".tgme_widget_message_photo_wrap"
	selectorVideo   = "video"
)

// photoURLPattern pulls the image URL out of an inline
// "background-image:url('...')" declaration. Quotes are optional.
var photoURLPattern = regexp.MustCompile(`url\(['"]?(.*?)['"]?\)`)

// ExtractFunc turns one history page into posts in page order.
// Implementations must be pure: no network access and no shared state.
type ExtractFunc func(page string) []model.Post

// ExtractPosts is the default ExtractFunc for the web preview markup.
//
// Containers whose id cannot be parsed and placeholder posts without text,
// photo or video are skipped. A document that cannot be parsed yields no
// posts.
//
// Design decision: We parse with golang.org/x/net/html and query with
// goquery rather than walking the tree by hand because the markup is
// addressed by class names, which CSS selectors express directly.
func ExtractPosts(page string) []model.Post {
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil
	}
	doc := goquery.NewDocumentFromNode(root)

	posts := make([]model.Post, 0)
	doc.Find(selectorWrap).Each(func(_ int, wrap *goquery.Selection) {
		if post, ok := extractPost(wrap); ok {
			posts = append(posts, post)
		}
	})
	return posts
}

// extractPost reads one message container.
func extractPost(wrap *goquery.Selection) (model.Post, bool) {
	bubble := wrap.Find(selectorBubble).First()
	if bubble.Length() == 0 {
		return model.Post{}, false
	}

	id, ok := parsePostID(wrap.Find(selectorMessage).First().AttrOr("data-post", ""))
	if !ok {
		return model.Post{}, false
	}

	post := model.Post{
		ID:    id,
		Text:  innerHTML(bubble.Find(selectorText).First()),
		Date:  bubble.Find(selectorTime).First().AttrOr("datetime", ""),
		Views: strings.TrimSpace(bubble.Find(selectorViews).First().Text()),
		Photo: photoURL(bubble.Find(selectorPhoto).First().AttrOr("style", "")),
		Video: bubble.Find(selectorVideo).First().AttrOr("src", ""),
	}

	if post.IsEmpty() {
		return model.Post{}, false
	}
	return post, true
}

// parsePostID parses the id out of a "<channel>/<id>" post reference.
func parsePostID(dataPost string) (int64, bool) {
	i := strings.LastIndex(dataPost, "/")
	if i < 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(dataPost[i+1:]), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// innerHTML renders the children of the first selected node, trimmed.
func innerHTML(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	content, err := sel.Html()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(content)
}

// photoURL returns the first url(...) value in an inline style.
func photoURL(style string) string {
	m := photoURLPattern.FindStringSubmatch(style)
	if m == nil {
		return ""
	}
	return m[1]
}
