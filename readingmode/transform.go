package readingmode

// Chapter is one content block of a post as the reader sees it.
type Chapter struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Content     string `json:"content"`
}

// StickyItem is one entry of the sticky scroll layout: the text column shows
// title and description, the pinned panel shows image and body.
type StickyItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	Body        string `json:"body"`
}

// TransformPostChapters reshapes a post's chapters for the sticky scroll
// layout. Missing fields pass through as empty strings.
func TransformPostChapters(chapters []Chapter) []StickyItem {
	items := make([]StickyItem, 0, len(chapters))
	for _, ch := range chapters {
		items = append(items, StickyItem{
			Title:       ch.Title,
			Description: ch.Description,
			ImageURL:    ch.ImageURL,
			Body:        RenderMarkdown(ch.Content),
		})
	}
	return items
}
