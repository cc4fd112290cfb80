package readingmode

// View is the content of the active mode. Each mode gets a fresh View when
// it becomes active; navigation state inside a view never outlives it.
type View interface {
	Mode() Mode
	// Advance moves n steps forward, or back for negative n, with the
	// mode's own paging rules.
	Advance(n int)
}

// Page is a chapter prepared for the paged layouts.
type Page struct {
	Index       int    `json:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	Body        string `json:"body"`
}

func pagesOf(chapters []Chapter) []Page {
	pages := make([]Page, 0, len(chapters))
	for i, ch := range chapters {
		pages = append(pages, Page{
			Index:       i,
			Title:       ch.Title,
			Description: ch.Description,
			ImageURL:    ch.ImageURL,
			Body:        RenderMarkdown(ch.Content),
		})
	}
	return pages
}

// StickyScrollView pins the body of the focused item while the list scrolls.
type StickyScrollView struct {
	Items  []StickyItem `json:"items"`
	Active int          `json:"active"`
}

func (v *StickyScrollView) Mode() Mode { return ModeStickyScroll }

// Focus marks item i as the one in view. Out of range values are clamped.
func (v *StickyScrollView) Focus(i int) {
	v.Active = clampIndex(i, len(v.Items))
}

func (v *StickyScrollView) Advance(n int) { v.Focus(v.Active + n) }

// Card is a chapter summary in the card grid.
type Card struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}

// ChapterCardsView shows every chapter as a card.
type ChapterCardsView struct {
	Cards []Card `json:"cards"`
}

func (v *ChapterCardsView) Mode() Mode { return ModeChapterCards }

// Advance does nothing: every card is on screen at once.
func (v *ChapterCardsView) Advance(int) {}

// NormalView shows one chapter per page.
type NormalView struct {
	Pages []Page `json:"pages"`
	Page  int    `json:"page"`
}

func (v *NormalView) Mode() Mode { return ModeNormal }

func (v *NormalView) HasNext() bool { return v.Page < len(v.Pages)-1 }
func (v *NormalView) HasPrev() bool { return v.Page > 0 }

func (v *NormalView) NextPage() {
	if v.HasNext() {
		v.Page++
	}
}

func (v *NormalView) PrevPage() {
	if v.HasPrev() {
		v.Page--
	}
}

func (v *NormalView) Advance(n int) {
	v.Page = clampIndex(v.Page+n, len(v.Pages))
}

// Current returns the visible page, false when the post has no chapters.
func (v *NormalView) Current() (Page, bool) {
	if len(v.Pages) == 0 {
		return Page{}, false
	}
	return v.Pages[v.Page], true
}

// CarouselView cycles through chapters, wrapping at both ends.
type CarouselView struct {
	Slides []Page `json:"slides"`
	Index  int    `json:"index"`
}

func (v *CarouselView) Mode() Mode { return ModeCarousel }

func (v *CarouselView) Next() {
	if n := len(v.Slides); n > 0 {
		v.Index = (v.Index + 1) % n
	}
}

func (v *CarouselView) Prev() {
	if n := len(v.Slides); n > 0 {
		v.Index = (v.Index - 1 + n) % n
	}
}

func (v *CarouselView) Advance(n int) {
	if k := len(v.Slides); k > 0 {
		v.Index = ((v.Index+n)%k + k) % k
	}
}

// FlipBookView shows two facing pages per spread.
type FlipBookView struct {
	Pages  []Page `json:"pages"`
	Spread int    `json:"spread"`
}

func (v *FlipBookView) Mode() Mode { return ModeFlipBook }

// Spreads is the number of two-page spreads.
func (v *FlipBookView) Spreads() int {
	return (len(v.Pages) + 1) / 2
}

func (v *FlipBookView) Flip() {
	if v.Spread < v.Spreads()-1 {
		v.Spread++
	}
}

func (v *FlipBookView) FlipBack() {
	if v.Spread > 0 {
		v.Spread--
	}
}

func (v *FlipBookView) Advance(n int) {
	v.Spread = clampIndex(v.Spread+n, v.Spreads())
}

// Visible returns the pages of the current spread: two, or one for the
// last spread of an odd-length book.
func (v *FlipBookView) Visible() []Page {
	start := v.Spread * 2
	if start >= len(v.Pages) {
		return nil
	}
	end := min(start+2, len(v.Pages))
	return v.Pages[start:end]
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// newView builds the content for mode m. Sticky scroll consumes the reshaped
// list; the other modes read the chapters as given.
func newView(m Mode, chapters []Chapter) View {
	switch m {
	case ModeStickyScroll:
		return &StickyScrollView{Items: TransformPostChapters(chapters)}
	case ModeChapterCards:
		cards := make([]Card, 0, len(chapters))
		for _, ch := range chapters {
			cards = append(cards, Card{Title: ch.Title, Description: ch.Description, ImageURL: ch.ImageURL})
		}
		return &ChapterCardsView{Cards: cards}
	case ModeCarousel:
		return &CarouselView{Slides: pagesOf(chapters)}
	case ModeFlipBook:
		return &FlipBookView{Pages: pagesOf(chapters)}
	default:
		return &NormalView{Pages: pagesOf(chapters)}
	}
}
