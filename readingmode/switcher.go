package readingmode

import "errors"

var (
	ErrNotMounted      = errors.New("reading mode switcher is not mounted")
	ErrUnknownMode     = errors.New("unknown reading mode")
	ErrModeUnavailable = errors.New("reading mode is not available at this viewport width")
)

// Tab is the render state of one mode selector button.
type Tab struct {
	ModeInfo
	Active  bool `json:"active"`
	Hovered bool `json:"hovered"`
	Visible bool `json:"visible"`
}

// Switcher selects which single presentation of a post is shown and holds
// the reader's font size. It is not safe for concurrent use.
//
// Nothing renders until Mount is called with the viewport width. Alignment
// and theme are stored for callers but do not influence the views.
type Switcher struct {
	chapters []Chapter

	fontSize  int
	alignment Alignment
	theme     Theme
	active    Mode
	hovered   Mode
	mounted   bool
	width     int

	view View
}

func New(chapters []Chapter) *Switcher {
	return &Switcher{
		chapters:  chapters,
		fontSize:  DefaultFontSize,
		alignment: AlignLeft,
		theme:     ThemeDark,
		active:    ModeStickyScroll,
	}
}

// Mount picks the initial mode from the viewport width. Only the first call
// has an effect.
func (s *Switcher) Mount(width int) {
	if s.mounted {
		return
	}

	s.mounted = true
	s.width = width
	if isWide(width) {
		s.show(ModeStickyScroll)
	} else {
		s.show(ModeNormal)
	}
}

func (s *Switcher) Mounted() bool { return s.mounted }

// Resize records a new viewport width. Narrowing below the breakpoint while
// sticky scroll or chapter cards is active falls back to the normal mode.
// Widening never changes the mode.
func (s *Switcher) Resize(width int) {
	s.width = width
	if !s.mounted {
		return
	}
	if !isWide(width) && s.active.demotable() {
		s.show(ModeNormal)
	}
}

// Select activates mode m. Selecting the active mode keeps its view.
func (s *Switcher) Select(m Mode) error {
	if !m.Valid() {
		return ErrUnknownMode
	}
	if !s.mounted {
		return ErrNotMounted
	}
	if m.DesktopOnly() && !isWide(s.width) {
		return ErrModeUnavailable
	}
	if m == s.active {
		return nil
	}

	s.show(m)
	return nil
}

// show replaces the current view. The previous view is dropped.
func (s *Switcher) show(m Mode) {
	s.active = m
	s.view = newView(m, s.chapters)
}

func (s *Switcher) ActiveMode() Mode { return s.active }

// Advance moves the active view n steps. Switching modes starts the new view
// from its first step again.
func (s *Switcher) Advance(n int) error {
	if !s.mounted {
		return ErrNotMounted
	}
	s.view.Advance(n)
	return nil
}

// Render returns the active view.
func (s *Switcher) Render() (View, error) {
	if !s.mounted {
		return nil, ErrNotMounted
	}
	return s.view, nil
}

func (s *Switcher) FontSize() int { return s.fontSize }

// SetFontSize sets an absolute size, clamped to [MinFontSize, MaxFontSize].
func (s *Switcher) SetFontSize(v int) {
	s.fontSize = clampFont(v)
}

func (s *Switcher) IncreaseFontSize() {
	s.fontSize = clampFont(s.fontSize + 1)
}

func (s *Switcher) DecreaseFontSize() {
	s.fontSize = clampFont(s.fontSize - 1)
}

func clampFont(v int) int {
	return min(max(v, MinFontSize), MaxFontSize)
}

func (s *Switcher) Alignment() Alignment     { return s.alignment }
func (s *Switcher) SetAlignment(a Alignment) { s.alignment = a }
func (s *Switcher) Theme() Theme             { return s.theme }
func (s *Switcher) SetTheme(t Theme)         { s.theme = t }

func (s *Switcher) Hover(m Mode) {
	if m.Valid() {
		s.hovered = m
	}
}

func (s *Switcher) Unhover() { s.hovered = 0 }

// Tabs returns the selector buttons in order. Desktop-only tabs are hidden
// on narrow viewports; the hover marker is not drawn on the active tab.
func (s *Switcher) Tabs() []Tab {
	tabs := make([]Tab, 0, len(modes))
	for _, info := range modes {
		tabs = append(tabs, Tab{
			ModeInfo: info,
			Active:   info.ID == s.active,
			Hovered:  info.ID == s.hovered && info.ID != s.active,
			Visible:  !info.DesktopOnly || isWide(s.width),
		})
	}
	return tabs
}
