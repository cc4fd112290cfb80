package readingmode

import "fmt"

// Mode identifies one of the five reading presentations.
type Mode int

const (
	ModeStickyScroll Mode = iota + 1
	ModeChapterCards
	ModeNormal
	ModeCarousel
	ModeFlipBook
)

const (
	// DesktopBreakpoint is the minimum viewport width, in CSS pixels, that
	// counts as a wide screen.
	DesktopBreakpoint = 1024

	MinFontSize     = 12
	MaxFontSize     = 24
	DefaultFontSize = 16
)

// ModeInfo describes a tab of the mode selector.
type ModeInfo struct {
	ID          Mode   `json:"id"`
	Name        string `json:"name"`
	DesktopOnly bool   `json:"desktop_only"`
}

var modes = []ModeInfo{
	{ID: ModeStickyScroll, Name: "Sticky Scroll", DesktopOnly: true},
	{ID: ModeChapterCards, Name: "Chapter Cards", DesktopOnly: true},
	{ID: ModeNormal, Name: "Normal"},
	{ID: ModeCarousel, Name: "Carousel"},
	{ID: ModeFlipBook, Name: "FlipBook", DesktopOnly: true},
}

// Modes lists every mode in tab order.
func Modes() []ModeInfo {
	out := make([]ModeInfo, len(modes))
	copy(out, modes)
	return out
}

func (m Mode) Valid() bool {
	return m >= ModeStickyScroll && m <= ModeFlipBook
}

func (m Mode) info() ModeInfo {
	return modes[m-1]
}

func (m Mode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return m.info().Name
}

// DesktopOnly reports whether the mode's tab is hidden on narrow viewports.
func (m Mode) DesktopOnly() bool {
	return m.Valid() && m.info().DesktopOnly
}

// demotable modes fall back to ModeNormal when the viewport narrows.
func (m Mode) demotable() bool {
	return m == ModeStickyScroll || m == ModeChapterCards
}

func isWide(width int) bool {
	return width >= DesktopBreakpoint
}

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
