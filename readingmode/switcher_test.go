package readingmode

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleChapters() []Chapter {
	return []Chapter{
		{Title: "Intro", Description: "Why Go", ImageURL: "/img/1.png", Content: "Hello **world**"},
		{Title: "Types", Description: "Structs", ImageURL: "/img/2.png", Content: "A `struct`"},
		{Title: "Errors", Description: "Wrapping", Content: "Use `%w`"},
	}
}

func mounted(t *testing.T, width int) *Switcher {
	t.Helper()
	s := New(sampleChapters())
	s.Mount(width)
	return s
}

func TestMount_InitialMode(t *testing.T) {
	tests := []struct {
		width int
		want  Mode
	}{
		{width: 1920, want: ModeStickyScroll},
		{width: 1024, want: ModeStickyScroll},
		{width: 1023, want: ModeNormal},
		{width: 375, want: ModeNormal},
		{width: 0, want: ModeNormal},
	}

	for _, tt := range tests {
		s := mounted(t, tt.width)
		assert.Equal(t, tt.want, s.ActiveMode(), "width %d", tt.width)
	}
}

func TestMount_OnlyOnce(t *testing.T) {
	s := mounted(t, 1280)
	s.Mount(320)
	assert.Equal(t, ModeStickyScroll, s.ActiveMode())
}

func TestRender_BeforeMount(t *testing.T) {
	s := New(sampleChapters())

	v, err := s.Render()
	assert.Nil(t, v)
	assert.ErrorIs(t, err, ErrNotMounted)
	assert.ErrorIs(t, s.Select(ModeCarousel), ErrNotMounted)
	assert.False(t, s.Mounted())
}

func TestResize_DemotesDesktopModes(t *testing.T) {
	for _, m := range []Mode{ModeStickyScroll, ModeChapterCards} {
		t.Run(m.String(), func(t *testing.T) {
			s := mounted(t, 1440)
			require.NoError(t, s.Select(m))

			s.Resize(800)
			assert.Equal(t, ModeNormal, s.ActiveMode())

			s.Resize(1440)
			assert.Equal(t, ModeNormal, s.ActiveMode(), "widening never promotes")
		})
	}
}

func TestResize_KeepsOtherModes(t *testing.T) {
	for _, m := range []Mode{ModeNormal, ModeCarousel, ModeFlipBook} {
		t.Run(m.String(), func(t *testing.T) {
			s := mounted(t, 1440)
			require.NoError(t, s.Select(m))

			s.Resize(600)
			assert.Equal(t, m, s.ActiveMode())
		})
	}
}

func TestResize_NarrowMountThenWiden(t *testing.T) {
	s := mounted(t, 600)
	s.Resize(1600)
	assert.Equal(t, ModeNormal, s.ActiveMode())

	require.NoError(t, s.Select(ModeStickyScroll))
	assert.Equal(t, ModeStickyScroll, s.ActiveMode())
}

func TestSelect(t *testing.T) {
	s := mounted(t, 1280)

	assert.ErrorIs(t, s.Select(Mode(0)), ErrUnknownMode)
	assert.ErrorIs(t, s.Select(Mode(6)), ErrUnknownMode)

	for _, info := range Modes() {
		require.NoError(t, s.Select(info.ID))
		v, err := s.Render()
		require.NoError(t, err)
		assert.Equal(t, info.ID, v.Mode())
	}
}

func TestSelect_DesktopOnlyOnNarrowViewport(t *testing.T) {
	s := mounted(t, 700)

	assert.ErrorIs(t, s.Select(ModeStickyScroll), ErrModeUnavailable)
	assert.ErrorIs(t, s.Select(ModeChapterCards), ErrModeUnavailable)
	assert.ErrorIs(t, s.Select(ModeFlipBook), ErrModeUnavailable)
	assert.NoError(t, s.Select(ModeCarousel))
	assert.Equal(t, ModeCarousel, s.ActiveMode())
}

func TestSelect_SwitchDiscardsViewState(t *testing.T) {
	s := mounted(t, 1280)
	require.NoError(t, s.Select(ModeNormal))

	v, err := s.Render()
	require.NoError(t, err)
	normal := v.(*NormalView)
	normal.NextPage()
	normal.NextPage()
	require.Equal(t, 2, normal.Page)

	require.NoError(t, s.Select(ModeCarousel))
	v, err = s.Render()
	require.NoError(t, err)
	carousel := v.(*CarouselView)
	carousel.Next()

	require.NoError(t, s.Select(ModeNormal))
	v, err = s.Render()
	require.NoError(t, err)
	fresh := v.(*NormalView)

	assert.NotSame(t, normal, fresh)
	assert.Equal(t, 0, fresh.Page)
	assert.Equal(t, 2, normal.Page, "old view is untouched, just dropped")
}

func TestSelect_SameModeKeepsView(t *testing.T) {
	s := mounted(t, 1280)
	require.NoError(t, s.Select(ModeCarousel))

	v, _ := s.Render()
	v.(*CarouselView).Next()

	require.NoError(t, s.Select(ModeCarousel))
	again, _ := s.Render()
	assert.Same(t, v, again)
	assert.Equal(t, 1, again.(*CarouselView).Index)
}

func TestResize_DemotionDiscardsViewState(t *testing.T) {
	s := mounted(t, 1280)

	v, _ := s.Render()
	sticky := v.(*StickyScrollView)
	sticky.Focus(2)

	s.Resize(500)
	v, _ = s.Render()
	assert.IsType(t, &NormalView{}, v)
}

func TestFontSize_Clamped(t *testing.T) {
	s := New(nil)
	assert.Equal(t, DefaultFontSize, s.FontSize())

	s.SetFontSize(100)
	assert.Equal(t, MaxFontSize, s.FontSize())
	s.IncreaseFontSize()
	assert.Equal(t, MaxFontSize, s.FontSize())

	s.SetFontSize(-5)
	assert.Equal(t, MinFontSize, s.FontSize())
	s.DecreaseFontSize()
	assert.Equal(t, MinFontSize, s.FontSize())

	s.SetFontSize(18)
	s.IncreaseFontSize()
	assert.Equal(t, 19, s.FontSize())
	s.DecreaseFontSize()
	s.DecreaseFontSize()
	assert.Equal(t, 17, s.FontSize())
}

func TestFontSize_RandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		s := New(nil)
		s.SetFontSize(rng.Intn(200) - 100)

		for op := 0; op < 200; op++ {
			switch rng.Intn(3) {
			case 0:
				s.SetFontSize(rng.Intn(80) - 20)
			case 1:
				s.IncreaseFontSize()
			case 2:
				s.DecreaseFontSize()
			}
			require.GreaterOrEqual(t, s.FontSize(), MinFontSize)
			require.LessOrEqual(t, s.FontSize(), MaxFontSize)
		}
	}
}

func TestTabs(t *testing.T) {
	s := mounted(t, 1280)
	s.Hover(ModeCarousel)

	tabs := s.Tabs()
	require.Len(t, tabs, 5)
	assert.True(t, tabs[0].Active)
	assert.True(t, tabs[3].Hovered)
	for _, tab := range tabs {
		assert.True(t, tab.Visible)
	}

	// hovering the active tab shows no hover marker
	s.Hover(ModeStickyScroll)
	assert.False(t, s.Tabs()[0].Hovered)

	s.Unhover()
	for _, tab := range s.Tabs() {
		assert.False(t, tab.Hovered)
	}

	s.Resize(600)
	tabs = s.Tabs()
	assert.False(t, tabs[0].Visible)
	assert.False(t, tabs[1].Visible)
	assert.True(t, tabs[2].Visible)
	assert.True(t, tabs[3].Visible)
	assert.False(t, tabs[4].Visible)
}

func TestAlignmentAndThemeDoNotAffectView(t *testing.T) {
	s := mounted(t, 1280)
	assert.Equal(t, AlignLeft, s.Alignment())
	assert.Equal(t, ThemeDark, s.Theme())

	before, _ := s.Render()
	s.SetAlignment(AlignCenter)
	s.SetTheme(ThemeLight)
	after, _ := s.Render()

	assert.Same(t, before, after)
	assert.Equal(t, AlignCenter, s.Alignment())
	assert.Equal(t, ThemeLight, s.Theme())
}

func TestSwitcher_Advance(t *testing.T) {
	s := New(sampleChapters())
	assert.ErrorIs(t, s.Advance(1), ErrNotMounted)

	s.Mount(390)
	require.NoError(t, s.Advance(2))

	view, err := s.Render()
	require.NoError(t, err)
	assert.Equal(t, 2, view.(*NormalView).Page)

	require.NoError(t, s.Select(ModeCarousel))
	view, err = s.Render()
	require.NoError(t, err)
	assert.Equal(t, 0, view.(*CarouselView).Index, "a new mode starts at its first step")
}
