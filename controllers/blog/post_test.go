package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lms/config"
	"lms/database/dbtest"
	blogModels "lms/models/blog"
	"lms/readingmode"
	"lms/routers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type readingResponse struct {
	Mode     readingmode.Mode  `json:"mode"`
	ModeName string            `json:"mode_name"`
	FontSize int               `json:"font_size"`
	Theme    string            `json:"theme"`
	Tabs     []readingmode.Tab `json:"tabs"`
	View     json.RawMessage   `json:"view"`
}

func setup(t *testing.T) (*fiber.App, blogModels.Post) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	db := dbtest.Open(t)

	post := blogModels.Post{
		Title:       "Learning Go",
		Description: "A short tour",
		IsPublished: true,
		PostChapter: []blogModels.PostChapter{
			{Title: "Second", Description: "d2", Content: "Body **two**", Position: 1, Tags: []string{"go"}},
			{Title: "First", Description: "d1", ImageURL: "/img/1.png", Content: "Body one", Position: 0},
			{Title: "Third", Description: "d3", Content: "Body three", Position: 2},
		},
	}
	require.NoError(t, db.Create(&post).Error)

	draft := blogModels.Post{ID: "draft", Title: "Draft"}
	require.NoError(t, db.Create(&draft).Error)

	return routers.NewApp(nil), post
}

func get(t *testing.T, app *fiber.App, path string) (int, envelope) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func reading(t *testing.T, app *fiber.App, path string) readingResponse {
	t.Helper()

	status, env := get(t, app, path)
	require.Equal(t, http.StatusOK, status, env.Message)

	var out readingResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestGetPost(t *testing.T) {
	app, post := setup(t)

	status, env := get(t, app, "/api/posts/"+post.ID)
	require.Equal(t, http.StatusOK, status)

	var got blogModels.Post
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got.PostChapter, 3)
	assert.Equal(t, "First", got.PostChapter[0].Title)
	assert.Equal(t, "/img/1.png", got.PostChapter[0].ImageURL)
	assert.Equal(t, []string{"go"}, []string(got.PostChapter[1].Tags))
}

func TestGetPost_UnpublishedOrMissing(t *testing.T) {
	app, _ := setup(t)

	status, _ := get(t, app, "/api/posts/draft")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = get(t, app, "/api/posts/nope")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestReadingView_InitialModeByWidth(t *testing.T) {
	app, post := setup(t)

	wide := reading(t, app, "/api/posts/"+post.ID+"/reading?width=1440")
	assert.Equal(t, readingmode.ModeStickyScroll, wide.Mode)
	assert.Equal(t, "Sticky Scroll", wide.ModeName)
	assert.Equal(t, readingmode.DefaultFontSize, wide.FontSize)
	assert.Equal(t, "dark", wide.Theme)

	var sticky readingmode.StickyScrollView
	require.NoError(t, json.Unmarshal(wide.View, &sticky))
	require.Len(t, sticky.Items, 3)
	assert.Equal(t, "First", sticky.Items[0].Title)
	assert.Contains(t, sticky.Items[1].Body, "<strong>two</strong>")

	narrow := reading(t, app, "/api/posts/"+post.ID+"/reading?width=390")
	assert.Equal(t, readingmode.ModeNormal, narrow.Mode)
	assert.False(t, narrow.Tabs[0].Visible)

	var normal readingmode.NormalView
	require.NoError(t, json.Unmarshal(narrow.View, &normal))
	assert.Len(t, normal.Pages, 3)
	assert.Equal(t, 0, normal.Page)
}

func TestReadingView_SelectedModeAndFont(t *testing.T) {
	app, post := setup(t)

	got := reading(t, app, "/api/posts/"+post.ID+"/reading?width=1280&mode=2&font_size=40&theme=light")
	assert.Equal(t, readingmode.ModeChapterCards, got.Mode)
	assert.Equal(t, readingmode.MaxFontSize, got.FontSize)
	assert.Equal(t, "light", got.Theme)

	var cards readingmode.ChapterCardsView
	require.NoError(t, json.Unmarshal(got.View, &cards))
	require.Len(t, cards.Cards, 3)
	assert.Equal(t, "d1", cards.Cards[0].Description)

	got = reading(t, app, "/api/posts/"+post.ID+"/reading?width=600&mode=4&font_size=2")
	assert.Equal(t, readingmode.ModeCarousel, got.Mode)
	assert.Equal(t, readingmode.MinFontSize, got.FontSize)
}

func TestReadingView_Step(t *testing.T) {
	app, post := setup(t)
	base := "/api/posts/" + post.ID + "/reading"

	t.Run("normal", func(t *testing.T) {
		got := reading(t, app, base+"?width=1280&mode=3&step=2")
		var v readingmode.NormalView
		require.NoError(t, json.Unmarshal(got.View, &v))
		assert.Equal(t, 2, v.Page)

		got = reading(t, app, base+"?width=390&step=9")
		require.NoError(t, json.Unmarshal(got.View, &v))
		assert.Equal(t, 2, v.Page, "clamped to the last page")
	})

	t.Run("carousel", func(t *testing.T) {
		got := reading(t, app, base+"?width=600&mode=4&step=4")
		var v readingmode.CarouselView
		require.NoError(t, json.Unmarshal(got.View, &v))
		assert.Equal(t, 1, v.Index)
	})

	t.Run("flip book", func(t *testing.T) {
		got := reading(t, app, base+"?width=1280&mode=5&step=1")
		var v readingmode.FlipBookView
		require.NoError(t, json.Unmarshal(got.View, &v))
		assert.Equal(t, 1, v.Spread)
	})

	t.Run("sticky scroll", func(t *testing.T) {
		got := reading(t, app, base+"?width=1440&step=1")
		var v readingmode.StickyScrollView
		require.NoError(t, json.Unmarshal(got.View, &v))
		assert.Equal(t, 1, v.Active)
	})

	t.Run("zero step stays on first page", func(t *testing.T) {
		got := reading(t, app, base+"?width=1280&mode=3")
		var v readingmode.NormalView
		require.NoError(t, json.Unmarshal(got.View, &v))
		assert.Equal(t, 0, v.Page)
	})
}

func TestReadingView_Rejected(t *testing.T) {
	app, post := setup(t)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "desktop mode on narrow viewport", query: "?width=600&mode=1", want: http.StatusUnprocessableEntity},
		{name: "unknown mode", query: "?width=1280&mode=9", want: http.StatusUnprocessableEntity},
		{name: "negative width", query: "?width=-1", want: http.StatusUnprocessableEntity},
		{name: "bad theme", query: "?theme=sepia", want: http.StatusUnprocessableEntity},
		{name: "negative step", query: "?width=1280&mode=3&step=-1", want: http.StatusUnprocessableEntity},
		{name: "non numeric width", query: "?width=wide", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := get(t, app, "/api/posts/"+post.ID+"/reading"+tt.query)
			assert.Equal(t, tt.want, status)
			assert.False(t, env.Status)
		})
	}

	status, _ := get(t, app, "/api/posts/draft/reading?width=1280")
	assert.Equal(t, http.StatusNotFound, status)
}
