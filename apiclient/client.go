// Package apiclient talks to the authoring API over HTTP.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// Section is a section as returned by the API
type Section struct {
	ID          string `json:"id"`
	ChapterID   string `json:"chapter_id"`
	Title       string `json:"title"`
	Position    int    `json:"position"`
	IsPublished bool   `json:"is_published"`
	IsFree      bool   `json:"is_free"`
}

// Chapter is a chapter with its sections in display order
type Chapter struct {
	ID       string    `json:"id"`
	CourseID string    `json:"course_id"`
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// ReorderItem moves one section to a position
type ReorderItem struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// envelope is the response wrapper used by every endpoint
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// APIError is returned for any non-2xx response
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// Client is a typed client of the authoring API
type Client struct {
	http *resty.Client
}

// New returns a client for baseURL that authenticates with a bearer token.
func New(baseURL, token string) *Client {
	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15*time.Second).
		SetHeader("Content-Type", "application/json")
	if token != "" {
		http.SetAuthToken(token)
	}
	return &Client{http: http}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var env envelope

	req := c.http.R().
		SetContext(ctx).
		SetResult(&env).
		SetError(&env)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() || !env.Status {
		return &APIError{StatusCode: resp.StatusCode(), Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

func sectionPath(courseID, chapterID string) string {
	return fmt.Sprintf("/api/courses/%s/chapters/%s/section", url.PathEscape(courseID), url.PathEscape(chapterID))
}

// CreateSection adds a section with the given title at the end of a chapter.
func (c *Client) CreateSection(ctx context.Context, courseID, chapterID, title string) error {
	body := map[string]string{"title": title}
	return c.do(ctx, resty.MethodPost, sectionPath(courseID, chapterID), body, nil)
}

// ReorderSections submits the full list of new positions.
func (c *Client) ReorderSections(ctx context.Context, courseID string, list []ReorderItem) error {
	body := map[string][]ReorderItem{"list": list}
	path := fmt.Sprintf("/api/courses/%s/chapters/reorder", url.PathEscape(courseID))
	return c.do(ctx, resty.MethodPut, path, body, nil)
}

// GetChapter reads a chapter and its ordered sections.
func (c *Client) GetChapter(ctx context.Context, courseID, chapterID string) (Chapter, error) {
	var chapter Chapter
	path := fmt.Sprintf("/api/courses/%s/chapters/%s", url.PathEscape(courseID), url.PathEscape(chapterID))
	err := c.do(ctx, resty.MethodGet, path, nil, &chapter)
	return chapter, err
}
