// Package section implements the chapter section authoring panel: a list of
// sections that can be reordered or opened for editing, and a one-field form
// for creating a new section.
//
// The panel never merges changes locally. After each successful mutation it
// re-reads the chapter from the API and shows what the server returns.
package section

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"lms/apiclient"

	"github.com/rs/zerolog/log"
)

const (
	MsgCreated   = "Chapter section created"
	MsgReordered = "Chapters reordered"
	MsgFailed    = "Something went wrong"

	EmptyLabel = "No chapters"
	DragHint   = "Drag and drop to reorder the chapters"
)

var (
	ErrBusy         = errors.New("section panel: operation already in progress")
	ErrInvalidTitle = errors.New("section panel: title is required")
	ErrFormClosed   = errors.New("section panel: create form is not open")
)

// API is the part of the authoring API the panel uses.
type API interface {
	CreateSection(ctx context.Context, courseID, chapterID, title string) error
	ReorderSections(ctx context.Context, courseID string, list []apiclient.ReorderItem) error
	GetChapter(ctx context.Context, courseID, chapterID string) (apiclient.Chapter, error)
}

// Notifier shows short-lived notices to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Navigator moves the user to another page.
type Navigator interface {
	Push(path string)
}

// View is a snapshot of everything needed to draw the panel.
type View struct {
	Overlay       bool                `json:"overlay"`
	Creating      bool                `json:"creating"`
	ToggleLabel   string              `json:"toggle_label"`
	Title         string              `json:"title"`
	InputDisabled bool                `json:"input_disabled"`
	CanSubmit     bool                `json:"can_submit"`
	Items         []apiclient.Section `json:"items"`
	EmptyLabel    string              `json:"empty_label,omitempty"`
	Hint          string              `json:"hint,omitempty"`
}

// Panel is safe for concurrent use. Network calls run without holding the
// lock, so View can be read while a call is in flight.
type Panel struct {
	courseID  string
	chapterID string

	api    API
	notify Notifier
	nav    Navigator

	mu           sync.Mutex
	items        []apiclient.Section
	isCreating   bool
	isUpdating   bool
	isSubmitting bool
	title        string
}

func New(courseID, chapterID string, initial []apiclient.Section, api API, notify Notifier, nav Navigator) *Panel {
	return &Panel{
		courseID:  courseID,
		chapterID: chapterID,
		api:       api,
		notify:    notify,
		nav:       nav,
		items:     clone(initial),
	}
}

func clone(items []apiclient.Section) []apiclient.Section {
	out := make([]apiclient.Section, len(items))
	copy(out, items)
	return out
}

// EditPath is the page where a single section is edited.
func EditPath(courseID, chapterID, sectionID string) string {
	return fmt.Sprintf("/teacher/courses/%s/chapters/%s/section/%s",
		url.PathEscape(courseID), url.PathEscape(chapterID), url.PathEscape(sectionID))
}

// ToggleCreating opens or closes the create form. The typed title survives
// a cancel.
func (p *Panel) ToggleCreating() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.isCreating = !p.isCreating
}

// SetTitle updates the form field. Ignored while a create is in flight.
func (p *Panel) SetTitle(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.isSubmitting {
		return
	}
	p.title = title
}

// CanSubmit reports whether the create button is enabled.
func (p *Panel) CanSubmit() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.canSubmit()
}

// validTitle matches the server, which trims before checking the length.
func validTitle(title string) bool {
	return len(strings.TrimSpace(title)) >= 1
}

func (p *Panel) canSubmit() bool {
	return validTitle(p.title) && !p.isSubmitting
}

// Create submits the form. On success the form closes, a notice is shown and
// the chapter is re-read once. On failure a generic notice is shown and the
// form keeps its state. A second call while one is in flight returns ErrBusy
// without touching the network.
func (p *Panel) Create(ctx context.Context) error {
	p.mu.Lock()
	switch {
	case !p.isCreating:
		p.mu.Unlock()
		return ErrFormClosed
	case p.isSubmitting:
		p.mu.Unlock()
		return ErrBusy
	case !validTitle(p.title):
		p.mu.Unlock()
		return ErrInvalidTitle
	}
	p.isSubmitting = true
	title := strings.TrimSpace(p.title)
	p.mu.Unlock()

	err := p.api.CreateSection(ctx, p.courseID, p.chapterID, title)

	p.mu.Lock()
	p.isSubmitting = false
	if err == nil {
		p.isCreating = false
		p.title = ""
	}
	p.mu.Unlock()

	if err != nil {
		log.Debug().Err(err).Str("chapter_id", p.chapterID).Msg("create section failed")
		p.notify.Error(MsgFailed)
		return fmt.Errorf("create section: %w", err)
	}

	p.notify.Success(MsgCreated)
	p.refresh(ctx)
	return nil
}

// Reorder submits the post-drag positions. The overlay is shown for the
// whole call and always removed afterwards.
func (p *Panel) Reorder(ctx context.Context, list []apiclient.ReorderItem) error {
	p.mu.Lock()
	if p.isUpdating {
		p.mu.Unlock()
		return ErrBusy
	}
	p.isUpdating = true
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.isUpdating = false
		p.mu.Unlock()
	}()

	if err := p.api.ReorderSections(ctx, p.courseID, list); err != nil {
		log.Debug().Err(err).Str("course_id", p.courseID).Msg("reorder sections failed")
		p.notify.Error(MsgFailed)
		return fmt.Errorf("reorder sections: %w", err)
	}

	p.notify.Success(MsgReordered)
	p.refresh(ctx)
	return nil
}

// Edit navigates to the edit page of a section.
func (p *Panel) Edit(sectionID string) {
	p.nav.Push(EditPath(p.courseID, p.chapterID, sectionID))
}

// Refresh replaces the local list with the server's copy.
func (p *Panel) Refresh(ctx context.Context) error {
	chapter, err := p.api.GetChapter(ctx, p.courseID, p.chapterID)
	if err != nil {
		return fmt.Errorf("refresh chapter: %w", err)
	}

	p.mu.Lock()
	p.items = clone(chapter.Sections)
	p.mu.Unlock()
	return nil
}

// refresh is the post-mutation re-read. A failed read leaves the stale list
// on screen; the mutation itself already succeeded.
func (p *Panel) refresh(ctx context.Context) {
	if err := p.Refresh(ctx); err != nil {
		log.Warn().Err(err).Str("chapter_id", p.chapterID).Msg("refresh after mutation failed")
	}
}

// View returns a snapshot of the panel.
func (p *Panel) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()

	v := View{
		Overlay:       p.isUpdating,
		Creating:      p.isCreating,
		ToggleLabel:   "Add a chapter section",
		Title:         p.title,
		InputDisabled: p.isSubmitting,
		CanSubmit:     p.canSubmit(),
		Items:         clone(p.items),
	}

	if p.isCreating {
		v.ToggleLabel = "Cancel"
		return v
	}

	if len(p.items) == 0 {
		v.EmptyLabel = EmptyLabel
	}
	v.Hint = DragHint
	return v
}
