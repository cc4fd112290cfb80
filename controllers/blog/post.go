package controllers

import (
	"errors"

	"lms/database"
	"lms/middleware"
	blogModels "lms/models/blog"
	"lms/readingmode"
	blogValidator "lms/validators/blog"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func publishedPost(db *gorm.DB, postID string) (*blogModels.Post, error) {
	var post blogModels.Post
	err := db.
		Preload("PostChapter", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("id = ? AND is_published = ?", postID, true).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	if post.PostChapter == nil {
		post.PostChapter = []blogModels.PostChapter{}
	}
	return &post, nil
}

func postFailure(c *fiber.Ctx, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Post not found!", nil)
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("load post")
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}

// readingChapters maps stored chapters to the reader's view of them
func readingChapters(chapters []blogModels.PostChapter) []readingmode.Chapter {
	out := make([]readingmode.Chapter, 0, len(chapters))
	for _, ch := range chapters {
		out = append(out, readingmode.Chapter{
			Title:       ch.Title,
			Description: ch.Description,
			ImageURL:    ch.ImageURL,
			Content:     ch.Content,
		})
	}
	return out
}

// GetPost returns a published post with its chapters in order
func GetPost(c *fiber.Ctx) error {
	postID, _ := c.Locals("postID").(string)

	post, err := publishedPost(database.Database.Db, postID)
	if err != nil {
		return postFailure(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Post fetched successfully!", post)
}

// GetReadingView renders a post in the reading mode that a reader with the
// given viewport and controls would see
func GetReadingView(c *fiber.Ctx) error {
	postID, _ := c.Locals("postID").(string)

	query, ok := c.Locals("readingQuery").(*blogValidator.ReadingViewQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	post, err := publishedPost(database.Database.Db, postID)
	if err != nil {
		return postFailure(c, err)
	}

	switcher := readingmode.New(readingChapters(post.PostChapter))
	switcher.Mount(query.Width)

	if query.Mode != 0 {
		if err := switcher.Select(readingmode.Mode(query.Mode)); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{"mode": "Reading mode is not available at this width!"})
		}
	}
	if query.Step > 0 {
		if err := switcher.Advance(query.Step); err != nil {
			log.Error().Err(err).Str("post_id", post.ID).Msg("advance reading view")
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
		}
	}
	if query.FontSize != 0 {
		switcher.SetFontSize(query.FontSize)
	}
	if query.Align != "" {
		switcher.SetAlignment(readingmode.Alignment(query.Align))
	}
	if query.Theme != "" {
		switcher.SetTheme(readingmode.Theme(query.Theme))
	}

	view, err := switcher.Render()
	if err != nil {
		log.Error().Err(err).Str("post_id", post.ID).Msg("render reading view")
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reading view rendered successfully!", fiber.Map{
		"post": fiber.Map{
			"id":          post.ID,
			"title":       post.Title,
			"description": post.Description,
			"image_url":   post.ImageURL,
		},
		"mode":      switcher.ActiveMode(),
		"mode_name": switcher.ActiveMode().String(),
		"font_size": switcher.FontSize(),
		"alignment": switcher.Alignment(),
		"theme":     switcher.Theme(),
		"tabs":      switcher.Tabs(),
		"view":      view,
	})
}
