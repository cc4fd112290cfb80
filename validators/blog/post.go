package blogValidator

import (
	"strings"

	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// ReadingViewQuery describes the reader's viewport and chosen controls.
// Zero values mean "not chosen".
type ReadingViewQuery struct {
	Width    int    `query:"width" json:"width" validate:"gte=0"`
	Mode     int    `query:"mode" json:"mode" validate:"omitempty,min=1,max=5"`
	FontSize int    `query:"font_size" json:"font_size"`
	Align    string `query:"align" json:"align" validate:"omitempty,oneof=left center"`
	Theme    string `query:"theme" json:"theme" validate:"omitempty,oneof=light dark"`
	Step     int    `query:"step" json:"step" validate:"gte=0"` // pages to move forward in the active view
}

// PostParams validates the post ID path parameter
func PostParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID := strings.TrimSpace(c.Params("postId"))
		if postID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Post ID is required!", nil)
		}

		c.Locals("postID", postID)
		return c.Next()
	}
}

// ReadingView validates a reading view request
func ReadingView() fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID := strings.TrimSpace(c.Params("postId"))
		if postID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Post ID is required!", nil)
		}

		query := new(ReadingViewQuery)
		if err := c.QueryParser(query); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		query.Align = strings.ToLower(strings.TrimSpace(query.Align))
		query.Theme = strings.ToLower(strings.TrimSpace(query.Theme))

		if errors := validators.Struct(query); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("postID", postID)
		c.Locals("readingQuery", query)
		return c.Next()
	}
}
