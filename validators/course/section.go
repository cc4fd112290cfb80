package courseValidator

import (
	"strings"

	"lms/middleware"
	"lms/validators"

	"github.com/gofiber/fiber/v2"
)

// CreateSectionRequest is the body of a section create call
type CreateSectionRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
}

// UpdateSectionRequest is a partial update; nil fields are left untouched
type UpdateSectionRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
	VideoURL    *string `json:"video_url" validate:"omitempty,url"`
	IsFree      *bool   `json:"is_free"`
}

// ReorderItem moves one section to a new position
type ReorderItem struct {
	ID       string `json:"id" validate:"required"`
	Position int    `json:"position" validate:"gte=0"`
}

// ReorderRequest is the body of a reorder call
type ReorderRequest struct {
	List []ReorderItem `json:"list" validate:"required,min=1,dive"`
}

func param(c *fiber.Ctx, name string) string {
	return strings.TrimSpace(c.Params(name))
}

// ChapterParams validates the course and chapter path parameters
func ChapterParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, chapterID := param(c, "courseId"), param(c, "chapterId")
		if courseID == "" || chapterID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID and Chapter ID are required!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("chapterID", chapterID)
		return c.Next()
	}
}

// SectionParams validates the course, chapter and section path parameters
func SectionParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, chapterID, sectionID := param(c, "courseId"), param(c, "chapterId"), param(c, "sectionId")
		if courseID == "" || chapterID == "" || sectionID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID, Chapter ID and Section ID are required!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("chapterID", chapterID)
		c.Locals("sectionID", sectionID)
		return c.Next()
	}
}

// CreateSection validates a section create request
func CreateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, chapterID := param(c, "courseId"), param(c, "chapterId")
		if courseID == "" || chapterID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID and Chapter ID are required!", nil)
		}

		reqData := new(CreateSectionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Title = strings.TrimSpace(reqData.Title)

		if errors := validators.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("chapterID", chapterID)
		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

// UpdateSection validates a section edit request
func UpdateSection() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, chapterID, sectionID := param(c, "courseId"), param(c, "chapterId"), param(c, "sectionId")
		if courseID == "" || chapterID == "" || sectionID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID, Chapter ID and Section ID are required!", nil)
		}

		reqData := new(UpdateSectionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Title != nil {
			title := strings.TrimSpace(*reqData.Title)
			reqData.Title = &title
		}

		if errors := validators.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("chapterID", chapterID)
		c.Locals("sectionID", sectionID)
		c.Locals("validatedSectionUpdate", reqData)
		return c.Next()
	}
}

// ReorderSections validates a reorder request. Section IDs must be unique.
func ReorderSections() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID := param(c, "courseId")
		if courseID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		reqData := new(ReorderRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validators.Struct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		seen := make(map[string]bool, len(reqData.List))
		for _, item := range reqData.List {
			if seen[item.ID] {
				return middleware.ValidationErrorResponse(c, map[string]string{"list": "Section IDs must be unique!"})
			}
			seen[item.ID] = true
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}
