package controllers

import (
	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetChapter returns a chapter with its sections in display order. The
// authoring panel re-reads this after every mutation.
func GetChapter(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, _ := c.Locals("courseID").(string)
	chapterID, _ := c.Locals("chapterID").(string)

	db := database.Database.Db

	if _, err := ownedCourse(db, courseID, user.ID); err != nil {
		return failure(c, err, "Course not found!")
	}

	var chapter courseModels.Chapter
	err := db.
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("position asc")
		}).
		Where("id = ? AND course_id = ?", chapterID, courseID).
		First(&chapter).Error
	if err != nil {
		return failure(c, err, "Chapter not found!")
	}

	if chapter.Sections == nil {
		chapter.Sections = []courseModels.Section{}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter fetched successfully!", chapter)
}
