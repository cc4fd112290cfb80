package controllers

import (
	"errors"

	"lms/database"
	"lms/middleware"
	courseModels "lms/models/course"
	courseValidator "lms/validators/course"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errSectionNotFound = errors.New("section not found")

// ownedCourse loads a course that belongs to userID
func ownedCourse(db *gorm.DB, courseID string, userID uint) (*courseModels.Course, error) {
	var course courseModels.Course
	if err := db.Where("id = ? AND user_id = ?", courseID, userID).First(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// lockChapters selects the chapters of a course FOR UPDATE, in ID order.
// Every write of section positions takes these locks first, so creates and
// reorders touching the same chapter run one after another.
func lockChapters(tx *gorm.DB, courseID string) *gorm.DB {
	return tx.Model(&courseModels.Chapter{}).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("course_id = ?", courseID).
		Order("id asc")
}

// failure answers a lookup error with 404 for a missing record and 500 otherwise
func failure(c *fiber.Ctx, err error, notFound string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, notFound, nil)
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("database error")
	return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}

// CreateSection appends a new section to the end of a chapter
func CreateSection(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, _ := c.Locals("courseID").(string)
	chapterID, _ := c.Locals("chapterID").(string)

	reqData, ok := c.Locals("validatedSection").(*courseValidator.CreateSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if _, err := ownedCourse(db, courseID, user.ID); err != nil {
		return failure(c, err, "Course not found!")
	}

	var chapter courseModels.Chapter
	var section courseModels.Section

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := lockChapters(tx, courseID).Where("id = ?", chapterID).First(&chapter).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&courseModels.Section{}).Where("chapter_id = ?", chapter.ID).Count(&count).Error; err != nil {
			return err
		}

		section = courseModels.Section{
			ChapterID: chapter.ID,
			Title:     reqData.Title,
			Position:  int(count),
		}
		return tx.Create(&section).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
		}
		log.Error().Err(err).Str("chapter_id", chapterID).Msg("create section")
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	log.Info().
		Str("course_id", courseID).
		Str("chapter_id", chapter.ID).
		Str("section_id", section.ID).
		Int("position", section.Position).
		Msg("section created")

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully!", section)
}

// ReorderSections applies a list of {id, position} pairs to sections of a
// course. Every touched chapter is renumbered to 0..n-1. Unknown IDs abort the
// whole update.
func ReorderSections(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, _ := c.Locals("courseID").(string)

	reqData, ok := c.Locals("validatedReorder").(*courseValidator.ReorderRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if _, err := ownedCourse(db, courseID, user.ID); err != nil {
		return failure(c, err, "Course not found!")
	}

	ids := make([]string, 0, len(reqData.List))
	positions := make(map[string]int, len(reqData.List))
	for _, item := range reqData.List {
		ids = append(ids, item.ID)
		positions[item.ID] = item.Position
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var locked []courseModels.Chapter
		if err := lockChapters(tx, courseID).Find(&locked).Error; err != nil {
			return err
		}

		var touched []courseModels.Section
		err := tx.
			Where("id IN ?", ids).
			Where("chapter_id IN (?)", tx.Model(&courseModels.Chapter{}).Select("id").Where("course_id = ?", courseID)).
			Find(&touched).Error
		if err != nil {
			return err
		}
		if len(touched) != len(ids) {
			return errSectionNotFound
		}

		chapters := make(map[string]bool)
		for _, s := range touched {
			chapters[s.ChapterID] = true
		}

		for chapterID := range chapters {
			var siblings []courseModels.Section
			if err := tx.Where("chapter_id = ?", chapterID).Order("position asc").Find(&siblings).Error; err != nil {
				return err
			}

			current := make(map[string]int, len(siblings))
			for _, s := range siblings {
				current[s.ID] = s.Position
			}

			for _, s := range courseModels.Reorder(siblings, positions) {
				if current[s.ID] == s.Position {
					continue
				}
				if err := tx.Model(&courseModels.Section{}).Where("id = ?", s.ID).Update("position", s.Position).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errSectionNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
		}
		log.Error().Err(err).Str("course_id", courseID).Msg("reorder sections")
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reorder sections!", nil)
	}

	log.Info().Str("course_id", courseID).Int("count", len(ids)).Msg("sections reordered")

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sections reordered successfully!", nil)
}

// GetSection returns one section for the edit page
func GetSection(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, _ := c.Locals("courseID").(string)
	chapterID, _ := c.Locals("chapterID").(string)
	sectionID, _ := c.Locals("sectionID").(string)

	section, err := findSection(database.Database.Db, user.ID, courseID, chapterID, sectionID)
	if err != nil {
		return failure(c, err, "Section not found!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section fetched successfully!", section)
}

// UpdateSection edits the fields of one section. Position is changed only
// through ReorderSections.
func UpdateSection(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, _ := c.Locals("courseID").(string)
	chapterID, _ := c.Locals("chapterID").(string)
	sectionID, _ := c.Locals("sectionID").(string)

	reqData, ok := c.Locals("validatedSectionUpdate").(*courseValidator.UpdateSectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	section, err := findSection(db, user.ID, courseID, chapterID, sectionID)
	if err != nil {
		return failure(c, err, "Section not found!")
	}

	if reqData.Title != nil {
		section.Title = *reqData.Title
	}
	if reqData.Description != nil {
		section.Description = *reqData.Description
	}
	if reqData.VideoURL != nil {
		section.VideoURL = *reqData.VideoURL
	}
	if reqData.IsFree != nil {
		section.IsFree = *reqData.IsFree
	}

	// position belongs to ReorderSections and is never written from here
	err = db.Model(section).
		Select("title", "description", "video_url", "is_free").
		Updates(section).Error
	if err == nil {
		err = db.First(section, "id = ?", section.ID).Error
	}
	if err != nil {
		log.Error().Err(err).Str("section_id", section.ID).Msg("update section")
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", section)
}

func findSection(db *gorm.DB, userID uint, courseID, chapterID, sectionID string) (*courseModels.Section, error) {
	if _, err := ownedCourse(db, courseID, userID); err != nil {
		return nil, err
	}

	var chapter courseModels.Chapter
	if err := db.Where("id = ? AND course_id = ?", chapterID, courseID).First(&chapter).Error; err != nil {
		return nil, err
	}

	var section courseModels.Section
	if err := db.Where("id = ? AND chapter_id = ?", sectionID, chapter.ID).First(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}
