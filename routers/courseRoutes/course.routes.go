package courseRoutes

import (
	controllers "lms/controllers/course"
	"lms/middleware"
	"lms/models"
	validators "lms/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the teacher-facing authoring API
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTeacher))

	// Reorder is registered before the chapter routes so "reorder" never binds as a chapter ID
	courseGroup.Put("/:courseId/chapters/reorder", validators.ReorderSections(), controllers.ReorderSections)

	courseGroup.Get("/:courseId/chapters/:chapterId", validators.ChapterParams(), controllers.GetChapter)

	// Sections
	courseGroup.Post("/:courseId/chapters/:chapterId/section", validators.CreateSection(), controllers.CreateSection)
	courseGroup.Get("/:courseId/chapters/:chapterId/section/:sectionId", validators.SectionParams(), controllers.GetSection)
	courseGroup.Patch("/:courseId/chapters/:chapterId/section/:sectionId", validators.UpdateSection(), controllers.UpdateSection)
}
