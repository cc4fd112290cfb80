package blogRoutes

import (
	controllers "lms/controllers/blog"
	validators "lms/validators/blog"

	"github.com/gofiber/fiber/v2"
)

// SetupBlogRoutes sets up the public reader-facing blog routes
func SetupBlogRoutes(app *fiber.App) {
	postGroup := app.Group("/api/posts")

	postGroup.Get("/:postId", validators.PostParams(), controllers.GetPost)
	postGroup.Get("/:postId/reading", validators.ReadingView(), controllers.GetReadingView)
}
