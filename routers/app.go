package routers

import (
	"io"

	"lms/middleware"
	"lms/routers/blogRoutes"
	"lms/routers/courseRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp builds the fiber app with every route registered. Request lines
// are written to requestLog; nil disables request logging.
func NewApp(requestLog io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "lms",
		ErrorHandler:          errorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	if requestLog != nil {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
			Output: requestLog,
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "OK", nil)
	})

	courseRoutes.SetupCourseRoutes(app)
	blogRoutes.SetupBlogRoutes(app)

	return app
}

// errorHandler keeps the JSON envelope for errors raised by fiber itself,
// such as unknown routes
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong!"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return middleware.JsonResponse(c, code, false, message, nil)
}
