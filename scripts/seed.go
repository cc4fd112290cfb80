package main

import (
	"fmt"

	"lms/config"
	"lms/database"
	"lms/logging"
	"lms/middleware"
	"lms/models"
	blogModels "lms/models/blog"
	courseModels "lms/models/course"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func main() {
	config.LoadConfig()
	logging.Setup(config.AppConfig.LogLevel, config.AppConfig.LogFormat)
	database.ConnectDb()

	db := database.Database.Db

	var teacher models.User
	var course courseModels.Course
	var chapter courseModels.Chapter
	var post blogModels.Post

	err := db.Transaction(func(tx *gorm.DB) error {
		teacher = models.User{Name: "Demo Teacher", Email: "teacher@example.com", Role: models.RoleTeacher}
		if err := tx.Where(models.User{Email: teacher.Email}).FirstOrCreate(&teacher).Error; err != nil {
			return err
		}

		course = courseModels.Course{UserID: teacher.ID, Title: "Practical Go", Description: "From basics to services"}
		if err := tx.Create(&course).Error; err != nil {
			return err
		}

		chapter = courseModels.Chapter{CourseID: course.ID, Title: "Getting started", Position: 0}
		if err := tx.Create(&chapter).Error; err != nil {
			return err
		}

		for i, title := range []string{"Installing Go", "Modules", "Your first program"} {
			s := courseModels.Section{ChapterID: chapter.ID, Title: title, Position: i, IsFree: i == 0}
			if err := tx.Create(&s).Error; err != nil {
				return err
			}
		}

		post = blogModels.Post{
			UserID:      teacher.ID,
			Title:       "Why we write Go",
			Description: "Notes from a year of services",
			Category:    "engineering",
			IsPublished: true,
			PostChapter: []blogModels.PostChapter{
				{Position: 0, Title: "Simplicity", Description: "Small language, big programs", Content: "Go keeps the **spec** short."},
				{Position: 1, Title: "Tooling", Description: "fmt, vet, test", Content: "One command for each job:\n\n- `go fmt`\n- `go vet`\n- `go test`", Tags: []string{"tooling"}},
				{Position: 2, Title: "Concurrency", Description: "Goroutines and channels", Content: "Share memory by communicating."},
			},
		}
		return tx.Create(&post).Error
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}

	token, err := middleware.GenerateJWT(teacher.ID, teacher.Name, teacher.Role, teacher.Email)
	if err != nil {
		log.Fatal().Err(err).Msg("sign token")
	}

	log.Info().
		Str("course_id", course.ID).
		Str("chapter_id", chapter.ID).
		Str("post_id", post.ID).
		Msg("seed completed")

	fmt.Printf("API_TOKEN=%s\n", token)
}
