package controllers

import (
	"testing"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestLockChapters_SelectsForUpdate(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 user=lms password=lms dbname=lms port=5432 sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	all := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var chapters []courseModels.Chapter
		return lockChapters(tx, "course-1").Find(&chapters)
	})
	assert.Contains(t, all, `"chapters"`)
	assert.Contains(t, all, "course_id = 'course-1'")
	assert.Contains(t, all, "ORDER BY id asc")
	assert.Contains(t, all, "FOR UPDATE")

	one := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var chapter courseModels.Chapter
		return lockChapters(tx, "course-1").Where("id = ?", "chapter-1").First(&chapter)
	})
	assert.Contains(t, one, "id = 'chapter-1'")
	assert.Contains(t, one, "FOR UPDATE")
}
