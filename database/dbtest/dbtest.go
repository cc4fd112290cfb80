// Package dbtest provides migrated in-memory databases for tests.
package dbtest

import (
	"testing"

	"lms/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a fresh migrated sqlite database and installs it as the
// global database for the duration of the test.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Open("sqlite", ":memory:")
	require.NoError(t, err, "open test database")

	prev := database.Database
	database.Database = database.DbInstance{Db: db}

	t.Cleanup(func() {
		database.Database = prev
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
