package database

import (
	"testing"

	"lms/config"
	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "postgres",
			cfg:  config.Config{DBDriver: "postgres", DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "lms", DBPort: "5432"},
			want: "host=db user=u password=p dbname=lms port=5432 sslmode=disable",
		},
		{
			name: "mysql",
			cfg:  config.Config{DBDriver: "mysql", DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "lms", DBPort: "3306"},
			want: "u:p@tcp(db:3306)/lms?charset=utf8mb4&parseTime=True&loc=Local",
		},
		{
			name: "sqlite",
			cfg:  config.Config{DBDriver: "sqlite", DBName: "lms.db"},
			want: "lms.db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DSN(&tt.cfg))
		})
	}
}

func TestDialector_Unsupported(t *testing.T) {
	_, err := Dialector("oracle", "")
	assert.Error(t, err)
}

func TestOpen_SQLiteMigrates(t *testing.T) {
	db, err := Open("sqlite", ":memory:")
	require.NoError(t, err)

	c := courseModels.Course{Title: "Go", UserID: 1}
	require.NoError(t, db.Create(&c).Error)
	assert.NotEmpty(t, c.ID, "uuid assigned on create")

	ch := courseModels.Chapter{CourseID: c.ID, Title: "Basics"}
	require.NoError(t, db.Create(&ch).Error)

	var count int64
	require.NoError(t, db.Model(&courseModels.Chapter{}).Where("course_id = ?", c.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
