package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Course is the top of the authoring hierarchy, owned by one teacher
type Course struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index;not null"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	Chapters    []Chapter `json:"chapters,omitempty" gorm:"foreignKey:CourseID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
