package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Chapter owns an ordered collection of sections
type Chapter struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	CourseID    string    `json:"course_id" gorm:"type:varchar(36);index;not null"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Position    int       `json:"position" gorm:"default:0"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	Sections    []Section `json:"sections" gorm:"foreignKey:ChapterID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Chapter) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
