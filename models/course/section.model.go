package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Section is the smallest orderable unit within a chapter
type Section struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	ChapterID   string    `json:"chapter_id" gorm:"type:varchar(36);index;not null"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	VideoURL    string    `json:"video_url"`
	Position    int       `json:"position" gorm:"default:0"` // Order within chapter
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	IsFree      bool      `json:"is_free" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Section) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
