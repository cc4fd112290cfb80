package blog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Post is a blog article made of ordered chapters. Read-only for readers.
type Post struct {
	ID          string        `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID      uint          `json:"user_id" gorm:"index"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	ImageURL    string        `json:"image_url"`
	Category    string        `json:"category"`
	IsPublished bool          `json:"is_published" gorm:"default:false"`
	PostChapter []PostChapter `json:"postchapter" gorm:"foreignKey:PostID"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PostChapter is one content block of a post
type PostChapter struct {
	ID          string                      `json:"id" gorm:"type:varchar(36);primaryKey"`
	PostID      string                      `json:"post_id" gorm:"type:varchar(36);index;not null"`
	Title       string                      `json:"title"`
	Description string                      `json:"description"`
	ImageURL    string                      `json:"imageUrl"`
	Content     string                      `json:"content" gorm:"type:text"` // markdown
	Position    int                         `json:"position" gorm:"default:0"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (c *PostChapter) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
