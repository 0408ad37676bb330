package domain

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type CommunityPost struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	AuthorID    uint           `gorm:"not null;index" json:"author_id"`
	Title       string         `gorm:"type:varchar(255);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Tags        pq.StringArray `gorm:"type:text[]" json:"tags"`
	Link        *string        `gorm:"type:text" json:"link,omitempty"`
	gorm.Model
}
