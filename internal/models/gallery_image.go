package models

import (
	"time"

	"github.com/lib/pq"
)

// GalleryImage is one photo belonging to a branch. The binary itself lives on
// the external image host; only the public URL is stored here.
type GalleryImage struct {
	ID           int            `gorm:"primaryKey" json:"id"`
	BranchID     int            `gorm:"not null;index" json:"branch_id"`
	ImageURL     string         `gorm:"type:text;not null" json:"image_url"`
	Title        string         `gorm:"type:text" json:"title"`
	Description  string         `gorm:"type:text" json:"description"`
	Tags         pq.StringArray `gorm:"type:text[]" json:"tags"`
	DisplayOrder int            `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (GalleryImage) TableName() string {
	return "gallery"
}
