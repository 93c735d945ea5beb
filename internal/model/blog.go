package model

import "time"

type Blog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Body          string    `gorm:"type:text;not null" json:"body"`
	CoverImageURL string    `gorm:"size:255" json:"cover_image_url"`
	CreatedBy     uint      `gorm:"not null;index" json:"created_by"`
	Creator       User      `gorm:"foreignKey:CreatedBy" json:"creator"`
	CreatedAt     time.Time `json:"created_at"`
}
