package model

import "time"

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	BlogID    uint      `gorm:"not null;index" json:"blog_id"`
	CreatedBy uint      `gorm:"not null;index" json:"created_by"`
	Creator   User      `gorm:"foreignKey:CreatedBy" json:"creator"`
	CreatedAt time.Time `json:"created_at"`
}
