package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"goblog/internal/model"
)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(blog *model.Blog) error {
	if err := r.db.Create(blog).Error; err != nil {
		return fmt.Errorf("create blog failed: %w", err)
	}
	return nil
}

// GetByID loads a blog with its creator expanded. Returns nil when no
// blog matches.
func (r *BlogRepository) GetByID(id uint) (*model.Blog, error) {
	var blog model.Blog
	if err := r.db.Preload("Creator").First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query blog by id failed: %w", err)
	}
	return &blog, nil
}

func (r *BlogRepository) ListAll() ([]model.Blog, error) {
	var blogs []model.Blog
	if err := r.db.Preload("Creator").Order("created_at DESC").Find(&blogs).Error; err != nil {
		return nil, fmt.Errorf("list blogs failed: %w", err)
	}
	return blogs, nil
}
