package repository

import (
	"fmt"

	"gorm.io/gorm"

	"goblog/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("create comment failed: %w", err)
	}
	return nil
}

func (r *CommentRepository) ListByBlogID(blogID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Preload("Creator").Where("blog_id = ?", blogID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments failed: %w", err)
	}
	return comments, nil
}
