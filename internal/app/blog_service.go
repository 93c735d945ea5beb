package app

import (
	"strings"

	"goblog/internal/model"
	"goblog/internal/repository"
)

type BlogService struct {
	blogRepo    *repository.BlogRepository
	commentRepo *repository.CommentRepository
}

type CreateBlogInput struct {
	Title         string
	Body          string
	CoverImageURL string
	CreatedBy     uint
}

type BlogView struct {
	Blog     *model.Blog
	Comments []model.Comment
}

func NewBlogService(blogRepo *repository.BlogRepository, commentRepo *repository.CommentRepository) *BlogService {
	return &BlogService{
		blogRepo:    blogRepo,
		commentRepo: commentRepo,
	}
}

func (s *BlogService) CreateBlog(input CreateBlogInput) (*model.Blog, error) {
	title := strings.TrimSpace(input.Title)
	body := strings.TrimSpace(input.Body)
	if title == "" || body == "" {
		return nil, ErrValidation
	}

	blog := &model.Blog{
		Title:         title,
		Body:          body,
		CoverImageURL: input.CoverImageURL,
		CreatedBy:     input.CreatedBy,
	}
	if err := s.blogRepo.Create(blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// GetBlog loads one blog and its comments, both with creators expanded.
func (s *BlogService) GetBlog(id uint) (*BlogView, error) {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrNotFound
	}

	comments, err := s.commentRepo.ListByBlogID(blog.ID)
	if err != nil {
		return nil, err
	}
	return &BlogView{Blog: blog, Comments: comments}, nil
}

func (s *BlogService) ListBlogs() ([]model.Blog, error) {
	return s.blogRepo.ListAll()
}

// AddComment rejects comments aimed at a blog that does not exist, so a
// well-formed but stale id cannot leave an orphaned comment behind.
func (s *BlogService) AddComment(blogID uint, content string, createdBy uint) (*model.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrValidation
	}

	blog, err := s.blogRepo.GetByID(blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrNotFound
	}

	comment := &model.Comment{
		Content:   content,
		BlogID:    blog.ID,
		CreatedBy: createdBy,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}
