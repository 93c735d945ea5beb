package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"goblog/internal/model"
	"goblog/internal/repository"
)

func newBlogService(db *gorm.DB) *BlogService {
	return NewBlogService(repository.NewBlogRepository(db), repository.NewCommentRepository(db))
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	user := &model.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashedpassword",
		Role:         model.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestCreateBlog(t *testing.T) {
	db := setupTestDB(t)
	svc := newBlogService(db)
	user := createTestUser(t, db, "author@example.com")

	blog, err := svc.CreateBlog(CreateBlogInput{
		Title:     "First Post",
		Body:      "# Hello\n\nSome **markdown** body.",
		CreatedBy: user.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, blog.ID)

	view, err := svc.GetBlog(blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "First Post", view.Blog.Title)
	assert.Equal(t, user.ID, view.Blog.CreatedBy)
	assert.Equal(t, user.Email, view.Blog.Creator.Email)
	assert.Empty(t, view.Comments)
}

func TestCreateBlogValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newBlogService(db)
	user := createTestUser(t, db, "author@example.com")

	_, err := svc.CreateBlog(CreateBlogInput{Title: "   ", Body: "body", CreatedBy: user.ID})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateBlog(CreateBlogInput{Title: "title", Body: "", CreatedBy: user.ID})
	assert.ErrorIs(t, err, ErrValidation)

	var count int64
	require.NoError(t, db.Model(&model.Blog{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGetBlogNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newBlogService(db)

	_, err := svc.GetBlog(4242)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListBlogs(t *testing.T) {
	db := setupTestDB(t)
	svc := newBlogService(db)
	user := createTestUser(t, db, "author@example.com")

	_, err := svc.CreateBlog(CreateBlogInput{Title: "One", Body: "body", CreatedBy: user.ID})
	require.NoError(t, err)
	_, err = svc.CreateBlog(CreateBlogInput{Title: "Two", Body: "body", CreatedBy: user.ID})
	require.NoError(t, err)

	blogs, err := svc.ListBlogs()
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, user.Email, blogs[0].Creator.Email)
}

func TestAddComment(t *testing.T) {
	db := setupTestDB(t)
	svc := newBlogService(db)
	author := createTestUser(t, db, "author@example.com")
	reader := createTestUser(t, db, "reader@example.com")

	blog, err := svc.CreateBlog(CreateBlogInput{Title: "Post", Body: "body", CreatedBy: author.ID})
	require.NoError(t, err)

	comment, err := svc.AddComment(blog.ID, "nice post", reader.ID)
	require.NoError(t, err)
	assert.Equal(t, blog.ID, comment.BlogID)
	assert.Equal(t, reader.ID, comment.CreatedBy)

	view, err := svc.GetBlog(blog.ID)
	require.NoError(t, err)
	require.Len(t, view.Comments, 1)
	assert.Equal(t, "nice post", view.Comments[0].Content)
	assert.Equal(t, reader.Email, view.Comments[0].Creator.Email)
}

func TestAddCommentValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newBlogService(db)
	author := createTestUser(t, db, "author@example.com")

	blog, err := svc.CreateBlog(CreateBlogInput{Title: "Post", Body: "body", CreatedBy: author.ID})
	require.NoError(t, err)

	_, err = svc.AddComment(blog.ID, "   ", author.ID)
	assert.ErrorIs(t, err, ErrValidation)
}

// A well-formed id that matches no blog must not leave an orphaned
// comment behind.
func TestAddCommentMissingBlog(t *testing.T) {
	db := setupTestDB(t)
	svc := newBlogService(db)
	reader := createTestUser(t, db, "reader@example.com")

	_, err := svc.AddComment(4242, "hello?", reader.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&model.Comment{}).Count(&count).Error)
	assert.Zero(t, count)
}
