package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"goblog/internal/app"
	"goblog/internal/pkg/upload"
	"goblog/internal/transport/http/middleware"
)

type BlogHandler struct {
	blogService *app.BlogService
	uploads     *upload.Store
}

func NewBlogHandler(blogService *app.BlogService, uploads *upload.Store) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		uploads:     uploads,
	}
}

func (h *BlogHandler) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add-blog.html", gin.H{
		"userName": middleware.UserName(c),
	})
}

func (h *BlogHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Redirect(http.StatusFound, middleware.SignInPath)
		return
	}

	title := c.PostForm("title")
	body := c.PostForm("body")

	// the cover image is optional; FormFile errors when the part is absent
	coverImageURL := ""
	if file, err := c.FormFile("coverImage"); err == nil && file != nil {
		url, err := h.uploads.Save(c, file)
		if err != nil {
			log.Printf("store cover image failed: %v", err)
			renderError(c, http.StatusInternalServerError, "Failed to store cover image")
			return
		}
		coverImageURL = url
	}

	_, err := h.blogService.CreateBlog(app.CreateBlogInput{
		Title:         title,
		Body:          body,
		CoverImageURL: coverImageURL,
		CreatedBy:     userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrValidation):
			renderError(c, http.StatusBadRequest, "Title and body are required")
		default:
			log.Printf("create blog failed: %v", err)
			renderError(c, http.StatusInternalServerError, "Failed to create blog")
		}
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *BlogHandler) Show(c *gin.Context) {
	id, err := parseBlogID(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusBadRequest, "Invalid blog id")
		return
	}

	view, err := h.blogService.GetBlog(id)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNotFound):
			renderError(c, http.StatusNotFound, "Blog not found")
		default:
			log.Printf("fetch blog %d failed: %v", id, err)
			renderError(c, http.StatusInternalServerError, "Failed to load blog")
		}
		return
	}

	c.HTML(http.StatusOK, "blog.html", gin.H{
		"blog":     view.Blog,
		"bodyHTML": renderMarkdown(view.Blog.Body),
		"comments": view.Comments,
		"userName": middleware.UserName(c),
	})
}

func (h *BlogHandler) AddComment(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.Redirect(http.StatusFound, middleware.SignInPath)
		return
	}

	id, err := parseBlogID(c.Param("id"))
	if err != nil {
		renderError(c, http.StatusBadRequest, "Invalid blog id")
		return
	}

	_, err = h.blogService.AddComment(id, c.PostForm("content"), userID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrValidation):
			renderError(c, http.StatusBadRequest, "Comment content is required")
		case errors.Is(err, app.ErrNotFound):
			renderError(c, http.StatusNotFound, "Blog not found")
		default:
			log.Printf("add comment to blog %d failed: %v", id, err)
			renderError(c, http.StatusInternalServerError, "Failed to post comment")
		}
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/blog/%d", id))
}

func parseBlogID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, app.ErrInvalidID
	}
	return uint(id), nil
}
