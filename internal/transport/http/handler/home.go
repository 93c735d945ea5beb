package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"goblog/internal/app"
	"goblog/internal/transport/http/middleware"
)

type HomeHandler struct {
	blogService *app.BlogService
}

func NewHomeHandler(blogService *app.BlogService) *HomeHandler {
	return &HomeHandler{blogService: blogService}
}

func (h *HomeHandler) Index(c *gin.Context) {
	blogs, err := h.blogService.ListBlogs()
	if err != nil {
		log.Printf("list blogs failed: %v", err)
		renderError(c, http.StatusInternalServerError, "Failed to load homepage")
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"blogs":    blogs,
		"userName": middleware.UserName(c),
	})
}
