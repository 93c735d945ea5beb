package handler

import (
	"bytes"
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"goblog/internal/transport/http/middleware"
)

// blog bodies are markdown; raw HTML passthrough stays off because the
// content is user supplied
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
)

func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}

// renderError shows the shared error page. Callers log the underlying
// error themselves; message is the generic client-facing text.
func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"message":  message,
		"userName": middleware.UserName(c),
	})
}
