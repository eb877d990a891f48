package handlers

import (
	"strings"

	"yatube/storage"

	"github.com/gin-gonic/gin"
)

// MediaFetch serves stored post images.
func MediaFetch(c *gin.Context) {
	path := strings.TrimPrefix(c.Param("filepath"), "/")
	if path == "" || strings.Contains(path, "..") {
		renderNotFound(c)
		return
	}
	storage.Get().Serve(path, c.Request, c.Writer)
}
