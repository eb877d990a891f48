package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// NoBrowserCache marks responses as not cacheable on the client. Rendered
// pages carry viewer-specific state, so this is the default for every route.
func NoBrowserCache(c *gin.Context) {
	c.Header("cache-control", "no-cache")
	c.Next()
}

// BrowserCache advertises a private client-side cache window of the given
// number of seconds. The index page uses it with the same window as the
// server-side page cache.
func BrowserCache(seconds int) gin.HandlerFunc {
	value := "private, max-age=" + strconv.Itoa(seconds)
	return func(c *gin.Context) {
		c.Header("cache-control", value)
		c.Next()
	}
}
