package utils

import (
	"log"

	"github.com/gin-gonic/gin"
)

type debugBodyWriter struct {
	gin.ResponseWriter
	gc *gin.Context
}

func (w debugBodyWriter) Write(b []byte) (int, error) {
	if status := w.gc.Writer.Status(); status >= 400 {
		log.Printf("error response: %s %s -> %d, body: %s",
			w.gc.Request.Method, w.gc.Request.URL.Path, status, string(b))
	}
	return w.ResponseWriter.Write(b)
}

// DebugLogMiddleware logs the body of error responses. Debug mode only, and
// it must run before compression to see the plain body.
func DebugLogMiddleware(c *gin.Context) {
	c.Writer = &debugBodyWriter{gc: c, ResponseWriter: c.Writer}
	c.Next()
}
