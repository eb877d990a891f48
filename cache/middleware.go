package cache

import (
	"bytes"
	"time"

	"github.com/gin-gonic/gin"
)

type captureWriter struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// PageMiddleware serves the stored response for the whole window, even if the
// underlying data changed in the meantime. The key is fixed - query
// parameters do not produce separate entries. Concurrent misses may render
// redundantly; the last writer wins, which is fine within the window.
func PageMiddleware(store *Store, key string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if entry, ok := store.Get(key); ok {
			c.Data(entry.Status, entry.ContentType, entry.Body)
			c.Abort()
			return
		}
		writer := &captureWriter{ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()
		status := writer.Status()
		if status >= 200 && status < 300 {
			store.Set(key, Entry{
				Status:      status,
				ContentType: writer.Header().Get("Content-Type"),
				Body:        writer.body.Bytes(),
			}, ttl)
		}
	}
}
