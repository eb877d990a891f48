package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestBrowserCacheHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NoBrowserCache)
	router.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/cached", BrowserCache(20), func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)
	if got := w.Header().Get("Cache-Control"); got != "no-cache" {
		t.Errorf("cache-control = %q, want no-cache", got)
	}

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/cached", nil)
	router.ServeHTTP(w, req)
	if got := w.Header().Get("Cache-Control"); got != "private, max-age=20" {
		t.Errorf("cache-control = %q, want private, max-age=20", got)
	}
}

func TestDebugLogMiddlewarePassesBodyThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(DebugLogMiddleware)
	router.GET("/missing", func(c *gin.Context) { c.String(http.StatusNotFound, "not here") })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/missing", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound || w.Body.String() != "not here" {
		t.Errorf("response = %d %q", w.Code, w.Body.String())
	}
}
