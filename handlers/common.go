package handlers

import (
	"net/http"
	"strconv"

	"yatube/auth"
	"yatube/models"
	"yatube/pagination"

	"github.com/gin-gonic/gin"
)

// Viewer loads the requesting user from the session; ID 0 means anonymous.
func Viewer(c *gin.Context) models.User {
	return auth.LoadSession(c).User()
}

func pageParam(c *gin.Context) int {
	return pagination.ParsePageNumber(c.Query("page"))
}

func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.tmpl", gin.H{"Viewer": Viewer(c)})
	c.Abort()
}

// NotFound renders the custom error page for unknown paths.
func NotFound(c *gin.Context) {
	renderNotFound(c)
}

func serverError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, "server error")
	c.Abort()
}
