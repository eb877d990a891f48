package auth

import (
	"net/http"
	"net/url"
	"strings"
	"yatube/models"

	"github.com/gin-gonic/gin"
)

const LoginPath = "/auth/login/"

// LoginRedirect builds the login URL carrying the original path. Slashes
// stay literal so the next parameter remains readable; everything else that
// would corrupt the query string is escaped.
func LoginRedirect(path string) string {
	next := strings.ReplaceAll(url.QueryEscape(path), "%2F", "/")
	return LoginPath + "?next=" + next
}

// HandlerFunc receives the already-loaded authenticated user
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper that adds the login check + User pre-loading.
// Unauthenticated requests are sent to the login page with the original
// path in the next parameter.
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	session := LoadSession(c)
	user := session.User()
	if user.ID == 0 {
		c.Redirect(http.StatusFound, LoginRedirect(c.Request.URL.Path))
		return
	}
	handler(c, &user)
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
