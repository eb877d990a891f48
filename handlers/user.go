package handlers

import (
	"net/http"
	"strings"

	"yatube/auth"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type SignupRequest struct {
	Username string `form:"username" binding:"required"`
	Name     string `form:"name"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func SignupForm(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.tmpl", gin.H{"Form": SignupRequest{}})
}

func Signup(c *gin.Context) {
	r := SignupRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{"Error": "All fields except name are required", "Form": r})
		return
	}
	user, err := models.UserCreate(r.Username, r.Name, r.Email, r.Password)
	if err != nil {
		c.HTML(http.StatusOK, "signup.tmpl", gin.H{"Error": "That username or email is taken", "Form": r})
		return
	}
	auth.LoadSession(c).LogInUser(user.ID)
	c.Redirect(http.StatusFound, "/")
}

func LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.tmpl", gin.H{"Next": c.Query("next")})
}

func Login(c *gin.Context) {
	r := LoginRequest{}
	next := c.PostForm("next")
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"Error": "Username and password are required", "Next": next})
		return
	}
	user, ok := models.UserLogin(r.Username, r.Password)
	if !ok {
		c.HTML(http.StatusOK, "login.tmpl", gin.H{"Error": "Wrong username or password", "Next": next})
		return
	}
	auth.LoadSession(c).LogInUser(user.ID)
	c.Redirect(http.StatusFound, safeNext(next))
}

func Logout(c *gin.Context) {
	auth.LoadSession(c).LogoutUser()
	c.Redirect(http.StatusFound, "/")
}

// safeNext only allows local redirect targets
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
