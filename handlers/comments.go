package handlers

import (
	"net/http"
	"strconv"

	"yatube/db"
	"yatube/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type CommentFormRequest struct {
	Text string `form:"text"`
}

// AddComment creates a comment and returns to the post detail page. An empty
// comment re-renders the detail page with the error instead of failing.
func AddComment(c *gin.Context, user *models.User) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	var post models.Post
	if err := db.Instance.First(&post, id).Error; err != nil {
		renderNotFound(c)
		return
	}
	r := CommentFormRequest{}
	_ = c.ShouldBindWith(&r, binding.Form)
	if r.Text == "" {
		renderPostDetail(c, id, http.StatusOK, "Comment text cannot be empty")
		return
	}
	comment := models.Comment{
		PostID: post.ID,
		UserID: user.ID,
		Text:   r.Text,
	}
	if err := db.Instance.Create(&comment).Error; err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(id, 10)+"/")
}
