package handlers

import (
	"net/http"

	"yatube/feed"
	"yatube/models"

	"github.com/gin-gonic/gin"
)

func FollowIndex(c *gin.Context, user *models.User) {
	listing, err := feed.FollowFeed(user.ID, pageParam(c))
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "follow.tmpl", gin.H{
		"Viewer":          *user,
		"Page":            listing.Page,
		"NoSubscriptions": listing.NoSubscriptions,
	})
}

// ProfileFollow adds the follow edge and goes back to the profile. Trying to
// follow yourself or someone you already follow changes nothing.
func ProfileFollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		renderNotFound(c)
		return
	}
	if err := models.FollowCreate(user.ID, author.ID); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}

// ProfileUnfollow removes the edge if present; repeated unfollows are no-ops.
func ProfileUnfollow(c *gin.Context, user *models.User) {
	author, err := models.UserByUsername(c.Param("username"))
	if err != nil {
		renderNotFound(c)
		return
	}
	if err := models.FollowDelete(user.ID, author.ID); err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username+"/")
}
