package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"yatube/db"
	"yatube/feed"
	"yatube/models"
	"yatube/storage"
	"yatube/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const thumbSize = 512

type PostFormRequest struct {
	Text  string  `form:"text"`
	Group *uint64 `form:"group"`
}

func Index(c *gin.Context) {
	page, err := feed.Index(pageParam(c))
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Viewer": Viewer(c),
		"Page":   page,
	})
}

func GroupPosts(c *gin.Context) {
	listing, err := feed.GroupPosts(c.Param("slug"), pageParam(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		renderNotFound(c)
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "group_list.tmpl", gin.H{
		"Viewer": Viewer(c),
		"Group":  listing.Group,
		"Page":   listing.Page,
	})
}

func Profile(c *gin.Context) {
	viewer := Viewer(c)
	listing, err := feed.Profile(viewer.ID, c.Param("username"), pageParam(c))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		renderNotFound(c)
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(http.StatusOK, "profile.tmpl", gin.H{
		"Viewer":    viewer,
		"Author":    listing.Author,
		"Page":      listing.Page,
		"Count":     listing.PostCount,
		"Following": listing.Following,
	})
}

func PostDetail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		renderNotFound(c)
		return
	}
	renderPostDetail(c, id, http.StatusOK, "")
}

func renderPostDetail(c *gin.Context, id uint64, status int, commentError string) {
	view, err := feed.PostDetail(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		renderNotFound(c)
		return
	}
	if err != nil {
		serverError(c, err)
		return
	}
	c.HTML(status, "post_detail.tmpl", gin.H{
		"Viewer":       Viewer(c),
		"Post":         view.Post,
		"Comments":     view.Comments,
		"Count":        view.PostCount,
		"CommentError": commentError,
	})
}

func renderPostForm(c *gin.Context, status int, data gin.H) {
	groups, err := models.GroupsAll()
	if err != nil {
		serverError(c, err)
		return
	}
	data["Groups"] = groups
	if _, ok := data["SelectedGroup"]; !ok {
		data["SelectedGroup"] = uint64(0)
	}
	c.HTML(status, "create_post.tmpl", data)
}

// normalizeGroup maps the form's empty "No group" choice to a NULL group
// reference; binding turns it into a pointer to zero otherwise.
func normalizeGroup(id *uint64) *uint64 {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

func selectedGroup(id *uint64) uint64 {
	if id == nil {
		return 0
	}
	return *id
}

func PostCreateForm(c *gin.Context, user *models.User) {
	renderPostForm(c, http.StatusOK, gin.H{"Viewer": *user, "Text": ""})
}

func PostCreate(c *gin.Context, user *models.User) {
	r := PostFormRequest{}
	_ = c.ShouldBindWith(&r, binding.Form)
	if r.Text == "" {
		renderPostForm(c, http.StatusOK, gin.H{"Viewer": *user, "Error": "Post text cannot be empty", "Text": r.Text, "SelectedGroup": selectedGroup(r.Group)})
		return
	}
	post := models.Post{
		UserID:  user.ID,
		GroupID: normalizeGroup(r.Group),
		Text:    r.Text,
	}
	if header, err := c.FormFile("image"); err == nil && header != nil {
		image, thumb, err := saveImage(header)
		if err != nil {
			renderPostForm(c, http.StatusOK, gin.H{"Viewer": *user, "Error": "Could not read the image", "Text": r.Text, "SelectedGroup": selectedGroup(r.Group)})
			return
		}
		post.Image = image
		post.ImageThumb = thumb
	}
	if err := db.Instance.Create(&post).Error; err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+user.Username+"/")
}

func PostEditForm(c *gin.Context, user *models.User) {
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
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, "/posts/"+strconv.FormatUint(id, 10)+"/")
		return
	}
	renderPostForm(c, http.StatusOK, gin.H{"Viewer": *user, "IsEdit": true, "Post": post, "Text": post.Text, "SelectedGroup": selectedGroup(post.GroupID)})
}

func PostEdit(c *gin.Context, user *models.User) {
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
	detailPath := "/posts/" + strconv.FormatUint(id, 10) + "/"
	if post.UserID != user.ID {
		c.Redirect(http.StatusFound, detailPath)
		return
	}
	r := PostFormRequest{}
	_ = c.ShouldBindWith(&r, binding.Form)
	if r.Text == "" {
		renderPostForm(c, http.StatusOK, gin.H{"Viewer": *user, "IsEdit": true, "Post": post, "Text": "", "Error": "Post text cannot be empty", "SelectedGroup": selectedGroup(post.GroupID)})
		return
	}
	updates := map[string]interface{}{
		"text":     r.Text,
		"group_id": normalizeGroup(r.Group),
	}
	if header, err := c.FormFile("image"); err == nil && header != nil {
		image, thumb, err := saveImage(header)
		if err != nil {
			renderPostForm(c, http.StatusOK, gin.H{"Viewer": *user, "IsEdit": true, "Post": post, "Text": r.Text, "Error": "Could not read the image", "SelectedGroup": selectedGroup(r.Group)})
			return
		}
		updates["image"] = image
		updates["image_thumb"] = thumb
	}
	// CreatedAt stays untouched; posts keep their place in the listings
	if err := db.Instance.Model(&post).Updates(updates).Error; err != nil {
		serverError(c, err)
		return
	}
	c.Redirect(http.StatusFound, detailPath)
}

// saveImage stores the uploaded file and a jpeg thumbnail under posts/
// and returns both storage paths.
func saveImage(header *multipart.FileHeader) (string, string, error) {
	name := uuid.NewString()
	imagePath := "posts/" + name + filepath.Ext(header.Filename)
	thumbPath := "posts/" + name + "_thumb.jpg"

	file, err := header.Open()
	if err != nil {
		return "", "", err
	}
	var thumbBuf bytes.Buffer
	if _, err = utils.CreateThumb(thumbSize, file, &thumbBuf); err != nil {
		file.Close()
		return "", "", err
	}
	if _, err = file.Seek(0, 0); err != nil {
		file.Close()
		return "", "", err
	}
	_, err = storage.Get().Save(imagePath, file)
	file.Close()
	if err != nil {
		return "", "", err
	}
	if _, err = storage.Get().Save(thumbPath, &thumbBuf); err != nil {
		return "", "", err
	}
	return imagePath, thumbPath, nil
}
