// Package feed composes the paginated post listings for the index, group,
// profile and follow pages, plus the post detail aggregate.
package feed

import (
	"yatube/db"
	"yatube/models"
	"yatube/pagination"

	"gorm.io/gorm"
)

// posts are always listed newest first; id breaks ties for posts created
// within the same second
func postQuery() *gorm.DB {
	return db.Instance.Preload("User").Preload("Group").Order("created_at DESC, id DESC")
}

// Index returns a page of all posts. The rendered result is served through
// the page cache, not recomputed per request.
func Index(page int) (pagination.Page[models.Post], error) {
	var posts []models.Post
	if err := postQuery().Find(&posts).Error; err != nil {
		return pagination.Page[models.Post]{}, err
	}
	return pagination.Paginate(posts, page), nil
}

type GroupListing struct {
	Group models.Group
	Page  pagination.Page[models.Post]
}

// GroupPosts returns gorm.ErrRecordNotFound when the slug does not resolve.
func GroupPosts(slug string, page int) (listing GroupListing, err error) {
	listing.Group, err = models.GroupBySlug(slug)
	if err != nil {
		return
	}
	var posts []models.Post
	if err = postQuery().Where("group_id = ?", listing.Group.ID).Find(&posts).Error; err != nil {
		return
	}
	listing.Page = pagination.Paginate(posts, page)
	return
}

type ProfileListing struct {
	Author    models.User
	Page      pagination.Page[models.Post]
	PostCount int64
	Following bool
}

// Profile lists the author's posts along with their total post count and
// whether the viewer follows them. viewerID 0 means an anonymous viewer.
func Profile(viewerID uint64, username string, page int) (listing ProfileListing, err error) {
	listing.Author, err = models.UserByUsername(username)
	if err != nil {
		return
	}
	var posts []models.Post
	if err = postQuery().Where("user_id = ?", listing.Author.ID).Find(&posts).Error; err != nil {
		return
	}
	listing.Page = pagination.Paginate(posts, page)
	listing.PostCount = int64(len(posts))
	if viewerID != 0 {
		listing.Following = models.FollowExists(viewerID, listing.Author.ID)
	}
	return
}

type FollowListing struct {
	Page pagination.Page[models.Post]
	// NoSubscriptions drives the empty-state hint on the follow page
	NoSubscriptions bool
}

// FollowFeed lists posts whose author is in the viewer's follow set.
func FollowFeed(viewerID uint64, page int) (listing FollowListing, err error) {
	listing.NoSubscriptions = !models.HasAnyFollowing(viewerID)
	var posts []models.Post
	followed := db.Instance.Model(&models.Follow{}).Select("author_id").Where("user_id = ?", viewerID)
	if err = postQuery().Where("user_id IN (?)", followed).Find(&posts).Error; err != nil {
		return
	}
	listing.Page = pagination.Paginate(posts, page)
	return
}

type PostView struct {
	Post      models.Post
	Comments  []models.Comment
	PostCount int64
}

// PostDetail returns the post, its comments newest first and the author's
// total post count. gorm.ErrRecordNotFound when the id does not resolve.
func PostDetail(postID uint64) (view PostView, err error) {
	if err = db.Instance.Preload("User").Preload("Group").First(&view.Post, postID).Error; err != nil {
		return
	}
	err = db.Instance.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&view.Comments).Error
	if err != nil {
		return
	}
	view.PostCount = models.PostCountByAuthor(view.Post.UserID)
	return
}
