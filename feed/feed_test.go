package feed

import (
	"errors"
	"fmt"
	"testing"

	"yatube/db"
	"yatube/models"
	"yatube/pagination"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testInit(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:feed%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.Instance = gdb
	models.Init()
}

func mustUser(t *testing.T, username string) models.User {
	t.Helper()
	u, err := models.UserCreate(username, username, username+"@example.com", "secret")
	if err != nil {
		t.Fatalf("UserCreate(%s): %v", username, err)
	}
	return u
}

func mustPost(t *testing.T, author models.User, group *models.Group, text string) models.Post {
	t.Helper()
	post := models.Post{UserID: author.ID, Text: text}
	if group != nil {
		post.GroupID = &group.ID
	}
	if err := db.Instance.Create(&post).Error; err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func texts(page pagination.Page[models.Post]) []string {
	result := make([]string, 0, len(page.Items))
	for _, p := range page.Items {
		result = append(result, p.Text)
	}
	return result
}

func TestIndexNewestFirstAndPaginated(t *testing.T) {
	testInit(t)
	author := mustUser(t, "author")
	for i := 1; i <= 25; i++ {
		mustPost(t, author, nil, fmt.Sprintf("post %d", i))
	}

	page, err := Index(1)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if len(page.Items) != pagination.PageSize {
		t.Fatalf("page 1 has %d items, want %d", len(page.Items), pagination.PageSize)
	}
	if page.Items[0].Text != "post 25" {
		t.Errorf("first item = %q, want the newest post", page.Items[0].Text)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}

	last, err := Index(3)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}
	if len(last.Items) != 5 {
		t.Errorf("last page has %d items, want 5", len(last.Items))
	}
	if last.Items[len(last.Items)-1].Text != "post 1" {
		t.Errorf("oldest post is %q, want post 1", last.Items[len(last.Items)-1].Text)
	}
}

func TestGroupPosts(t *testing.T) {
	testInit(t)
	author := mustUser(t, "author")
	group, err := models.GroupCreate("Test group", "test-slug", "about")
	if err != nil {
		t.Fatalf("GroupCreate: %v", err)
	}
	inGroup := mustPost(t, author, &group, "grouped post")
	mustPost(t, author, nil, "loose post")

	listing, err := GroupPosts("test-slug", 1)
	if err != nil {
		t.Fatalf("GroupPosts: %v", err)
	}
	if listing.Group.ID != group.ID {
		t.Errorf("Group.ID = %d, want %d", listing.Group.ID, group.ID)
	}
	if len(listing.Page.Items) != 1 || listing.Page.Items[0].ID != inGroup.ID {
		t.Errorf("group listing = %v, want only the grouped post", texts(listing.Page))
	}

	if _, err = GroupPosts("nonexistent", 1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("unknown slug error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestProfile(t *testing.T) {
	testInit(t)
	author := mustUser(t, "author")
	viewer := mustUser(t, "viewer")
	mustPost(t, author, nil, "first")
	mustPost(t, author, nil, "second")
	mustPost(t, viewer, nil, "not mine")

	listing, err := Profile(viewer.ID, "author", 1)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if listing.PostCount != 2 {
		t.Errorf("PostCount = %d, want 2", listing.PostCount)
	}
	if listing.Following {
		t.Error("Following true before following")
	}
	if got := texts(listing.Page); len(got) != 2 || got[0] != "second" {
		t.Errorf("profile posts = %v, want [second first]", got)
	}

	if err := models.FollowCreate(viewer.ID, author.ID); err != nil {
		t.Fatal(err)
	}
	listing, err = Profile(viewer.ID, "author", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !listing.Following {
		t.Error("Following false after following")
	}

	// Anonymous viewers never see a following flag
	listing, err = Profile(0, "author", 1)
	if err != nil {
		t.Fatal(err)
	}
	if listing.Following {
		t.Error("Following true for anonymous viewer")
	}

	if _, err = Profile(0, "nobody", 1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("unknown username error = %v, want gorm.ErrRecordNotFound", err)
	}
}

func TestFollowFeed(t *testing.T) {
	testInit(t)
	reader := mustUser(t, "reader")
	followed := mustUser(t, "followed")
	stranger := mustUser(t, "stranger")
	mustPost(t, followed, nil, "followed post")
	mustPost(t, stranger, nil, "stranger post")

	listing, err := FollowFeed(reader.ID, 1)
	if err != nil {
		t.Fatalf("FollowFeed: %v", err)
	}
	if !listing.NoSubscriptions {
		t.Error("NoSubscriptions false for a user following nobody")
	}
	if len(listing.Page.Items) != 0 {
		t.Errorf("feed = %v, want empty", texts(listing.Page))
	}

	if err := models.FollowCreate(reader.ID, followed.ID); err != nil {
		t.Fatal(err)
	}
	listing, err = FollowFeed(reader.ID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if listing.NoSubscriptions {
		t.Error("NoSubscriptions true for a user with a subscription")
	}
	if got := texts(listing.Page); len(got) != 1 || got[0] != "followed post" {
		t.Errorf("feed = %v, want [followed post]", got)
	}

	// A non-follower still sees nothing
	other, err := FollowFeed(stranger.ID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(other.Page.Items) != 0 {
		t.Errorf("stranger feed = %v, want empty", texts(other.Page))
	}
}

func TestPostDetail(t *testing.T) {
	testInit(t)
	author := mustUser(t, "author")
	commenter := mustUser(t, "commenter")
	post := mustPost(t, author, nil, "the post")
	mustPost(t, author, nil, "another post")
	for i := 1; i <= 2; i++ {
		comment := models.Comment{PostID: post.ID, UserID: commenter.ID, Text: fmt.Sprintf("comment %d", i)}
		if err := db.Instance.Create(&comment).Error; err != nil {
			t.Fatalf("create comment: %v", err)
		}
	}

	view, err := PostDetail(post.ID)
	if err != nil {
		t.Fatalf("PostDetail: %v", err)
	}
	if view.Post.ID != post.ID {
		t.Errorf("Post.ID = %d, want %d", view.Post.ID, post.ID)
	}
	if view.PostCount != 2 {
		t.Errorf("PostCount = %d, want 2", view.PostCount)
	}
	if len(view.Comments) != 2 || view.Comments[0].Text != "comment 2" {
		t.Errorf("comments not newest first: %+v", view.Comments)
	}
	if view.Comments[0].User.Username != "commenter" {
		t.Errorf("comment author not preloaded: %+v", view.Comments[0])
	}

	if _, err = PostDetail(9999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("unknown post error = %v, want gorm.ErrRecordNotFound", err)
	}
}
