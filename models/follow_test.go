package models

import (
	"testing"

	"yatube/db"
)

func followCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	if err := db.Instance.Model(&Follow{}).Count(&count).Error; err != nil {
		t.Fatalf("count follows: %v", err)
	}
	return count
}

func TestFollowCreate(t *testing.T) {
	testInit(t)
	a := mustUser(t, "a")
	b := mustUser(t, "b")

	if err := FollowCreate(a.ID, b.ID); err != nil {
		t.Fatalf("FollowCreate: %v", err)
	}
	if !FollowExists(a.ID, b.ID) {
		t.Fatal("edge missing after FollowCreate")
	}
	if FollowExists(b.ID, a.ID) {
		t.Fatal("edge is directed; reverse must not exist")
	}
	// Repeat follows stay idempotent
	if err := FollowCreate(a.ID, b.ID); err != nil {
		t.Fatalf("repeated FollowCreate: %v", err)
	}
	if got := followCount(t); got != 1 {
		t.Errorf("follow edges = %d, want 1", got)
	}
}

func TestFollowCreateSelf(t *testing.T) {
	testInit(t)
	a := mustUser(t, "a")
	// Following yourself is silently refused, no error and no edge
	if err := FollowCreate(a.ID, a.ID); err != nil {
		t.Fatalf("self FollowCreate returned error: %v", err)
	}
	if got := followCount(t); got != 0 {
		t.Errorf("follow edges = %d, want 0", got)
	}
}

func TestFollowDelete(t *testing.T) {
	testInit(t)
	a := mustUser(t, "a")
	b := mustUser(t, "b")
	c := mustUser(t, "c")
	if err := FollowCreate(a.ID, b.ID); err != nil {
		t.Fatal(err)
	}
	if err := FollowCreate(a.ID, c.ID); err != nil {
		t.Fatal(err)
	}
	if err := FollowDelete(a.ID, b.ID); err != nil {
		t.Fatalf("FollowDelete: %v", err)
	}
	// Exactly the matching edge is gone
	if FollowExists(a.ID, b.ID) {
		t.Error("deleted edge still exists")
	}
	if !FollowExists(a.ID, c.ID) {
		t.Error("unrelated edge was deleted")
	}
	// Unfollowing again is a no-op
	if err := FollowDelete(a.ID, b.ID); err != nil {
		t.Fatalf("repeated FollowDelete: %v", err)
	}
	if got := followCount(t); got != 1 {
		t.Errorf("follow edges = %d, want 1", got)
	}
}

func TestHasAnyFollowing(t *testing.T) {
	testInit(t)
	a := mustUser(t, "a")
	b := mustUser(t, "b")
	if HasAnyFollowing(a.ID) {
		t.Error("HasAnyFollowing true for user with no follows")
	}
	if err := FollowCreate(a.ID, b.ID); err != nil {
		t.Fatal(err)
	}
	if !HasAnyFollowing(a.ID) {
		t.Error("HasAnyFollowing false after following")
	}
	if HasAnyFollowing(b.ID) {
		t.Error("HasAnyFollowing true for the followed side")
	}
}
