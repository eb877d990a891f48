package models

import (
	"fmt"
	"testing"

	"yatube/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testInit points db.Instance at a fresh in-memory database.
func testInit(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.Instance = gdb
	Init()
}

func mustUser(t *testing.T, username string) User {
	t.Helper()
	u, err := UserCreate(username, username, username+"@example.com", "secret")
	if err != nil {
		t.Fatalf("UserCreate(%s): %v", username, err)
	}
	return u
}
