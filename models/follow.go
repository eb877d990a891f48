package models

import "yatube/db"

// Follow is a directed edge: User follows Author.
type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"index:uniq_user_author,priority:1,unique"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"index:uniq_user_author,priority:2,unique"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowCreate adds a follow edge. Following yourself, or an author you
// already follow, is a silent no-op.
func FollowCreate(userID, authorID uint64) error {
	if userID == authorID {
		return nil
	}
	if FollowExists(userID, authorID) {
		return nil
	}
	err := db.Instance.Create(&Follow{UserID: userID, AuthorID: authorID}).Error
	if err != nil && FollowExists(userID, authorID) {
		// Lost the race to a concurrent duplicate; the edge exists either way
		return nil
	}
	return err
}

// FollowDelete removes the matching edge if present; idempotent.
func FollowDelete(userID, authorID uint64) error {
	return db.Instance.Where("user_id = ? and author_id = ?", userID, authorID).Delete(&Follow{}).Error
}

func FollowExists(userID, authorID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).Where("user_id = ? and author_id = ?", userID, authorID).Count(&count)
	return count > 0
}

// HasAnyFollowing reports whether the user follows at least one author.
func HasAnyFollowing(userID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).Where("user_id = ?", userID).Count(&count)
	return count > 0
}
