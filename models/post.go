package models

import "yatube/db"

type Post struct {
	ID         uint64  `gorm:"primaryKey"`
	CreatedAt  int64   `gorm:"index"`
	UpdatedAt  int64
	UserID     uint64
	User       User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID    *uint64
	Group      *Group  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text       string  `gorm:"type:text"`
	Image      string  `gorm:"type:varchar(300)"`
	ImageThumb string  `gorm:"type:varchar(300)"`
}

const summaryLimit = 15

// Summary is the post text cropped for listings and logs.
func (p *Post) Summary() string {
	r := []rune(p.Text)
	if len(r) <= summaryLimit {
		return p.Text
	}
	return string(r[:summaryLimit])
}

func PostCountByAuthor(userID uint64) int64 {
	var count int64
	db.Instance.Model(&Post{}).Where("user_id = ?", userID).Count(&count)
	return count
}
