package models

import "yatube/db"

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(32);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

// GroupCreate is used from the admin CLI; groups are not created through the web UI.
func GroupCreate(title, slug, description string) (g Group, err error) {
	g = Group{
		Title:       title,
		Slug:        slug,
		Description: description,
	}
	return g, db.Instance.Create(&g).Error
}

func GroupBySlug(slug string) (g Group, err error) {
	err = db.Instance.First(&g, "slug = ?", slug).Error
	return
}

// GroupsAll lists groups for the post form select box.
func GroupsAll() (groups []Group, err error) {
	err = db.Instance.Order("title").Find(&groups).Error
	return
}
