package models

import "time"

// BlogModel is a blog article. Content is stored as rich HTML.
type BlogModel struct {
	Base
	Title           string      `json:"title"            gorm:"not null"`
	Slug            string      `json:"slug"             gorm:"uniqueIndex;size:191;not null"`
	Description     string      `json:"description"      gorm:"type:text"`
	Content         string      `json:"content"          gorm:"type:longtext"`
	Category        string      `json:"category"`
	Tags            StringArray `json:"tags"             gorm:"type:longtext"`
	ImageURL        string      `json:"image_url"`
	ImagePublicID   string      `json:"image_public_id"`
	AuthorName      string      `json:"author_name"`
	IsPublished     bool        `json:"is_published"     gorm:"default:false"`
	PublishedAt     *time.Time  `json:"published_at"`
	Views           int         `json:"views"            gorm:"default:0"`
	Likes           int         `json:"likes"            gorm:"default:0"`
	MetaTitle       string      `json:"meta_title"`
	MetaDescription string      `json:"meta_description" gorm:"type:text"`
}

func (BlogModel) TableName() string { return "blogs" }
