package models

// CommentModel is a flat, append-only comment attached to a blog article.
type CommentModel struct {
	Base
	BlogID     string `json:"blog_id" gorm:"type:char(36);index;not null"`
	AuthorName string `json:"author_name" gorm:"not null"`
	Content    string `json:"content" gorm:"type:text;not null"`

	Blog *BlogModel `json:"blog,omitempty" gorm:"foreignKey:BlogID"`
}

func (CommentModel) TableName() string { return "comments" }
