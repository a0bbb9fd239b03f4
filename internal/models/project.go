package models

// ProjectModel is a portfolio project card.
type ProjectModel struct {
	Base
	Title         string      `json:"title"           gorm:"not null"`
	Description   string      `json:"description"     gorm:"type:text"`
	TechStack     StringArray `json:"tech_stack"      gorm:"type:longtext"`
	LiveURL       string      `json:"live_url"`
	ImageURL      string      `json:"image_url"`
	ImagePublicID string      `json:"image_public_id"`
}

func (ProjectModel) TableName() string { return "projects" }
