package models

// ContactModel is a message submitted through the public contact form.
type ContactModel struct {
	Base
	Name    string `json:"name"    gorm:"not null"`
	Email   string `json:"email"   gorm:"not null"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" gorm:"type:text;not null"`
}

func (ContactModel) TableName() string { return "contacts" }
