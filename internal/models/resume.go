package models

// ResumeModel is the singleton resume record. The table holds at most one row;
// the service decides between insert and update based on the existing row id.
type ResumeModel struct {
	Base
	FileURL      string `json:"file_url" gorm:"not null"`
	FilePublicID string `json:"file_public_id"`
	Label        string `json:"label"`
}

func (ResumeModel) TableName() string { return "resumes" }
