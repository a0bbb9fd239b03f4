package models

import "time"

// UserModel is the single admin account.
type UserModel struct {
	Base
	Username string `json:"username" gorm:"uniqueIndex;size:191;not null"`
	Name     string `json:"name"`
	Password string `json:"-"        gorm:"not null"`
	Email    string `json:"email"`
}

func (UserModel) TableName() string { return "users" }

// UserSession is a DB-backed login session bound to a JWT.
type UserSession struct {
	Base
	UserID    string     `json:"user_id" gorm:"type:char(36);index;not null"`
	IP        string     `json:"ip"`
	UA        string     `json:"ua"`
	ExpiresAt time.Time  `json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at"`
}

func (UserSession) TableName() string { return "user_sessions" }
