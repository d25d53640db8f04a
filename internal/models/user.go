package models

// UserModel is a site account created through the signup path.
type UserModel struct {
	Base
	Username string `json:"username" gorm:"size:191;uniqueIndex;not null"`
	Password string `json:"-"        gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }
