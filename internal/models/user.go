package models

import "time"

type User struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	Mobile       string `gorm:"uniqueIndex;not null" json:"mobile"`
	PasswordHash string `gorm:"not null" json:"-"`

	ResetToken    string     `gorm:"index" json:"-"`
	ResetTokenExp *time.Time `json:"-"`
}
