package models

import "gorm.io/datatypes"

// Profile is the one-to-one extension of a User: role, service categories
// and the public card shown on the browse page.
type Profile struct {
	BaseModel
	UserID     string                      `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	Role       UserRole                    `gorm:"type:varchar(20);not null;default:'worker'" json:"role"`
	Categories datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"categories"`
	Age        int                         `json:"age"`
	Mobile     string                      `gorm:"not null" json:"mobile,omitempty"`

	ProfilePhoto string                      `json:"profilePhoto,omitempty"`
	Bio          string                      `json:"bio,omitempty"`
	Skills       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills,omitempty"`
	Experience   int                         `json:"experience,omitempty"`
	Rating       float64                     `json:"rating,omitempty"`
	ReviewCount  int                         `json:"reviewCount,omitempty"`
	IsVerified   bool                        `gorm:"default:false" json:"isVerified"`
}

// StripContact blanks the fields that must not leak to other users'
// browsers on the public profile list.
func (p Profile) StripContact() Profile {
	p.Mobile = ""
	return p
}
