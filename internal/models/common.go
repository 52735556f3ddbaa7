package models

import "time"

// BaseModel carries the shared identity and audit fields. IDs are assigned
// by the repositories (uuid), not by the database, so both providers agree.
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
