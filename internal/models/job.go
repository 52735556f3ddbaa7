package models

import (
	"time"

	"gorm.io/datatypes"
)

// DeclineEntry is one assignee withdrawal. The history only grows.
type DeclineEntry struct {
	UserID string    `json:"userId"`
	Reason string    `json:"reason,omitempty"`
	At     time.Time `json:"at"`
}

type JobPost struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Category    string `gorm:"index;not null" json:"category"`
	SubCategory string `json:"subCategory,omitempty"`

	CreatedBy  string    `gorm:"type:uuid;index;not null" json:"createdBy"`
	AssignedTo *string   `gorm:"type:uuid;index" json:"assignedTo"`
	Status     JobStatus `gorm:"type:varchar(20);index;not null;default:'open'" json:"status"`

	Budget   float64 `gorm:"not null" json:"budget"`
	Mobile   string  `gorm:"not null" json:"mobile,omitempty"`
	City     string  `gorm:"not null" json:"city"`
	Location string  `json:"location,omitempty"`
	WorkDate string  `gorm:"not null" json:"workDate"`

	WorkPhoto string `json:"workPhoto,omitempty"`

	AssignedAt      *time.Time                        `json:"assignedAt,omitempty"`
	CompletedAt     *time.Time                        `json:"completedAt,omitempty"`
	CancelledAt     *time.Time                        `json:"cancelledAt,omitempty"`
	CancelledBy     string                            `json:"cancelledBy,omitempty"`
	CancelledReason string                            `json:"cancelledReason,omitempty"`
	DeclineHistory  datatypes.JSONSlice[DeclineEntry] `gorm:"type:jsonb" json:"declineHistory,omitempty"`
}

// IsAssignee reports whether userID is the current assignee.
func (j *JobPost) IsAssignee(userID string) bool {
	return j.AssignedTo != nil && *j.AssignedTo == userID
}

// StripContact blanks the contact mobile; listings apply it for everyone
// except the creator and the current assignee.
func (j JobPost) StripContact() JobPost {
	j.Mobile = ""
	return j
}
