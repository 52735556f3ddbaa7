package models

type UserRole string
type JobStatus string

const (
	UserRoleWorker UserRole = "worker"
	UserRoleHiring UserRole = "hiring"
	UserRoleAdmin  UserRole = "admin"

	JobStatusOpen      JobStatus = "open"
	JobStatusAssigned  JobStatus = "assigned"
	JobStatusCompleted JobStatus = "completed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Terminal reports whether no further transitions are defined out of s.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

// ValidSwitchTarget restricts role switching to the two non-admin roles.
func ValidSwitchTarget(role UserRole) bool {
	return role == UserRoleWorker || role == UserRoleHiring
}
