package repositories

import (
	"errors"
	"time"

	"workhive_backend/internal/models"
)

// Sentinel errors shared by every provider. Services translate these into
// apperrors before they reach a handler.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")

	ErrJobNotFound = errors.New("job not found")
	// ErrJobNotOpen is what the loser of a concurrent accept sees.
	ErrJobNotOpen     = errors.New("job is not open")
	ErrJobNotAssigned = errors.New("job is not assigned to this worker")
	ErrJobTerminal    = errors.New("job is in a terminal status")
)

type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByMobile(mobile string) (*models.User, error)
	FindByEmailOrMobile(identifier string) (*models.User, error)
	// FindByResetToken only matches tokens that have not expired.
	FindByResetToken(token string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
}

type ProfileRepository interface {
	FindByUserID(userID string) (*models.Profile, error)
	Create(profile *models.Profile) error
	Update(profile *models.Profile) error
	FindAll() ([]models.Profile, error)
}

type JobRepository interface {
	Create(job *models.JobPost) error
	FindByID(id string) (*models.JobPost, error)
	Update(job *models.JobPost) error
	Delete(id string) error

	FindByCreator(userID string) ([]models.JobPost, error)
	FindByAssignee(userID string) ([]models.JobPost, error)
	// FindOpenByCategory returns open jobs in the category not created by
	// excludeUserID.
	FindOpenByCategory(category, excludeUserID string) ([]models.JobPost, error)

	// Conditional transitions. Each succeeds only from the status the state
	// machine allows; a concurrent winner leaves the loser with a sentinel
	// error, never a double assignment.
	Assign(jobID, workerID string, at time.Time) (*models.JobPost, error)
	Release(jobID, workerID string, entry models.DeclineEntry) (*models.JobPost, error)
	Cancel(jobID, byUserID, reason string, at time.Time) (*models.JobPost, error)
	Complete(jobID string, at time.Time) (*models.JobPost, error)
}

// Store bundles the three repositories of one provider. It is constructed
// once at startup and injected; nothing in the app reaches for a global.
type Store struct {
	Users    UserRepository
	Profiles ProfileRepository
	Jobs     JobRepository
}
