package repositories

import (
	"errors"
	"time"

	"workhive_backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.JobPost) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.JobPost, error) {
	var job models.JobPost
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Update(job *models.JobPost) error {
	result := r.db.Model(&models.JobPost{}).Where("id = ?", job.ID).Updates(map[string]interface{}{
		"title":        job.Title,
		"description":  job.Description,
		"category":     job.Category,
		"sub_category": job.SubCategory,
		"budget":       job.Budget,
		"mobile":       job.Mobile,
		"city":         job.City,
		"location":     job.Location,
		"work_date":    job.WorkDate,
		"work_photo":   job.WorkPhoto,
		"updated_at":   time.Now(),
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.JobPost{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) FindByCreator(userID string) ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := r.db.Where("created_by = ?", userID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByAssignee(userID string) ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := r.db.Where("assigned_to = ?", userID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindOpenByCategory(category, excludeUserID string) ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := r.db.
		Where("status = ? AND category = ? AND created_by <> ?", models.JobStatusOpen, category, excludeUserID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// Assign is a compare-and-swap on status = open. Two concurrent accepts
// race on the same conditional UPDATE; exactly one row change wins.
func (r *JobRepositoryImpl) Assign(jobID, workerID string, at time.Time) (*models.JobPost, error) {
	result := r.db.Model(&models.JobPost{}).
		Where("id = ? AND status = ?", jobID, models.JobStatusOpen).
		Updates(map[string]interface{}{
			"assigned_to": workerID,
			"status":      models.JobStatusAssigned,
			"assigned_at": at,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, r.missOrWrongStatus(jobID, ErrJobNotOpen)
	}
	return r.FindByID(jobID)
}

// Release returns an assigned job to open and appends the decline entry.
// The WHERE clause pins both status and assignee, so the history read just
// before cannot have been changed by a concurrent transition.
func (r *JobRepositoryImpl) Release(jobID, workerID string, entry models.DeclineEntry) (*models.JobPost, error) {
	job, err := r.FindByID(jobID)
	if err != nil {
		return nil, err
	}

	history := append(job.DeclineHistory, entry)
	result := r.db.Model(&models.JobPost{}).
		Where("id = ? AND status = ? AND assigned_to = ?", jobID, models.JobStatusAssigned, workerID).
		Updates(map[string]interface{}{
			"assigned_to":     nil,
			"assigned_at":     nil,
			"status":          models.JobStatusOpen,
			"decline_history": history,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrJobNotAssigned
	}
	return r.FindByID(jobID)
}

func (r *JobRepositoryImpl) Cancel(jobID, byUserID, reason string, at time.Time) (*models.JobPost, error) {
	result := r.db.Model(&models.JobPost{}).
		Where("id = ? AND status IN ?", jobID, []models.JobStatus{models.JobStatusOpen, models.JobStatusAssigned}).
		Updates(map[string]interface{}{
			"status":           models.JobStatusCancelled,
			"cancelled_at":     at,
			"cancelled_by":     byUserID,
			"cancelled_reason": reason,
			"assigned_to":      nil,
			"assigned_at":      nil,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, r.missOrWrongStatus(jobID, ErrJobTerminal)
	}
	return r.FindByID(jobID)
}

func (r *JobRepositoryImpl) Complete(jobID string, at time.Time) (*models.JobPost, error) {
	result := r.db.Model(&models.JobPost{}).
		Where("id = ? AND status IN ?", jobID, []models.JobStatus{models.JobStatusOpen, models.JobStatusAssigned}).
		Updates(map[string]interface{}{
			"status":       models.JobStatusCompleted,
			"completed_at": at,
			"assigned_to":  nil,
			"assigned_at":  nil,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, r.missOrWrongStatus(jobID, ErrJobTerminal)
	}
	return r.FindByID(jobID)
}

// missOrWrongStatus disambiguates a zero-row conditional update: the job is
// either gone (not found) or in a status the transition does not allow.
func (r *JobRepositoryImpl) missOrWrongStatus(jobID string, statusErr error) error {
	if _, err := r.FindByID(jobID); errors.Is(err, ErrJobNotFound) {
		return ErrJobNotFound
	}
	return statusErr
}
