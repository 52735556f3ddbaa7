package filestore

import (
	"slices"
	"time"

	"workhive_backend/internal/models"
	"workhive_backend/internal/repositories"

	"github.com/google/uuid"
)

type JobRepo struct {
	store *Store
}

func (r *JobRepo) indexLocked(id string) int {
	for i := range r.store.jobs {
		if r.store.jobs[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *JobRepo) Create(job *models.JobPost) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	r.store.jobs = append(r.store.jobs, *job)
	return r.store.saveJobs()
}

func (r *JobRepo) FindByID(id string) (*models.JobPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return nil, repositories.ErrJobNotFound
	}
	job := r.store.jobs[i]
	return &job, nil
}

func (r *JobRepo) Update(job *models.JobPost) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexLocked(job.ID)
	if i < 0 {
		return repositories.ErrJobNotFound
	}

	current := &r.store.jobs[i]
	current.Title = job.Title
	current.Description = job.Description
	current.Category = job.Category
	current.SubCategory = job.SubCategory
	current.Budget = job.Budget
	current.Mobile = job.Mobile
	current.City = job.City
	current.Location = job.Location
	current.WorkDate = job.WorkDate
	current.WorkPhoto = job.WorkPhoto
	current.UpdatedAt = time.Now()
	return r.store.saveJobs()
}

func (r *JobRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexLocked(id)
	if i < 0 {
		return repositories.ErrJobNotFound
	}
	r.store.jobs = append(r.store.jobs[:i], r.store.jobs[i+1:]...)
	return r.store.saveJobs()
}

func (r *JobRepo) FindByCreator(userID string) ([]models.JobPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []models.JobPost
	for i := range r.store.jobs {
		if r.store.jobs[i].CreatedBy == userID {
			out = append(out, r.store.jobs[i])
		}
	}
	return out, nil
}

func (r *JobRepo) FindByAssignee(userID string) ([]models.JobPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []models.JobPost
	for i := range r.store.jobs {
		if r.store.jobs[i].IsAssignee(userID) {
			out = append(out, r.store.jobs[i])
		}
	}
	return out, nil
}

func (r *JobRepo) FindOpenByCategory(category, excludeUserID string) ([]models.JobPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var out []models.JobPost
	for i := range r.store.jobs {
		j := &r.store.jobs[i]
		if j.Status == models.JobStatusOpen && j.Category == category && j.CreatedBy != excludeUserID {
			out = append(out, *j)
		}
	}
	return out, nil
}

// Assign succeeds only while the job is still open; the store mutex makes
// the check-and-set atomic, so concurrent accepts cannot both win.
func (r *JobRepo) Assign(jobID, workerID string, at time.Time) (*models.JobPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexLocked(jobID)
	if i < 0 {
		return nil, repositories.ErrJobNotFound
	}

	job := &r.store.jobs[i]
	if job.Status != models.JobStatusOpen {
		return nil, repositories.ErrJobNotOpen
	}

	job.AssignedTo = &workerID
	job.Status = models.JobStatusAssigned
	job.AssignedAt = &at
	job.UpdatedAt = time.Now()
	if err := r.store.saveJobs(); err != nil {
		return nil, err
	}
	out := *job
	return &out, nil
}

func (r *JobRepo) Release(jobID, workerID string, entry models.DeclineEntry) (*models.JobPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexLocked(jobID)
	if i < 0 {
		return nil, repositories.ErrJobNotFound
	}

	job := &r.store.jobs[i]
	if job.Status != models.JobStatusAssigned || !job.IsAssignee(workerID) {
		return nil, repositories.ErrJobNotAssigned
	}

	job.AssignedTo = nil
	job.AssignedAt = nil
	job.Status = models.JobStatusOpen
	job.DeclineHistory = append(slices.Clone(job.DeclineHistory), entry)
	job.UpdatedAt = time.Now()
	if err := r.store.saveJobs(); err != nil {
		return nil, err
	}
	out := *job
	return &out, nil
}

func (r *JobRepo) Cancel(jobID, byUserID, reason string, at time.Time) (*models.JobPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexLocked(jobID)
	if i < 0 {
		return nil, repositories.ErrJobNotFound
	}

	job := &r.store.jobs[i]
	if job.Status.Terminal() {
		return nil, repositories.ErrJobTerminal
	}

	job.Status = models.JobStatusCancelled
	job.CancelledAt = &at
	job.CancelledBy = byUserID
	job.CancelledReason = reason
	job.AssignedTo = nil
	job.AssignedAt = nil
	job.UpdatedAt = time.Now()
	if err := r.store.saveJobs(); err != nil {
		return nil, err
	}
	out := *job
	return &out, nil
}

func (r *JobRepo) Complete(jobID string, at time.Time) (*models.JobPost, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	i := r.indexLocked(jobID)
	if i < 0 {
		return nil, repositories.ErrJobNotFound
	}

	job := &r.store.jobs[i]
	if job.Status.Terminal() {
		return nil, repositories.ErrJobTerminal
	}

	job.Status = models.JobStatusCompleted
	job.CompletedAt = &at
	job.AssignedTo = nil
	job.AssignedAt = nil
	job.UpdatedAt = time.Now()
	if err := r.store.saveJobs(); err != nil {
		return nil, err
	}
	out := *job
	return &out, nil
}
