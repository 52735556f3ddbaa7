package services

import (
	"time"

	"workhive_backend/internal/models"
	"workhive_backend/internal/repositories"
	"workhive_backend/internal/services/dto"
	"workhive_backend/pkg/apperrors"
)

// maxReasonLen caps free-text decline and cancel reasons before storage.
const maxReasonLen = 500

type JobService interface {
	Create(userID string, req *dto.CreateJobRequest) (*models.JobPost, error)
	GetJob(requesterID, jobID string) (*models.JobPost, error)
	ListForUser(userID string) ([]models.JobPost, error)
	MyJobs(userID string) ([]models.JobPost, error)
	AssignedJobs(userID string) ([]models.JobPost, error)

	Accept(userID, jobID string) (*models.JobPost, error)
	Decline(userID, jobID, reason string) (*models.JobPost, error)
	Cancel(userID, jobID, reason string) (*models.JobPost, error)
	Complete(userID, jobID string) (*models.JobPost, error)
	Delete(userID, jobID string) error
}

type JobServiceImpl struct {
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
	now         func() time.Time
}

func NewJobService(
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		now:         time.Now,
	}
}

// Create opens a new job owned by userID. The status and assignment fields
// are server-controlled regardless of what the request carried.
func (s *JobServiceImpl) Create(userID string, req *dto.CreateJobRequest) (*models.JobPost, error) {
	job := &models.JobPost{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		CreatedBy:   userID,
		AssignedTo:  nil,
		Status:      models.JobStatusOpen,
		Budget:      req.Budget,
		Mobile:      normalizeMobile(req.Mobile),
		City:        req.City,
		Location:    req.Location,
		WorkDate:    req.WorkDate,
		WorkPhoto:   req.WorkPhoto,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) GetJob(requesterID, jobID string) (*models.JobPost, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return redactFor(requesterID, *job), nil
}

// ListForUser is the role-dependent feed: workers see open jobs across
// every category on their profile, hiring users see the jobs they created.
func (s *JobServiceImpl) ListForUser(userID string) ([]models.JobPost, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if profile.Role != models.UserRoleWorker {
		return s.MyJobs(userID)
	}

	seen := make(map[string]struct{})
	var out []models.JobPost
	for _, category := range profile.Categories {
		jobs, err := s.jobRepo.FindOpenByCategory(category, userID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		for _, job := range jobs {
			if _, ok := seen[job.ID]; ok {
				continue
			}
			seen[job.ID] = struct{}{}
			out = append(out, job.StripContact())
		}
	}
	if out == nil {
		out = []models.JobPost{}
	}
	return out, nil
}

func (s *JobServiceImpl) MyJobs(userID string) ([]models.JobPost, error) {
	jobs, err := s.jobRepo.FindByCreator(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if jobs == nil {
		jobs = []models.JobPost{}
	}
	return jobs, nil
}

func (s *JobServiceImpl) AssignedJobs(userID string) ([]models.JobPost, error) {
	jobs, err := s.jobRepo.FindByAssignee(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if jobs == nil {
		jobs = []models.JobPost{}
	}
	return jobs, nil
}

// Accept assigns an open job to userID. Taking your own job is rejected
// before the status check so the creator always sees the same error.
func (s *JobServiceImpl) Accept(userID, jobID string) (*models.JobPost, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, apperrors.ErrJobNotFound
	}
	if job.CreatedBy == userID {
		return nil, apperrors.ErrOwnJobAccept
	}

	updated, err := s.jobRepo.Assign(jobID, userID, s.now())
	if err != nil {
		return nil, s.mapTransitionErr(err)
	}
	return updated, nil
}

// Decline lets the current assignee return the job to open, recording the
// withdrawal in the job's history.
func (s *JobServiceImpl) Decline(userID, jobID, reason string) (*models.JobPost, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, apperrors.ErrJobNotFound
	}
	if job.Status != models.JobStatusAssigned {
		return nil, apperrors.ErrJobNotAssigned
	}
	if !job.IsAssignee(userID) {
		return nil, apperrors.ErrNotJobAssignee
	}

	entry := models.DeclineEntry{
		UserID: userID,
		Reason: truncateReason(reason),
		At:     s.now(),
	}
	updated, err := s.jobRepo.Release(jobID, userID, entry)
	if err != nil {
		return nil, s.mapTransitionErr(err)
	}
	return updated, nil
}

// Cancel is a creator-only transition out of open or assigned. Any current
// assignment is dropped so the worker is not left tied to a dead job.
func (s *JobServiceImpl) Cancel(userID, jobID, reason string) (*models.JobPost, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, apperrors.ErrJobNotFound
	}
	if job.CreatedBy != userID {
		return nil, apperrors.ErrNotJobCreator
	}

	updated, err := s.jobRepo.Cancel(jobID, userID, truncateReason(reason), s.now())
	if err != nil {
		return nil, s.mapTransitionErr(err)
	}
	return updated, nil
}

func (s *JobServiceImpl) Complete(userID, jobID string) (*models.JobPost, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, apperrors.ErrJobNotFound
	}
	if job.CreatedBy != userID {
		return nil, apperrors.ErrNotJobCreator
	}

	updated, err := s.jobRepo.Complete(jobID, s.now())
	if err != nil {
		return nil, s.mapTransitionErr(err)
	}
	return updated, nil
}

// Delete is allowed for the creator and for the current assignee.
func (s *JobServiceImpl) Delete(userID, jobID string) error {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		return apperrors.ErrJobNotFound
	}
	if job.CreatedBy != userID && !job.IsAssignee(userID) {
		return apperrors.ErrNotJobParticipant
	}

	if err := s.jobRepo.Delete(jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) mapTransitionErr(err error) error {
	switch {
	case apperrors.Is(err, repositories.ErrJobNotFound):
		return apperrors.ErrJobNotFound
	case apperrors.Is(err, repositories.ErrJobNotOpen):
		return apperrors.ErrJobNotOpen
	case apperrors.Is(err, repositories.ErrJobNotAssigned):
		return apperrors.ErrJobNotAssigned
	case apperrors.Is(err, repositories.ErrJobTerminal):
		return apperrors.ErrJobTerminal
	default:
		return apperrors.InternalError(err)
	}
}

// redactFor strips contact details unless the requester is a participant.
func redactFor(requesterID string, job models.JobPost) *models.JobPost {
	if job.CreatedBy == requesterID || job.IsAssignee(requesterID) {
		return &job
	}
	out := job.StripContact()
	return &out
}

func truncateReason(reason string) string {
	if len(reason) > maxReasonLen {
		return reason[:maxReasonLen]
	}
	return reason
}
