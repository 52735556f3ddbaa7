package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"workhive_backend/internal/models"
	"workhive_backend/internal/repositories"
	"workhive_backend/internal/services/dto"
	"workhive_backend/pkg/apperrors"
)

type jobFixture struct {
	jobs     JobService
	profiles ProfileService
	store    *repositories.Store

	creator *models.User
	worker  *models.User
}

// newJobFixture wires a creator with a hiring profile and a worker with a
// matching category profile against a fresh store.
func newJobFixture(t *testing.T) *jobFixture {
	t.Helper()
	store := newTestStore(t)

	profileSvc := NewProfileService(store.Profiles, store.Users).(*ProfileServiceImpl)
	profileSvc.now = func() time.Time { return fixedNow }

	f := &jobFixture{
		jobs:     NewJobService(store.Jobs, store.Profiles),
		profiles: profileSvc,
		store:    store,
		creator:  createUser(t, store, "hiring@test.com", "7010000001"),
		worker:   createUser(t, store, "worker@test.com", "7010000002"),
	}

	_, err := profileSvc.CreateProfile(f.creator.ID, &dto.CreateProfileRequest{
		Role: "hiring", Categories: []string{"cleaning"},
		DateOfBirth: "1990-01-10", Mobile: f.creator.Mobile,
	})
	assert.NoError(t, err)

	_, err = profileSvc.CreateProfile(f.worker.ID, &dto.CreateProfileRequest{
		Role: "worker", Categories: []string{"cleaning", "plumbing"},
		DateOfBirth: "1996-03-20", Mobile: f.worker.Mobile,
	})
	assert.NoError(t, err)

	return f
}

func (f *jobFixture) postJob(t *testing.T, category string) *models.JobPost {
	t.Helper()
	job, err := f.jobs.Create(f.creator.ID, &dto.CreateJobRequest{
		Title:       "Deep clean apartment",
		Description: "Two-bedroom apartment, full clean",
		Category:    category,
		Budget:      15000,
		Mobile:      f.creator.Mobile,
		City:        "Almaty",
		WorkDate:    "2026-07-01",
	})
	assert.NoError(t, err)
	return job
}

func TestJobService_Create_ServerControlsStatus(t *testing.T) {
	t.Parallel()

	f := newJobFixture(t)
	job := f.postJob(t, "cleaning")

	assert.Equal(t, models.JobStatusOpen, job.Status)
	assert.Nil(t, job.AssignedTo)
	assert.Equal(t, f.creator.ID, job.CreatedBy)
	assert.NotEmpty(t, job.ID)
}

func TestJobService_AcceptLifecycle(t *testing.T) {
	t.Parallel()

	f := newJobFixture(t)
	job := f.postJob(t, "cleaning")

	// The creator cannot take their own posting, in any status.
	_, err := f.jobs.Accept(f.creator.ID, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrOwnJobAccept)

	accepted, err := f.jobs.Accept(f.worker.ID, job.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.JobStatusAssigned, accepted.Status)
	assert.True(t, accepted.IsAssignee(f.worker.ID))
	assert.NotNil(t, accepted.AssignedAt)

	// A second taker finds the job already gone.
	another := createUser(t, f.store, "late@test.com", "7010000003")
	_, err = f.jobs.Accept(another.ID, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobNotOpen)

	_, err = f.jobs.Accept(f.worker.ID, "missing")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestJobService_Decline(t *testing.T) {
	t.Parallel()

	f := newJobFixture(t)
	job := f.postJob(t, "cleaning")

	// Declining an open job is a state error, not an authorization one.
	_, err := f.jobs.Decline(f.worker.ID, job.ID, "")
	assert.ErrorIs(t, err, apperrors.ErrJobNotAssigned)

	_, err = f.jobs.Accept(f.worker.ID, job.ID)
	assert.NoError(t, err)

	// Only the assignee may decline.
	outsider := createUser(t, f.store, "outsider@test.com", "7010000004")
	_, err = f.jobs.Decline(outsider.ID, job.ID, "not mine")
	assert.ErrorIs(t, err, apperrors.ErrNotJobAssignee)

	longReason := strings.Repeat("x", 600)
	declined, err := f.jobs.Decline(f.worker.ID, job.ID, longReason)
	assert.NoError(t, err)

	// Back to open, assignment cleared, history grown by one truncated entry.
	assert.Equal(t, models.JobStatusOpen, declined.Status)
	assert.Nil(t, declined.AssignedTo)
	assert.Len(t, declined.DeclineHistory, 1)
	assert.Equal(t, f.worker.ID, declined.DeclineHistory[0].UserID)
	assert.Len(t, declined.DeclineHistory[0].Reason, 500)

	// The job is acceptable again after the decline.
	reaccepted, err := f.jobs.Accept(f.worker.ID, job.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.JobStatusAssigned, reaccepted.Status)
	assert.Len(t, reaccepted.DeclineHistory, 1)
}

func TestJobService_Cancel(t *testing.T) {
	t.Parallel()

	f := newJobFixture(t)
	job := f.postJob(t, "cleaning")

	_, err := f.jobs.Accept(f.worker.ID, job.ID)
	assert.NoError(t, err)

	// Only the creator may cancel.
	_, err = f.jobs.Cancel(f.worker.ID, job.ID, "changed my mind")
	assert.ErrorIs(t, err, apperrors.ErrNotJobCreator)

	cancelled, err := f.jobs.Cancel(f.creator.ID, job.ID, "plans changed")
	assert.NoError(t, err)
	assert.Equal(t, models.JobStatusCancelled, cancelled.Status)
	assert.Equal(t, f.creator.ID, cancelled.CancelledBy)
	assert.Equal(t, "plans changed", cancelled.CancelledReason)
	assert.NotNil(t, cancelled.CancelledAt)
	// The worker is released from the dead job.
	assert.Nil(t, cancelled.AssignedTo)

	// Cancelling twice fails: the job is terminal.
	_, err = f.jobs.Cancel(f.creator.ID, job.ID, "")
	assert.ErrorIs(t, err, apperrors.ErrJobTerminal)
}

func TestJobService_Complete(t *testing.T) {
	t.Parallel()

	f := newJobFixture(t)
	job := f.postJob(t, "cleaning")

	_, err := f.jobs.Accept(f.worker.ID, job.ID)
	assert.NoError(t, err)

	_, err = f.jobs.Complete(f.worker.ID, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotJobCreator)

	completed, err := f.jobs.Complete(f.creator.ID, job.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, completed.Status)
	assert.NotNil(t, completed.CompletedAt)
	// Only an assigned job carries an assignee.
	assert.Nil(t, completed.AssignedTo)

	_, err = f.jobs.Complete(f.creator.ID, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobTerminal)
}

func TestJobService_Delete(t *testing.T) {
	t.Parallel()

	f := newJobFixture(t)
	job := f.postJob(t, "cleaning")

	outsider := createUser(t, f.store, "outsider@test.com", "7010000005")
	assert.ErrorIs(t, f.jobs.Delete(outsider.ID, job.ID), apperrors.ErrNotJobParticipant)

	_, err := f.jobs.Accept(f.worker.ID, job.ID)
	assert.NoError(t, err)

	// The assignee may delete too.
	assert.NoError(t, f.jobs.Delete(f.worker.ID, job.ID))
	assert.ErrorIs(t, f.jobs.Delete(f.worker.ID, job.ID), apperrors.ErrJobNotFound)
}

func TestJobService_ListForUser_WorkerFeed(t *testing.T) {
	t.Parallel()

	f := newJobFixture(t)

	cleaning := f.postJob(t, "cleaning")
	plumbing := f.postJob(t, "plumbing")
	f.postJob(t, "electrical") // not on the worker's profile

	// A job the worker posted themselves must not show up in their feed.
	_, err := f.jobs.Create(f.worker.ID, &dto.CreateJobRequest{
		Title: "My own task", Description: "Something for my place",
		Category: "cleaning", Budget: 1000, Mobile: f.worker.Mobile,
		City: "Almaty", WorkDate: "2026-07-01",
	})
	assert.NoError(t, err)

	feed, err := f.jobs.ListForUser(f.worker.ID)
	assert.NoError(t, err)
	assert.Len(t, feed, 2)

	ids := []string{feed[0].ID, feed[1].ID}
	assert.Contains(t, ids, cleaning.ID)
	assert.Contains(t, ids, plumbing.ID)

	// Contact details stay hidden until the worker takes the job.
	for _, j := range feed {
		assert.Empty(t, j.Mobile)
	}
}

func TestJobService_ListForUser_DedupAcrossCategories(t *testing.T) {
	t.Parallel()

	f := newJobFixture(t)
	job := f.postJob(t, "cleaning")

	// A sloppy profile listing the same category twice must not duplicate
	// feed entries.
	_, err := f.profiles.UpdateProfile(f.worker.ID, &dto.UpdateProfileRequest{
		Categories: []string{"cleaning", "cleaning"},
	})
	assert.NoError(t, err)

	feed, err := f.jobs.ListForUser(f.worker.ID)
	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Equal(t, job.ID, feed[0].ID)
}

func TestJobService_ListForUser_HiringSeesOwn(t *testing.T) {
	t.Parallel()

	f := newJobFixture(t)
	job := f.postJob(t, "cleaning")

	feed, err := f.jobs.ListForUser(f.creator.ID)
	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Equal(t, job.ID, feed[0].ID)
	// Own postings keep the contact mobile.
	assert.Equal(t, f.creator.Mobile, feed[0].Mobile)
}

func TestJobService_ListForUser_NoProfile(t *testing.T) {
	t.Parallel()

	f := newJobFixture(t)
	fresh := createUser(t, f.store, "fresh@test.com", "7010000006")

	_, err := f.jobs.ListForUser(fresh.ID)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestJobService_GetJob_ContactRedaction(t *testing.T) {
	t.Parallel()

	f := newJobFixture(t)
	job := f.postJob(t, "cleaning")

	outsider := createUser(t, f.store, "outsider@test.com", "7010000007")

	forOutsider, err := f.jobs.GetJob(outsider.ID, job.ID)
	assert.NoError(t, err)
	assert.Empty(t, forOutsider.Mobile)

	forCreator, err := f.jobs.GetJob(f.creator.ID, job.ID)
	assert.NoError(t, err)
	assert.Equal(t, f.creator.Mobile, forCreator.Mobile)

	_, err = f.jobs.Accept(f.worker.ID, job.ID)
	assert.NoError(t, err)

	forAssignee, err := f.jobs.GetJob(f.worker.ID, job.ID)
	assert.NoError(t, err)
	assert.Equal(t, f.creator.Mobile, forAssignee.Mobile)

	_, err = f.jobs.GetJob(f.worker.ID, "missing")
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestJobService_MyAndAssignedLists(t *testing.T) {
	t.Parallel()

	f := newJobFixture(t)
	job := f.postJob(t, "cleaning")

	_, err := f.jobs.Accept(f.worker.ID, job.ID)
	assert.NoError(t, err)

	mine, err := f.jobs.MyJobs(f.creator.ID)
	assert.NoError(t, err)
	assert.Len(t, mine, 1)

	assigned, err := f.jobs.AssignedJobs(f.worker.ID)
	assert.NoError(t, err)
	assert.Len(t, assigned, 1)
	assert.Equal(t, job.ID, assigned[0].ID)

	none, err := f.jobs.AssignedJobs(f.creator.ID)
	assert.NoError(t, err)
	assert.Empty(t, none)
}
