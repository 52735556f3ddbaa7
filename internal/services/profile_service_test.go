package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"workhive_backend/internal/models"
	"workhive_backend/internal/repositories"
	"workhive_backend/internal/services/dto"
	"workhive_backend/pkg/apperrors"
)

// fixedNow pins age derivation so the tests do not drift with the calendar.
var fixedNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestProfileService(t *testing.T) (*ProfileServiceImpl, *repositories.Store) {
	t.Helper()
	store := newTestStore(t)
	svc := NewProfileService(store.Profiles, store.Users).(*ProfileServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func createUser(t *testing.T, store *repositories.Store, email, mobile string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test", Email: email, Mobile: mobile, PasswordHash: "h"}
	assert.NoError(t, store.Users.Create(user))
	return user
}

func TestProfileService_CreateProfile(t *testing.T) {
	t.Parallel()

	svc, store := newTestProfileService(t)
	user := createUser(t, store, "asel@test.com", "7011234567")

	profile, err := svc.CreateProfile(user.ID, &dto.CreateProfileRequest{
		Categories:  []string{"cleaning", "plumbing"},
		DateOfBirth: "1996-03-20",
		Mobile:      "701 123-4567",
		Bio:         "Ten years of experience",
	})

	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleWorker, profile.Role)
	assert.Equal(t, 30, profile.Age)
	assert.Equal(t, "7011234567", profile.Mobile)
	assert.ElementsMatch(t, []string{"cleaning", "plumbing"}, profile.Categories)
}

func TestProfileService_CreateProfile_OnlyOnce(t *testing.T) {
	t.Parallel()

	svc, store := newTestProfileService(t)
	user := createUser(t, store, "asel@test.com", "7011234567")

	req := &dto.CreateProfileRequest{
		Categories: []string{"cleaning"}, DateOfBirth: "1996-03-20", Mobile: "7011234567",
	}
	_, err := svc.CreateProfile(user.ID, req)
	assert.NoError(t, err)

	_, err = svc.CreateProfile(user.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrProfileExists)
}

func TestProfileService_CreateProfile_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _ := newTestProfileService(t)

	_, err := svc.CreateProfile("ghost", &dto.CreateProfileRequest{
		Categories: []string{"cleaning"}, DateOfBirth: "1996-03-20", Mobile: "7011234567",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestProfileService_CreateProfile_ImplausibleBirthDates(t *testing.T) {
	t.Parallel()

	svc, store := newTestProfileService(t)
	user := createUser(t, store, "asel@test.com", "7011234567")

	// In the future.
	_, err := svc.CreateProfile(user.ID, &dto.CreateProfileRequest{
		Categories: []string{"cleaning"}, DateOfBirth: "2030-01-01", Mobile: "7011234567",
	})
	assert.ErrorIs(t, err, apperrors.ErrImplausibleAge)

	// Before the plausibility floor.
	_, err = svc.CreateProfile(user.ID, &dto.CreateProfileRequest{
		Categories: []string{"cleaning"}, DateOfBirth: "1880-01-01", Mobile: "7011234567",
	})
	assert.ErrorIs(t, err, apperrors.ErrImplausibleAge)
}

func TestProfileService_AgeDerivation_BeforeBirthday(t *testing.T) {
	t.Parallel()

	svc, store := newTestProfileService(t)
	user := createUser(t, store, "asel@test.com", "7011234567")

	// Birthday later in the fixed year: the derived age must not round up.
	profile, err := svc.CreateProfile(user.ID, &dto.CreateProfileRequest{
		Categories: []string{"cleaning"}, DateOfBirth: "1996-12-01", Mobile: "7011234567",
	})

	assert.NoError(t, err)
	assert.Equal(t, 29, profile.Age)
}

func TestProfileService_UpdateProfile_PartialMerge(t *testing.T) {
	t.Parallel()

	svc, store := newTestProfileService(t)
	user := createUser(t, store, "asel@test.com", "7011234567")

	_, err := svc.CreateProfile(user.ID, &dto.CreateProfileRequest{
		Categories: []string{"cleaning"}, DateOfBirth: "1996-03-20",
		Mobile: "7011234567", Bio: "original bio",
	})
	assert.NoError(t, err)

	newBio := "updated bio"
	updated, err := svc.UpdateProfile(user.ID, &dto.UpdateProfileRequest{
		Categories: []string{"plumbing", "electrical"},
		Bio:        &newBio,
	})

	assert.NoError(t, err)
	assert.Equal(t, "updated bio", updated.Bio)
	assert.ElementsMatch(t, []string{"plumbing", "electrical"}, updated.Categories)
	// Untouched fields keep their values.
	assert.Equal(t, "7011234567", updated.Mobile)
	assert.Equal(t, 30, updated.Age)
}

func TestProfileService_UpdateProfile_NoProfile(t *testing.T) {
	t.Parallel()

	svc, _ := newTestProfileService(t)

	_, err := svc.UpdateProfile("ghost", &dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}

func TestProfileService_SwitchRole(t *testing.T) {
	t.Parallel()

	svc, store := newTestProfileService(t)
	user := createUser(t, store, "asel@test.com", "7011234567")

	_, err := svc.CreateProfile(user.ID, &dto.CreateProfileRequest{
		Categories: []string{"cleaning"}, DateOfBirth: "1996-03-20", Mobile: "7011234567",
	})
	assert.NoError(t, err)

	switched, err := svc.SwitchRole(user.ID, models.UserRoleHiring)
	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleHiring, switched.Role)

	// Switching to the current role is a quiet no-op.
	same, err := svc.SwitchRole(user.ID, models.UserRoleHiring)
	assert.NoError(t, err)
	assert.Equal(t, models.UserRoleHiring, same.Role)

	// Admin is never a switch target.
	_, err = svc.SwitchRole(user.ID, models.UserRoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestProfileService_ListPublicProfiles_StripsContact(t *testing.T) {
	t.Parallel()

	svc, store := newTestProfileService(t)
	me := createUser(t, store, "me@test.com", "7010000001")
	other := createUser(t, store, "other@test.com", "7010000002")

	for _, u := range []*models.User{me, other} {
		_, err := svc.CreateProfile(u.ID, &dto.CreateProfileRequest{
			Categories: []string{"cleaning"}, DateOfBirth: "1996-03-20", Mobile: u.Mobile,
		})
		assert.NoError(t, err)
	}

	profiles, err := svc.ListPublicProfiles(me.ID)
	assert.NoError(t, err)
	assert.Len(t, profiles, 2)

	for _, p := range profiles {
		if p.UserID == me.ID {
			assert.Equal(t, "7010000001", p.Mobile)
		} else {
			assert.Empty(t, p.Mobile)
		}
	}
}
