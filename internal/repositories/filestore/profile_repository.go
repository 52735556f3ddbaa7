package filestore

import (
	"time"

	"workhive_backend/internal/models"
	"workhive_backend/internal/repositories"

	"github.com/google/uuid"
)

type ProfileRepo struct {
	store *Store
}

func (r *ProfileRepo) FindByUserID(userID string) (*models.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.profiles {
		if r.store.profiles[i].UserID == userID {
			p := r.store.profiles[i]
			return &p, nil
		}
	}
	return nil, repositories.ErrProfileNotFound
}

func (r *ProfileRepo) Create(profile *models.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.profiles {
		if r.store.profiles[i].UserID == profile.UserID {
			return repositories.ErrProfileAlreadyExists
		}
	}

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	r.store.profiles = append(r.store.profiles, *profile)
	return r.store.saveProfiles()
}

func (r *ProfileRepo) Update(profile *models.Profile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.profiles {
		if r.store.profiles[i].UserID == profile.UserID {
			profile.ID = r.store.profiles[i].ID
			profile.CreatedAt = r.store.profiles[i].CreatedAt
			profile.UpdatedAt = time.Now()
			r.store.profiles[i] = *profile
			return r.store.saveProfiles()
		}
	}
	return repositories.ErrProfileNotFound
}

func (r *ProfileRepo) FindAll() ([]models.Profile, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	out := make([]models.Profile, len(r.store.profiles))
	copy(out, r.store.profiles)
	return out, nil
}
