package filestore

import (
	"time"

	"workhive_backend/internal/models"
	"workhive_backend/internal/repositories"

	"github.com/google/uuid"
)

type UserRepo struct {
	store *Store
}

func (r *UserRepo) findLocked(match func(*models.User) bool) (*models.User, error) {
	for i := range r.store.users {
		if match(&r.store.users[i]) {
			u := r.store.users[i]
			return &u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *UserRepo) FindByID(id string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.findLocked(func(u *models.User) bool { return u.ID == id })
}

func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.findLocked(func(u *models.User) bool { return u.Email == email })
}

func (r *UserRepo) FindByMobile(mobile string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.findLocked(func(u *models.User) bool { return u.Mobile == mobile })
}

func (r *UserRepo) FindByEmailOrMobile(identifier string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.findLocked(func(u *models.User) bool {
		return u.Email == identifier || u.Mobile == identifier
	})
}

func (r *UserRepo) FindByResetToken(token string) (*models.User, error) {
	if token == "" {
		return nil, repositories.ErrUserNotFound
	}
	now := time.Now()
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.findLocked(func(u *models.User) bool {
		return u.ResetToken == token && u.ResetTokenExp != nil && u.ResetTokenExp.After(now)
	})
}

func (r *UserRepo) Create(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.users {
		if r.store.users[i].Email == user.Email || r.store.users[i].Mobile == user.Mobile {
			return repositories.ErrUserAlreadyExists
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.store.users = append(r.store.users, *user)
	return r.store.saveUsers()
}

func (r *UserRepo) Update(user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.users {
		if r.store.users[i].ID == user.ID {
			user.CreatedAt = r.store.users[i].CreatedAt
			user.UpdatedAt = time.Now()
			r.store.users[i] = *user
			return r.store.saveUsers()
		}
	}
	return repositories.ErrUserNotFound
}

func (r *UserRepo) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i := range r.store.users {
		if r.store.users[i].ID == id {
			r.store.users = append(r.store.users[:i], r.store.users[i+1:]...)
			return r.store.saveUsers()
		}
	}
	return repositories.ErrUserNotFound
}
