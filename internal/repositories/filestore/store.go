// Package filestore is the development persistence provider: JSON arrays
// under a data directory (users.json, profiles.json, jobs.json), the same
// layout the production document collections mirror. One mutex guards every
// operation, which is what makes the conditional job transitions atomic.
package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"workhive_backend/internal/models"
	"workhive_backend/internal/repositories"
)

const (
	usersFile    = "users.json"
	profilesFile = "profiles.json"
	jobsFile     = "jobs.json"
)

type Store struct {
	dir string

	mu       sync.Mutex
	users    []models.User
	profiles []models.Profile
	jobs     []models.JobPost
}

// Open loads (or initializes) the data directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	s := &Store{
		dir:      dir,
		users:    []models.User{},
		profiles: []models.Profile{},
		jobs:     []models.JobPost{},
	}
	if err := readJSON(filepath.Join(dir, usersFile), &s.users); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, profilesFile), &s.profiles); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, jobsFile), &s.jobs); err != nil {
		return nil, err
	}
	return s, nil
}

// Repositories exposes the store through the provider-neutral contract.
func (s *Store) Repositories() *repositories.Store {
	return &repositories.Store{
		Users:    &UserRepo{store: s},
		Profiles: &ProfileRepo{store: s},
		Jobs:     &JobRepo{store: s},
	}
}

func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return writeJSON(path, out)
		}
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, out)
}

// writeJSON writes via a temp file and rename so a crash mid-write never
// truncates the collection.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// persist helpers; callers must hold s.mu.

func (s *Store) saveUsers() error {
	return writeJSON(filepath.Join(s.dir, usersFile), s.users)
}

func (s *Store) saveProfiles() error {
	return writeJSON(filepath.Join(s.dir, profilesFile), s.profiles)
}

func (s *Store) saveJobs() error {
	return writeJSON(filepath.Join(s.dir, jobsFile), s.jobs)
}
