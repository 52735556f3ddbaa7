package services

import (
	"time"

	"gorm.io/datatypes"

	"workhive_backend/internal/models"
	"workhive_backend/internal/repositories"
	"workhive_backend/internal/services/dto"
	"workhive_backend/pkg/apperrors"
)

const minBirthYear = 1900

type ProfileService interface {
	CreateProfile(userID string, req *dto.CreateProfileRequest) (*models.Profile, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.Profile, error)
	GetOwnProfile(userID string) (*models.Profile, error)
	ListPublicProfiles(requesterID string) ([]models.Profile, error)
	SwitchRole(userID string, target models.UserRole) (*models.Profile, error)
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	now         func() time.Time
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		now:         time.Now,
	}
}

func (s *ProfileServiceImpl) CreateProfile(userID string, req *dto.CreateProfileRequest) (*models.Profile, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if _, err := s.profileRepo.FindByUserID(userID); err == nil {
		return nil, apperrors.ErrProfileExists
	}

	age, err := s.deriveAge(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	role := models.UserRoleWorker
	if req.Role != "" {
		role = models.UserRole(req.Role)
		if !models.ValidSwitchTarget(role) {
			return nil, apperrors.ErrInvalidRole
		}
	}

	profile := &models.Profile{
		UserID:       userID,
		Role:         role,
		Categories:   datatypes.NewJSONSlice(req.Categories),
		Age:          age,
		Mobile:       normalizeMobile(req.Mobile),
		ProfilePhoto: req.ProfilePhoto,
		Bio:          req.Bio,
		Skills:       datatypes.NewJSONSlice(req.Skills),
		Experience:   req.Experience,
	}

	if err := s.profileRepo.Create(profile); err != nil {
		if apperrors.Is(err, repositories.ErrProfileAlreadyExists) {
			return nil, apperrors.ErrProfileExists
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.ErrProfileNotFound
	}

	if req.Categories != nil {
		profile.Categories = datatypes.NewJSONSlice(req.Categories)
	}
	if req.DateOfBirth != nil {
		age, err := s.deriveAge(*req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		profile.Age = age
	} else if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Mobile != nil {
		profile.Mobile = normalizeMobile(*req.Mobile)
	}
	if req.ProfilePhoto != nil {
		profile.ProfilePhoto = *req.ProfilePhoto
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Skills != nil {
		profile.Skills = datatypes.NewJSONSlice(req.Skills)
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetOwnProfile(userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// ListPublicProfiles returns every profile with contact details blanked,
// except the requester's own entry which keeps them.
func (s *ProfileServiceImpl) ListPublicProfiles(requesterID string) ([]models.Profile, error) {
	profiles, err := s.profileRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.UserID == requesterID {
			out = append(out, p)
			continue
		}
		out = append(out, p.StripContact())
	}
	return out, nil
}

func (s *ProfileServiceImpl) SwitchRole(userID string, target models.UserRole) (*models.Profile, error) {
	if !models.ValidSwitchTarget(target) {
		return nil, apperrors.ErrInvalidRole
	}

	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, apperrors.ErrProfileNotFound
	}

	if profile.Role == target {
		return profile, nil
	}

	profile.Role = target
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) deriveAge(dateOfBirth string) (int, error) {
	dob, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return 0, apperrors.NewBadRequestError("dateOfBirth must be in YYYY-MM-DD format")
	}

	now := s.now()
	if dob.After(now) || dob.Year() < minBirthYear {
		return 0, apperrors.ErrImplausibleAge
	}

	age := now.Year() - dob.Year()
	if now.YearDay() < dob.YearDay() {
		age--
	}
	return age, nil
}
