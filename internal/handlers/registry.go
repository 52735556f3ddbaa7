package handlers

import (
	"workhive_backend/internal/auth"
	"workhive_backend/internal/services"
	"workhive_backend/internal/validator"
)

// AppHandlers bundles every HTTP handler so route registration takes one
// argument.
type AppHandlers struct {
	Auth    *AuthHandler
	Profile *ProfileHandler
	Job     *JobHandler
}

func NewAppHandlers(
	v *validator.Validator,
	tokens *auth.TokenService,
	authService services.AuthService,
	profileService services.ProfileService,
	jobService services.JobService,
) *AppHandlers {
	return &AppHandlers{
		Auth:    NewAuthHandler(v, authService, tokens),
		Profile: NewProfileHandler(v, profileService),
		Job:     NewJobHandler(v, jobService),
	}
}
