package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"workhive_backend/internal/auth"
	"workhive_backend/internal/email"
	"workhive_backend/internal/repositories"
	"workhive_backend/internal/repositories/filestore"
	"workhive_backend/internal/services/dto"
	"workhive_backend/pkg/apperrors"
)

func newTestStore(t *testing.T) *repositories.Store {
	t.Helper()
	s, err := filestore.Open(t.TempDir())
	assert.NoError(t, err)
	return s.Repositories()
}

func newTestAuthService(t *testing.T) (AuthService, *repositories.Store, *email.CaptureProvider) {
	t.Helper()
	store := newTestStore(t)
	tokens, err := auth.NewTokenService("test-secret")
	assert.NoError(t, err)
	capture := email.NewCaptureProvider()
	return NewAuthService(store.Users, tokens, capture), store, capture
}

func signup(t *testing.T, svc AuthService, emailAddr, mobile string) *dto.AuthResponse {
	t.Helper()
	resp, err := svc.Signup(&dto.SignupRequest{
		Name:     "Test User",
		Email:    emailAddr,
		Password: "Secret123",
		Mobile:   mobile,
	})
	assert.NoError(t, err)
	return resp
}

func TestAuthService_SignupAndLogin(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService(t)

	// Signup issues a usable session token right away.
	resp := signup(t, svc, "asel@test.com", "701 123-4567")
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "asel@test.com", resp.User.Email)
	assert.Equal(t, "7011234567", resp.User.Mobile)

	// Login by email.
	byEmail, err := svc.Login(&dto.LoginRequest{Identifier: "asel@test.com", Password: "Secret123"})
	assert.NoError(t, err)
	assert.Equal(t, resp.User.ID, byEmail.User.ID)

	// Login by mobile, with the same formatting noise a phone field allows.
	byMobile, err := svc.Login(&dto.LoginRequest{Identifier: "701-123-4567", Password: "Secret123"})
	assert.NoError(t, err)
	assert.Equal(t, resp.User.ID, byMobile.User.ID)
}

func TestAuthService_Login_BadCredentials(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService(t)
	signup(t, svc, "asel@test.com", "7011234567")

	_, err := svc.Login(&dto.LoginRequest{Identifier: "asel@test.com", Password: "Wrong1234"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	// Unknown identifier answers identically to a wrong password.
	_, err = svc.Login(&dto.LoginRequest{Identifier: "nobody@test.com", Password: "Secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Signup_Duplicates(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService(t)
	signup(t, svc, "asel@test.com", "7011234567")

	_, err := svc.Signup(&dto.SignupRequest{
		Name: "Other", Email: "asel@test.com", Password: "Secret123", Mobile: "7019999999",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)

	_, err = svc.Signup(&dto.SignupRequest{
		Name: "Other", Email: "other@test.com", Password: "Secret123", Mobile: "7011234567",
	})
	assert.ErrorIs(t, err, apperrors.ErrMobileTaken)
}

func TestAuthService_Signup_WeakPassword(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService(t)

	_, err := svc.Signup(&dto.SignupRequest{
		Name: "Test", Email: "weak@test.com", Password: "short", Mobile: "7011234567",
	})
	assert.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	assert.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestAuthService_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	t.Parallel()

	svc, _, capture := newTestAuthService(t)

	err := svc.ForgotPassword("nobody@test.com")

	assert.NoError(t, err)
	assert.Empty(t, capture.Sent())
}

func TestAuthService_PasswordResetFlow(t *testing.T) {
	t.Parallel()

	svc, store, capture := newTestAuthService(t)
	signup(t, svc, "asel@test.com", "7011234567")

	assert.NoError(t, svc.ForgotPassword("asel@test.com"))

	// The token lands in storage immediately; delivery is asynchronous.
	user, err := store.Users.FindByEmail("asel@test.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ResetToken)
	assert.NotNil(t, user.ResetTokenExp)

	assert.Eventually(t, func() bool {
		return len(capture.Sent()) == 1
	}, waitFor, tick, "reset email should be delivered")

	assert.NoError(t, svc.ResetPassword(user.ResetToken, "NewSecret123"))

	// Old password dead, new one works, token single-use.
	_, err = svc.Login(&dto.LoginRequest{Identifier: "asel@test.com", Password: "Secret123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Identifier: "asel@test.com", Password: "NewSecret123"})
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.ResetPassword(user.ResetToken, "Another123"), apperrors.ErrInvalidToken)
}

func TestAuthService_ResetPassword_BadToken(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService(t)

	assert.ErrorIs(t, svc.ResetPassword("no-such-token", "NewSecret123"), apperrors.ErrInvalidToken)
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService(t)
	resp := signup(t, svc, "asel@test.com", "7011234567")

	assert.ErrorIs(t,
		svc.ChangePassword(resp.User.ID, "Wrong1234", "NewSecret123"),
		apperrors.ErrInvalidCredentials)

	assert.NoError(t, svc.ChangePassword(resp.User.ID, "Secret123", "NewSecret123"))

	_, err := svc.Login(&dto.LoginRequest{Identifier: "asel@test.com", Password: "NewSecret123"})
	assert.NoError(t, err)
}

func TestAuthService_ChangeEmailAndMobile(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAuthService(t)
	first := signup(t, svc, "asel@test.com", "7011234567")
	signup(t, svc, "taken@test.com", "7020000000")

	// Re-auth required.
	assert.ErrorIs(t,
		svc.ChangeEmail(first.User.ID, "new@test.com", "Wrong1234"),
		apperrors.ErrInvalidCredentials)

	// Uniqueness enforced against other accounts.
	assert.ErrorIs(t,
		svc.ChangeEmail(first.User.ID, "taken@test.com", "Secret123"),
		apperrors.ErrEmailTaken)
	assert.ErrorIs(t,
		svc.ChangeMobile(first.User.ID, "7020000000", "Secret123"),
		apperrors.ErrMobileTaken)

	assert.NoError(t, svc.ChangeEmail(first.User.ID, "new@test.com", "Secret123"))
	assert.NoError(t, svc.ChangeMobile(first.User.ID, "7030000000", "Secret123"))

	verified, err := svc.VerifySession(first.User.ID)
	assert.NoError(t, err)
	assert.Equal(t, "new@test.com", verified.Email)
	assert.Equal(t, "7030000000", verified.Mobile)
}
