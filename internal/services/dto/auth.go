package dto

import "time"

type SignupRequest struct {
	Name     string `json:"name" binding:"required" validate:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
	Mobile   string `json:"mobile" binding:"required" validate:"required,mobile"`
}

// LoginRequest accepts an email address or a mobile number as identifier.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required" validate:"required"`
	Password   string `json:"password" binding:"required" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required" validate:"required"`
	NewPassword string `json:"newPassword" binding:"required" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required" validate:"required"`
	NewPassword     string `json:"newPassword" binding:"required" validate:"required"`
}

type ChangeEmailRequest struct {
	NewEmail string `json:"newEmail" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type ChangeMobileRequest struct {
	NewMobile string `json:"newMobile" binding:"required" validate:"required,mobile"`
	Password  string `json:"password" binding:"required" validate:"required"`
}

// UserResponse never carries the password hash or reset token.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	User  *UserResponse `json:"user"`
	Token string        `json:"token"`
}
