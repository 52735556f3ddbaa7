package apperrors

import "net/http"

// Predefined domain errors. Services return these; handlers map them to
// HTTP responses through HandleError.

// --- Auth ---

var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid credentials", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusBadRequest)
	ErrEmailTaken         = New(CodeAlreadyExists, "user", "Email already registered", http.StatusConflict)
	ErrMobileTaken        = New(CodeAlreadyExists, "user", "Mobile number already registered", http.StatusConflict)
	ErrUserNotFound       = New(CodeNotFound, "user", "User not found", http.StatusNotFound)
)

// --- Profile ---

var (
	ErrProfileNotFound = New(CodeNotFound, "profile", "Profile not found", http.StatusNotFound)
	ErrProfileExists   = New(CodeAlreadyExists, "profile", "Profile already exists", http.StatusConflict)
	ErrInvalidRole     = New(CodeValidationFailed, "profile", "Invalid target role", http.StatusBadRequest)
	ErrImplausibleAge  = New(CodeValidationFailed, "profile", "Birth date must not be in the future or before 1900", http.StatusBadRequest)
)

// --- Jobs ---

var (
	ErrJobNotFound       = New(CodeNotFound, "job", "Job not found", http.StatusNotFound)
	ErrJobNotOpen        = New(CodeConflict, "job", "Job is no longer available", http.StatusConflict)
	ErrJobNotAssigned    = New(CodeInvalidStatus, "job", "Job is not in an assignable state for this action", http.StatusBadRequest)
	ErrJobTerminal       = New(CodeInvalidStatus, "job", "Job is already completed or cancelled", http.StatusBadRequest)
	ErrOwnJobAccept      = New(CodeInvalidOperation, "job", "You cannot accept your own job", http.StatusBadRequest)
	ErrNotJobCreator     = New(CodeForbidden, "job", "Only the job creator can perform this action", http.StatusForbidden)
	ErrNotJobAssignee    = New(CodeForbidden, "job", "Only the assigned worker can perform this action", http.StatusForbidden)
	ErrNotJobParticipant = New(CodeForbidden, "job", "Only the creator or the assignee can delete this job", http.StatusForbidden)
)
