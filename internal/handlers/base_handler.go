package handlers

import (
	"github.com/gin-gonic/gin"

	"workhive_backend/internal/middleware"
	"workhive_backend/internal/validator"
	"workhive_backend/pkg/apperrors"
)

// BaseHandler carries what every handler needs: request binding plus the
// shared validation and error-writing helpers.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// BindAndValidateJSON decodes the body into req and runs the struct rules.
// On failure it writes the 400 itself and reports false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid request body"))
		return false
	}

	if err := h.validator.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if apperrors.As(err, &vErr) {
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
			return false
		}
		apperrors.HandleError(c, apperrors.InternalError(err))
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

// AuthenticatedUserID returns the user ID placed by the auth middleware.
// A missing value means the route was registered without the middleware;
// the request is rejected rather than trusted.
func (h *BaseHandler) AuthenticatedUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("authentication required"))
		return "", false
	}
	return userID, true
}
