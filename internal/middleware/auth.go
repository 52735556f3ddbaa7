package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"workhive_backend/internal/auth"
	"workhive_backend/pkg/apperrors"
)

const (
	ContextUserIDKey = "userID"
	ContextEmailKey  = "email"

	// SessionCookieName is the HTTP-only cookie set at login for browser
	// clients; API clients send the same token as a Bearer header.
	SessionCookieName = "token"
)

// AuthMiddleware resolves the session token, preferring the Authorization
// header over the cookie, and aborts with 401 when neither verifies.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			if cookie, err := c.Cookie(SessionCookieName); err == nil {
				raw = cookie
			}
		}

		if raw == "" {
			abortUnauthorized(c, "authentication required")
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			if apperrors.Is(err, auth.ErrTokenExpired) {
				abortUnauthorized(c, "session expired")
				return
			}
			abortUnauthorized(c, "invalid session token")
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, message string) {
	appErr := apperrors.NewUnauthorizedError(message)
	c.AbortWithStatusJSON(appErr.HTTPCode, apperrors.ErrorResponse{Error: appErr})
}
