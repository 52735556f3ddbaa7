package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhive_backend/internal/auth"
	"workhive_backend/internal/handlers"
	"workhive_backend/internal/middleware"
)

// Register wires the full HTTP surface onto the engine: public auth routes,
// the authorized API, and the health probe.
func Register(r *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenService) {
	api := r.Group("/api")
	authorized := r.Group("/api")
	authorized.Use(middleware.AuthMiddleware(tokens))

	h.Auth.RegisterRoutes(api, authorized)
	h.Profile.RegisterRoutes(authorized)
	h.Job.RegisterRoutes(authorized)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
