package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hrnexus_backend/internal/handlers"
	"hrnexus_backend/internal/middleware"
	"hrnexus_backend/internal/models"
	"hrnexus_backend/internal/session"
)

// SetupRoutes registers all API routes on the engine.
func SetupRoutes(engine *gin.Engine, h *handlers.AppHandlers, sessions *session.Manager) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group("/api/v1")

	// Public: registration and login.
	h.Auth.RegisterRoutes(api)

	// Candidate portal.
	candidateGroup := api.Group("")
	candidateGroup.Use(middleware.SessionMiddleware(sessions), middleware.RoleMiddleware(models.RoleCandidate))
	h.Candidate.RegisterRoutes(candidateGroup)

	// HR dashboard.
	adminGroup := api.Group("")
	adminGroup.Use(middleware.SessionMiddleware(sessions), middleware.RoleMiddleware(models.RoleHRAdmin))
	h.Admin.RegisterRoutes(adminGroup)
}
