package router

import (
	"github.com/gin-gonic/gin"

	"taxlens/internal/config"
	"taxlens/internal/handler"
	"taxlens/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	extractH *handler.ExtractHandler,
	registryH *handler.RegistryHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Extraction
	v1.POST("/extract", extractH.Extract)
	v1.POST("/extract/batch", extractH.ExtractBatch)
	v1.POST("/extract/export", extractH.Export)

	// Registry views
	v1.GET("/fields", registryH.ListFields)
	v1.GET("/sections", registryH.ListSections)
	v1.GET("/sections/:section/fields", registryH.SectionFields)

	return r
}
