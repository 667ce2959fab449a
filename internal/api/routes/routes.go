package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"resumeforge/internal/api/handlers"
	"resumeforge/internal/api/middleware"
	"resumeforge/internal/config"
	"resumeforge/internal/importer"
	"resumeforge/internal/llm"
	"resumeforge/internal/renderer"
	"resumeforge/internal/store"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, stores *store.Manager, llmManager *llm.Manager, im *importer.Importer, engine *renderer.Engine) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation())
	// Selective timeout: model-backed and browser-backed endpoints get the long budget
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	aiLimiter := middleware.NewAIRateLimiter(cfg.LLM.RateLimit)

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager))
		health.GET("/live", handlers.LivenessHandler)
	}

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resumes/:id")
		{
			resume.GET("", handlers.GetResumeHandler(stores))
			resume.GET("/preview", handlers.PreviewHandler(stores, engine))

			resume.PUT("/basics", handlers.UpdateBasicsHandler(stores))
			resume.PUT("/summary", handlers.UpdateSummaryHandler(stores))
			resume.PUT("/sections/order", handlers.ReorderSectionsHandler(stores))
			resume.PUT("/sections/:section/title", handlers.UpdateSectionTitleHandler(stores))
			resume.POST("/sections/:section/items", handlers.AddSectionItemHandler(stores))
			resume.PUT("/sections/:section/items/:itemId", handlers.UpdateSectionItemHandler(stores))
			resume.DELETE("/sections/:section/items/:itemId", handlers.DeleteSectionItemHandler(stores))

			resume.PUT("/settings", handlers.UpdateSettingsHandler(stores))
			resume.POST("/settings/zoom/reset", handlers.ResetZoomHandler(stores))

			resume.POST("/import", handlers.ImportJSONHandler(stores, im))
			resume.POST("/import/text", handlers.ImportTextHandler(stores, im), aiLimiter.Middleware())
			resume.POST("/import/pdf", handlers.ImportPDFHandler(stores, im), aiLimiter.Middleware())
			resume.POST("/import/image", handlers.ImportImageHandler(stores, im), aiLimiter.Middleware())

			resume.GET("/export/json", handlers.ExportJSONHandler(stores, im))
			resume.POST("/export/pdf", handlers.ExportPDFHandler(cfg, stores, engine))

			ai := resume.Group("/ai", aiLimiter.Middleware())
			{
				ai.POST("/rewrite", handlers.RewriteTextHandler(llmManager))
				ai.POST("/fix-typos", handlers.FixTyposHandler(llmManager))
				ai.POST("/customize", handlers.CustomizeTextHandler(llmManager))
				ai.POST("/review", handlers.ReviewResumeHandler(stores, llmManager))
			}
		}
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "Resume Forge",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
