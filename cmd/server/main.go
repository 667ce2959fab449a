package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/routes"
	"resumeforge/internal/config"
	"resumeforge/internal/exporter"
	"resumeforge/internal/importer"
	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
	"resumeforge/internal/renderer"
	"resumeforge/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger := logging.GetGlobalLogger()
	logger.Info("Starting Resume Forge")

	// Pick the session repository: Redis when reachable, in-memory otherwise
	var (
		repo      store.Repository
		redisRepo *store.RedisRepository
	)
	redisRepo = store.NewRedisRepository(cfg)
	pingCtx, pingCancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	if err := redisRepo.Ping(pingCtx); err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory sessions", map[string]interface{}{
			"error": err.Error(),
		})
		_ = redisRepo.Close()
		redisRepo = nil
		repo = store.NewMemoryRepository()
	} else {
		repo = redisRepo
	}
	pingCancel()

	storeManager := store.NewManager(repo)

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Error("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// Initialize browser pool for PDF export
	if err := exporter.InitializeBrowserPool(cfg); err != nil {
		logger.Warn("Browser pool unavailable - PDF export disabled", map[string]interface{}{
			"error": err.Error(),
		})
	}

	engine := renderer.NewEngine()
	im := importer.NewImporter(llmManager)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, cfg, storeManager, llmManager, im, engine)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Stopping browser pool...")
		if pool, err := exporter.GetBrowserPool(); err == nil {
			if err := pool.Shutdown(shutdownCtx); err != nil {
				logger.Error("Error stopping browser pool", map[string]interface{}{"error": err.Error()})
			}
		}

		logger.Info("Stopping LLM manager...")
		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
		}

		if redisRepo != nil {
			logger.Info("Closing Redis connection...")
			if err := redisRepo.Close(); err != nil {
				logger.Error("Error closing Redis", map[string]interface{}{"error": err.Error()})
			}
		}

		logger.Info("Server shutdown complete")
		_ = logging.CloseLogging()
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Error("Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
