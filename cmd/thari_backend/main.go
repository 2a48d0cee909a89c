package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	memorystore "github.com/ulule/limiter/v3/drivers/store/memory"

	adaptersai "github.com/thariapp/thari_backend/internal/adapters/ai"
	portsai "github.com/thariapp/thari_backend/internal/core/ports/ai"
	"github.com/thariapp/thari_backend/internal/core/services"
	"github.com/thariapp/thari_backend/internal/dto"
	"github.com/thariapp/thari_backend/internal/handlers"
	"github.com/thariapp/thari_backend/internal/middleware"
	"github.com/thariapp/thari_backend/internal/platform/config"
	"github.com/thariapp/thari_backend/internal/repositories/database/sqlite"
	"github.com/thariapp/thari_backend/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	// Run database migrations before opening the main handle
	logger.Info("Running database migrations...")
	if err := sqlite.RunMigrations(cfg.DatabasePath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied successfully.")

	db, err := database.NewSQLiteDB(cfg.DatabasePath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.CloseDB(db)

	repos := sqlite.NewRepositoryProvider(db)

	// Load the state document, seeding a fresh default when none exists
	store, err := services.NewStateStore(ctx, repos.StateRepo)
	if err != nil {
		logger.Error("Failed to initialize state store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var advisor portsai.Advisor
	if cfg.GeminiAPIKey != "" {
		gemini, err := adaptersai.NewGeminiAdvisor(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("Failed to initialize Gemini advisor, advice will use the fallback message", slog.String("error", err.Error()))
		} else {
			advisor = gemini
		}
	}

	serviceContainer := services.NewServiceContainer(store, advisor, cfg)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	if err := dto.RegisterCustomValidations(); err != nil {
		logger.Error("Failed to register custom validations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memorystore.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
