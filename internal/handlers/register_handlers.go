package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/middleware"
	"github.com/thariapp/thari_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// The unlock endpoint is the only public API route: it is what issues
	// the token every other route requires.
	registerUnlockRoute(r, services.Auth)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerCurrencyRoutes(v1, services.Currency)
	registerWalletRoutes(v1, services.Wallet)
	registerCategoryRoutes(v1, services.Category)
	registerTransactionRoutes(v1, services.Transaction)
	registerBalanceRoutes(v1, services.Balance)
	registerBudgetRoutes(v1, services.Budget)
	registerDebtRoutes(v1, services.Debt)
	registerPlanningRoutes(v1, services.Planning)
	registerReportRoutes(v1, services.Report)
	registerBackupRoutes(v1, services.Backup)
	registerAdviceRoutes(v1, services.Advice)
	registerAuthRoutes(v1, services.Auth)
}
