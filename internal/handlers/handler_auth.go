package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thariapp/thari_backend/internal/apperrors"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/dto"
	"github.com/thariapp/thari_backend/internal/middleware"
)

// authHandler handles the PIN lock and session tokens.
type authHandler struct {
	authService portssvc.AuthSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(as portssvc.AuthSvcFacade) *authHandler {
	return &authHandler{
		authService: as,
	}
}

// registerUnlockRoute registers the public unlock endpoint on the engine.
func registerUnlockRoute(r *gin.Engine, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)
	r.POST("/api/v1/auth/unlock", h.unlock)
}

// registerAuthRoutes registers the protected PIN management route.
func registerAuthRoutes(rg *gin.RouterGroup, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService)
	rg.PUT("/auth/pin", h.setPIN)
}

func (h *authHandler) unlock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UnlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Unlock", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	token, err := h.authService.Unlock(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Unlock rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong PIN"})
		} else {
			logger.Error("Failed to unlock in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlock"})
		}
		return
	}

	logger.Info("Session unlocked successfully")
	c.JSON(http.StatusOK, token)
}

func (h *authHandler) setPIN(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetPINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetPIN", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.authService.SetPIN(c.Request.Context(), req); err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("SetPIN rejected: old PIN mismatch")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Old PIN does not match"})
		} else {
			logger.Error("Failed to set PIN in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set PIN"})
		}
		return
	}

	logger.Info("PIN updated successfully")
	c.Status(http.StatusNoContent)
}
