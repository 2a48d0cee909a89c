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

// backupHandler handles encrypted backup and restore.
type backupHandler struct {
	backupService portssvc.BackupSvcFacade
}

// newBackupHandler creates a new backupHandler.
func newBackupHandler(bs portssvc.BackupSvcFacade) *backupHandler {
	return &backupHandler{
		backupService: bs,
	}
}

// registerBackupRoutes registers backup and restore routes.
func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvcFacade) {
	h := newBackupHandler(backupService)

	rg.POST("/backup", h.backup)
	rg.POST("/restore", h.restore)
}

func (h *backupHandler) backup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BackupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Backup", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payload, err := h.backupService.Backup(c.Request.Context(), req.Password)
	if err != nil {
		logger.Error("Failed to produce backup in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to produce backup"})
		return
	}

	logger.Info("Backup produced successfully")
	c.JSON(http.StatusOK, dto.BackupResponse{Payload: payload})
}

func (h *backupHandler) restore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Restore", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.backupService.Restore(c.Request.Context(), req.Payload, req.Password); err != nil {
		if errors.Is(err, apperrors.ErrBadCipher) {
			logger.Warn("Rejected restore payload")
			c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.ErrBadCipher.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error restoring backup", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to restore backup in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore backup"})
		}
		return
	}

	logger.Info("Backup restored successfully")
	c.Status(http.StatusNoContent)
}
