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

// debtHandler handles HTTP requests related to debts and settlement.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

// newDebtHandler creates a new debtHandler.
func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{
		debtService: ds,
	}
}

// registerDebtRoutes registers routes related to debts.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("", h.listDebts)
		debts.GET("/totals", h.outstandingTotals)
		debts.POST("/:id/settle", h.settleDebt)
		debts.DELETE("/:id", h.deleteDebt)
	}
}

func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating debt", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create debt"})
		}
		return
	}

	logger.Info("Debt created successfully", slog.String("debt_id", debt.DebtID))
	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	debts, err := h.debtService.ListDebts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list debts in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list debts"})
		return
	}

	out := make([]dto.DebtResponse, len(debts))
	for i := range debts {
		out[i] = dto.ToDebtResponse(&debts[i])
	}
	c.JSON(http.StatusOK, out)
}

func (h *debtHandler) outstandingTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	totals, err := h.debtService.OutstandingTotals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute debt totals in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute debt totals"})
		return
	}

	c.JSON(http.StatusOK, totals)
}

func (h *debtHandler) settleDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	var req dto.SettleDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SettleDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	settlement, err := h.debtService.Settle(c.Request.Context(), debtID, req.WalletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Attempted to settle an already settled debt", slog.String("debt_id", debtID))
			c.JSON(http.StatusConflict, gin.H{"error": "Debt is already settled"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error settling debt", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to settle debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle debt"})
		}
		return
	}

	logger.Info("Debt settled successfully", slog.String("debt_id", debtID))
	c.JSON(http.StatusOK, settlement)
}

func (h *debtHandler) deleteDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	if err := h.debtService.DeleteDebt(c.Request.Context(), debtID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else {
			logger.Error("Failed to delete debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete debt"})
		}
		return
	}

	logger.Info("Debt deleted successfully", slog.String("debt_id", debtID))
	c.Status(http.StatusNoContent)
}
