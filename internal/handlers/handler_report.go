package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thariapp/thari_backend/internal/apperrors"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/dto"
	"github.com/thariapp/thari_backend/internal/middleware"
)

// maxImportSize bounds the accepted import payload.
const maxImportSize = 10 << 20 // 10 MiB

// reportHandler handles reports, exports and import.
type reportHandler struct {
	reportService portssvc.ReportSvcFacade
}

// newReportHandler creates a new reportHandler.
func newReportHandler(rs portssvc.ReportSvcFacade) *reportHandler {
	return &reportHandler{
		reportService: rs,
	}
}

// registerReportRoutes registers report, export and import routes.
func registerReportRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade) {
	h := newReportHandler(reportService)

	reports := rg.Group("/reports")
	{
		reports.GET("/financial", h.financialReport)
		reports.POST("/zakat", h.zakat)
	}
	rg.GET("/export/csv", h.exportCSV)
	rg.GET("/export/json", h.exportJSON)
	rg.POST("/import", h.importState)
}

func (h *reportHandler) financialReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currency := c.Query("currency")

	report, err := h.reportService.FinancialReport(c.Request.Context(), currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to build financial report in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build financial report"})
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *reportHandler) zakat(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ZakatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Zakat", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.reportService.Zakat(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute zakat in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute zakat"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *reportHandler) exportCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.reportService.ExportCSV(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export CSV in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export CSV"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (h *reportHandler) exportJSON(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.reportService.ExportJSON(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export JSON in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export JSON"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="thari_export.json"`)
	c.Data(http.StatusOK, "application/json", data)
}

func (h *reportHandler) importState(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize))
	if err != nil {
		logger.Warn("Failed to read import payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read payload"})
		return
	}

	if err := h.reportService.Import(c.Request.Context(), payload); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected import payload", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid file"})
		} else {
			logger.Error("Failed to import state in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import"})
		}
		return
	}

	logger.Info("State imported successfully")
	c.Status(http.StatusNoContent)
}
