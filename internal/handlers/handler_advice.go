package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/middleware"
)

// adviceHandler handles the AI advice endpoint.
type adviceHandler struct {
	adviceService portssvc.AdviceSvcFacade
}

// newAdviceHandler creates a new adviceHandler.
func newAdviceHandler(as portssvc.AdviceSvcFacade) *adviceHandler {
	return &adviceHandler{
		adviceService: as,
	}
}

// registerAdviceRoutes registers the advice route.
func registerAdviceRoutes(rg *gin.RouterGroup, adviceService portssvc.AdviceSvcFacade) {
	h := newAdviceHandler(adviceService)

	rg.GET("/advice", h.advise)
}

func (h *adviceHandler) advise(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	advice, err := h.adviceService.Advise(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get advice in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get advice"})
		return
	}

	c.JSON(http.StatusOK, advice)
}
