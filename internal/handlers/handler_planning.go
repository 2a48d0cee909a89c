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

// planningHandler handles HTTP requests for goals and subscriptions.
type planningHandler struct {
	planningService portssvc.PlanningSvcFacade
}

// newPlanningHandler creates a new planningHandler.
func newPlanningHandler(ps portssvc.PlanningSvcFacade) *planningHandler {
	return &planningHandler{
		planningService: ps,
	}
}

// registerPlanningRoutes registers goal and subscription routes.
func registerPlanningRoutes(rg *gin.RouterGroup, planningService portssvc.PlanningSvcFacade) {
	h := newPlanningHandler(planningService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.POST("/:id/add", h.addToGoal)
		goals.DELETE("/:id", h.deleteGoal)
	}

	subscriptions := rg.Group("/subscriptions")
	{
		subscriptions.POST("", h.createSubscription)
		subscriptions.GET("", h.listSubscriptions)
		subscriptions.DELETE("/:id", h.deleteSubscription)
	}
}

func (h *planningHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.planningService.CreateGoal(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating goal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create goal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		}
		return
	}

	logger.Info("Goal created successfully", slog.String("goal_id", goal.GoalID))
	c.JSON(http.StatusCreated, goal)
}

func (h *planningHandler) addToGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	var req dto.AddToGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddToGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.planningService.AddToGoal(c.Request.Context(), goalID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error adding to goal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to add to goal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to goal"})
		}
		return
	}

	c.JSON(http.StatusOK, goal)
}

func (h *planningHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	goals, err := h.planningService.ListGoals(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list goals in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list goals"})
		return
	}

	c.JSON(http.StatusOK, goals)
}

func (h *planningHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	if err := h.planningService.DeleteGoal(c.Request.Context(), goalID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		} else {
			logger.Error("Failed to delete goal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		}
		return
	}

	logger.Info("Goal deleted successfully", slog.String("goal_id", goalID))
	c.Status(http.StatusNoContent)
}

func (h *planningHandler) createSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSubscription", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sub, err := h.planningService.CreateSubscription(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating subscription", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create subscription in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		}
		return
	}

	logger.Info("Subscription created successfully", slog.String("subscription_id", sub.SubscriptionID))
	c.JSON(http.StatusCreated, sub)
}

func (h *planningHandler) listSubscriptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	subs, err := h.planningService.ListSubscriptions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list subscriptions in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subscriptions"})
		return
	}

	c.JSON(http.StatusOK, subs)
}

func (h *planningHandler) deleteSubscription(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	subscriptionID := c.Param("id")

	if err := h.planningService.DeleteSubscription(c.Request.Context(), subscriptionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		} else {
			logger.Error("Failed to delete subscription in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subscription"})
		}
		return
	}

	logger.Info("Subscription deleted successfully", slog.String("subscription_id", subscriptionID))
	c.Status(http.StatusNoContent)
}
