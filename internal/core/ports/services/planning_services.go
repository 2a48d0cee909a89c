package services

import (
	"context"

	"github.com/thariapp/thari_backend/internal/dto"
)

// PlanningSvcFacade defines goal and subscription tracking. Both follow the
// same log-plus-aggregate pattern as the rest of the document.
type PlanningSvcFacade interface {
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*dto.GoalResponse, error)
	AddToGoal(ctx context.Context, goalID string, req dto.AddToGoalRequest) (*dto.GoalResponse, error)
	ListGoals(ctx context.Context) ([]dto.GoalResponse, error)
	DeleteGoal(ctx context.Context, goalID string) error

	CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	ListSubscriptions(ctx context.Context) ([]dto.SubscriptionResponse, error)
	DeleteSubscription(ctx context.Context, subscriptionID string) error
}
