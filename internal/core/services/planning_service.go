package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/dto"
)

// PlanningService provides business logic for saving goals and
// subscriptions.
type PlanningService struct {
	BaseService
	store *StateStore
}

// NewPlanningService creates a new PlanningService.
func NewPlanningService(store *StateStore) *PlanningService {
	return &PlanningService{store: store}
}

var _ portssvc.PlanningSvcFacade = (*PlanningService)(nil)

// CreateGoal records a new saving goal starting at zero.
func (s *PlanningService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: goal target must be positive", apperrors.ErrValidation)
	}

	goal := domain.Goal{
		GoalID:        uuid.NewString(),
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		CurrencyCode:  strings.ToUpper(req.CurrencyCode),
		TargetDate:    req.TargetDate,
		AuditFields:   domain.NewAuditFields(time.Now()),
	}

	err := s.store.Update(ctx, func(state *domain.AppState) error {
		if state.FindCurrency(goal.CurrencyCode) == nil {
			return fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, goal.CurrencyCode)
		}
		state.Goals = append(state.Goals, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Goal created", "goal_id", goal.GoalID, "target", goal.TargetAmount.String())
	resp := dto.ToGoalResponse(&goal)
	return &resp, nil
}

// AddToGoal adds a contribution to a goal. Contributions only grow the goal;
// progress is clamped at 100 percent in the response.
func (s *PlanningService) AddToGoal(ctx context.Context, goalID string, req dto.AddToGoalRequest) (*dto.GoalResponse, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: contribution must be positive", apperrors.ErrValidation)
	}

	var resp *dto.GoalResponse
	err := s.store.Update(ctx, func(state *domain.AppState) error {
		for i := range state.Goals {
			if state.Goals[i].GoalID == goalID {
				state.Goals[i].CurrentAmount = state.Goals[i].CurrentAmount.Add(req.Amount)
				state.Goals[i].LastUpdatedAt = time.Now()
				r := dto.ToGoalResponse(&state.Goals[i])
				resp = &r
				return nil
			}
		}
		return fmt.Errorf("%w: goal '%s'", apperrors.ErrNotFound, goalID)
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Goal contribution added", "goal_id", goalID, "amount", req.Amount.String())
	return resp, nil
}

// ListGoals retrieves all goals with derived progress.
func (s *PlanningService) ListGoals(ctx context.Context) ([]dto.GoalResponse, error) {
	var out []dto.GoalResponse
	err := s.store.View(func(state *domain.AppState) error {
		out = make([]dto.GoalResponse, 0, len(state.Goals))
		for i := range state.Goals {
			out = append(out, dto.ToGoalResponse(&state.Goals[i]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list goals in service: %w", err)
	}
	return out, nil
}

// DeleteGoal removes a goal.
func (s *PlanningService) DeleteGoal(ctx context.Context, goalID string) error {
	err := s.store.Update(ctx, func(state *domain.AppState) error {
		for i := range state.Goals {
			if state.Goals[i].GoalID == goalID {
				state.Goals = append(state.Goals[:i], state.Goals[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: goal '%s'", apperrors.ErrNotFound, goalID)
	})
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Goal deleted", "goal_id", goalID)
	return nil
}

// CreateSubscription starts tracking a recurring commitment.
func (s *PlanningService) CreateSubscription(ctx context.Context, req dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: subscription amount must be positive", apperrors.ErrValidation)
	}

	sub := domain.Subscription{
		SubscriptionID: uuid.NewString(),
		Name:           req.Name,
		Amount:         req.Amount,
		CurrencyCode:   strings.ToUpper(req.CurrencyCode),
		Frequency:      domain.Frequency(req.Frequency),
		NextBillingAt:  req.NextBillingAt,
		Active:         true,
		AuditFields:    domain.NewAuditFields(time.Now()),
	}

	err := s.store.Update(ctx, func(state *domain.AppState) error {
		if state.FindCurrency(sub.CurrencyCode) == nil {
			return fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, sub.CurrencyCode)
		}
		state.Subscriptions = append(state.Subscriptions, sub)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Subscription created", "subscription_id", sub.SubscriptionID, "name", sub.Name)
	resp := dto.ToSubscriptionResponse(&sub, time.Now())
	return &resp, nil
}

// ListSubscriptions retrieves all subscriptions with due-ness evaluated now.
func (s *PlanningService) ListSubscriptions(ctx context.Context) ([]dto.SubscriptionResponse, error) {
	now := time.Now()
	var out []dto.SubscriptionResponse
	err := s.store.View(func(state *domain.AppState) error {
		out = make([]dto.SubscriptionResponse, 0, len(state.Subscriptions))
		for i := range state.Subscriptions {
			out = append(out, dto.ToSubscriptionResponse(&state.Subscriptions[i], now))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions in service: %w", err)
	}
	return out, nil
}

// DeleteSubscription stops tracking a subscription.
func (s *PlanningService) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	err := s.store.Update(ctx, func(state *domain.AppState) error {
		for i := range state.Subscriptions {
			if state.Subscriptions[i].SubscriptionID == subscriptionID {
				state.Subscriptions = append(state.Subscriptions[:i], state.Subscriptions[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: subscription '%s'", apperrors.ErrNotFound, subscriptionID)
	})
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Subscription deleted", "subscription_id", subscriptionID)
	return nil
}
