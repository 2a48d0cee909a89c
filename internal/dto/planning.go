package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/core/domain"
)

// CreateGoalRequest defines the data needed to create a saving goal.
type CreateGoalRequest struct {
	Name         string          `json:"name" binding:"required"`
	TargetAmount decimal.Decimal `json:"targetAmount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
	TargetDate   *time.Time      `json:"targetDate"`
}

// AddToGoalRequest moves money into a goal.
type AddToGoalRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse defines the data returned for a goal.
type GoalResponse struct {
	GoalID        string          `json:"goalID"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	CurrencyCode  string          `json:"currencyCode"`
	TargetDate    *time.Time      `json:"targetDate,omitempty"`
	Progress      decimal.Decimal `json:"progress"`
	Achieved      bool            `json:"achieved"`
}

// ToGoalResponse converts a domain.Goal to its response DTO.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	return GoalResponse{
		GoalID:        g.GoalID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		CurrencyCode:  g.CurrencyCode,
		TargetDate:    g.TargetDate,
		Progress:      g.ProgressPercent(),
		Achieved:      g.Achieved(),
	}
}

// CreateSubscriptionRequest defines the data needed to track a subscription.
type CreateSubscriptionRequest struct {
	Name          string          `json:"name" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,currencycode"`
	Frequency     string          `json:"frequency" binding:"required,oneof=MONTHLY YEARLY"`
	NextBillingAt time.Time       `json:"nextBillingAt" binding:"required"`
}

// SubscriptionResponse defines the data returned for a subscription.
type SubscriptionResponse struct {
	SubscriptionID string          `json:"subscriptionID"`
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"`
	CurrencyCode   string          `json:"currencyCode"`
	Frequency      string          `json:"frequency"`
	NextBillingAt  time.Time       `json:"nextBillingAt"`
	Active         bool            `json:"active"`
	Due            bool            `json:"due"`
}

// ToSubscriptionResponse converts a domain.Subscription to its DTO, with
// due-ness evaluated at the given time.
func ToSubscriptionResponse(s *domain.Subscription, now time.Time) SubscriptionResponse {
	return SubscriptionResponse{
		SubscriptionID: s.SubscriptionID,
		Name:           s.Name,
		Amount:         s.Amount,
		CurrencyCode:   s.CurrencyCode,
		Frequency:      string(s.Frequency),
		NextBillingAt:  s.NextBillingAt,
		Active:         s.Active,
		Due:            s.DueBy(now),
	}
}
