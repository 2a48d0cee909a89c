package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal tracks saving towards a target amount.
type Goal struct {
	GoalID        string          `json:"goalID"` // Primary Key (UUID)
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"` // Positive value
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	CurrencyCode  string          `json:"currencyCode"`
	TargetDate    *time.Time      `json:"targetDate,omitempty"`
	AuditFields
}

// ProgressPercent returns how far along the goal is, clamped to 100.
func (g Goal) ProgressPercent() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	pct := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100)
	}
	return pct
}

// Achieved reports whether the goal target has been reached.
func (g Goal) Achieved() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}
