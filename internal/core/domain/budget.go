package domain

import "github.com/shopspring/decimal"

// BudgetSeverity classifies how close spending is to the budget limit.
type BudgetSeverity string

const (
	BudgetNormal   BudgetSeverity = "NORMAL"
	BudgetWarning  BudgetSeverity = "WARNING"
	BudgetCritical BudgetSeverity = "CRITICAL"
)

// Severity thresholds, in percent. Fixed design constants.
const (
	budgetWarningThreshold  = 75
	budgetCriticalThreshold = 90
)

// Budget is a spending limit keyed by category; it has no identity of its
// own. Re-setting the budget for a category replaces the prior one. Amount
// must be positive so consumption percentages never divide by zero.
type Budget struct {
	CategoryID string          `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
	AuditFields
}

// ConsumedPercent returns how much of the budget the given spend consumes,
// clamped to 100.
func (b Budget) ConsumedPercent(spent decimal.Decimal) decimal.Decimal {
	pct := spent.Div(b.Amount).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return decimal.NewFromInt(100)
	}
	return pct
}

// SeverityFor classifies the given spend against the budget limit.
func (b Budget) SeverityFor(spent decimal.Decimal) BudgetSeverity {
	pct := b.ConsumedPercent(spent)
	switch {
	case pct.GreaterThanOrEqual(decimal.NewFromInt(budgetCriticalThreshold)):
		return BudgetCritical
	case pct.GreaterThanOrEqual(decimal.NewFromInt(budgetWarningThreshold)):
		return BudgetWarning
	default:
		return BudgetNormal
	}
}
