package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/thariapp/thari_backend/internal/core/domain"
)

func TestBudget_ConsumedPercentClamped(t *testing.T) {
	b := domain.Budget{CategoryID: "cat-food", Amount: decimal.NewFromInt(100)}

	pct := b.ConsumedPercent(decimal.NewFromInt(150))
	assert.True(t, decimal.NewFromInt(100).Equal(pct), "percentage is clamped at 100, got %s", pct)

	pct = b.ConsumedPercent(decimal.NewFromInt(50))
	assert.True(t, decimal.NewFromInt(50).Equal(pct))
}

func TestBudget_Severity(t *testing.T) {
	b := domain.Budget{CategoryID: "cat-food", Amount: decimal.NewFromInt(100)}

	tests := []struct {
		spent string
		want  domain.BudgetSeverity
	}{
		{"0", domain.BudgetNormal},
		{"74.99", domain.BudgetNormal},
		{"75", domain.BudgetWarning},
		{"89.99", domain.BudgetWarning},
		{"90", domain.BudgetCritical},
		{"150", domain.BudgetCritical},
	}
	for _, tc := range tests {
		got := b.SeverityFor(decimal.RequireFromString(tc.spent))
		assert.Equal(t, tc.want, got, "spent=%s", tc.spent)
	}
}

func TestCategoryIcon_LabelFallback(t *testing.T) {
	assert.Equal(t, "Transport", domain.IconTransport.Label())
	assert.Equal(t, domain.IconOther.Label(), domain.CategoryIcon("BOGUS").Label())
	assert.False(t, domain.CategoryIcon("BOGUS").Valid())
	assert.True(t, domain.IconFood.Valid())
}

func TestDebt_SettlementType(t *testing.T) {
	assert.Equal(t, domain.Expense, domain.Debt{Type: domain.DebtOnMe}.SettlementType())
	assert.Equal(t, domain.Income, domain.Debt{Type: domain.DebtToMe}.SettlementType())
}
