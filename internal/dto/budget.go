package dto

import (
	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/core/domain"
)

// SetBudgetRequest creates or replaces the budget for a category.
type SetBudgetRequest struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// BudgetStatusResponse is a budget together with its derived consumption.
type BudgetStatusResponse struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
	Spent        decimal.Decimal `json:"spent"`
	Percentage   decimal.Decimal `json:"percentage"`
	Severity     string          `json:"severity"`
}

// ToBudgetStatusResponse derives the consumption view for one budget.
func ToBudgetStatusResponse(b *domain.Budget, categoryName string, spent decimal.Decimal) BudgetStatusResponse {
	return BudgetStatusResponse{
		CategoryID:   b.CategoryID,
		CategoryName: categoryName,
		Amount:       b.Amount,
		Spent:        spent,
		Percentage:   b.ConsumedPercent(spent),
		Severity:     string(b.SeverityFor(spent)),
	}
}
