package services

import (
	"context"

	"github.com/thariapp/thari_backend/internal/dto"
)

// BudgetSvcFacade defines budget operations. Setting a budget for a category
// that already has one replaces it; non-positive amounts are rejected.
type BudgetSvcFacade interface {
	SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*dto.BudgetStatusResponse, error)
	ListBudgetStatuses(ctx context.Context) ([]dto.BudgetStatusResponse, error)
	DeleteBudget(ctx context.Context, categoryID string) error
}
