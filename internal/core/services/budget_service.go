package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/dto"
)

// BudgetService provides business logic for budgets and their consumption.
type BudgetService struct {
	BaseService
	store *StateStore
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *StateStore) *BudgetService {
	return &BudgetService{store: store}
}

var _ portssvc.BudgetSvcFacade = (*BudgetService)(nil)

// SetBudget creates or replaces the budget for a category. Non-positive
// amounts are rejected here so consumption never divides by zero.
func (s *BudgetService) SetBudget(ctx context.Context, req dto.SetBudgetRequest) (*dto.BudgetStatusResponse, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: budget amount must be positive", apperrors.ErrValidation)
	}

	budget := domain.Budget{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		AuditFields: domain.NewAuditFields(time.Now()),
	}

	var resp *dto.BudgetStatusResponse
	err := s.store.Update(ctx, func(state *domain.AppState) error {
		if state.FindCategory(req.CategoryID) == nil {
			return fmt.Errorf("%w: category '%s' not found", apperrors.ErrValidation, req.CategoryID)
		}
		replaced := false
		for i := range state.Budgets {
			if state.Budgets[i].CategoryID == req.CategoryID {
				state.Budgets[i] = budget
				replaced = true
				break
			}
		}
		if !replaced {
			state.Budgets = append(state.Budgets, budget)
		}
		r := dto.ToBudgetStatusResponse(&budget, state.CategoryName(req.CategoryID), categorySpent(state, req.CategoryID))
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Budget set", "category_id", req.CategoryID, "amount", req.Amount.String())
	return resp, nil
}

// ListBudgetStatuses derives the consumption view for every budget.
func (s *BudgetService) ListBudgetStatuses(ctx context.Context) ([]dto.BudgetStatusResponse, error) {
	var out []dto.BudgetStatusResponse
	err := s.store.View(func(state *domain.AppState) error {
		out = make([]dto.BudgetStatusResponse, 0, len(state.Budgets))
		for i := range state.Budgets {
			b := &state.Budgets[i]
			out = append(out, dto.ToBudgetStatusResponse(b, state.CategoryName(b.CategoryID), categorySpent(state, b.CategoryID)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list budget statuses: %w", err)
	}
	return out, nil
}

// DeleteBudget removes the budget for a category.
func (s *BudgetService) DeleteBudget(ctx context.Context, categoryID string) error {
	err := s.store.Update(ctx, func(state *domain.AppState) error {
		for i := range state.Budgets {
			if state.Budgets[i].CategoryID == categoryID {
				state.Budgets = append(state.Budgets[:i], state.Budgets[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: no budget for category '%s'", apperrors.ErrNotFound, categoryID)
	})
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Budget deleted", "category_id", categoryID)
	return nil
}

// categorySpent sums expense transactions for the category in the display
// currency. No conversion: only the active display-currency subset counts
// towards a budget.
func categorySpent(state *domain.AppState, categoryID string) decimal.Decimal {
	display := state.Settings.DisplayCurrency
	spent := decimal.Zero
	for _, txn := range state.Transactions {
		if txn.CategoryID != categoryID || txn.Type != domain.Expense {
			continue
		}
		if txn.CurrencyCode != display {
			continue
		}
		spent = spent.Add(txn.Amount)
	}
	return spent
}
