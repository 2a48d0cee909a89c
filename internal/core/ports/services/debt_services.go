package services

import (
	"context"

	"github.com/thariapp/thari_backend/internal/core/domain"
	"github.com/thariapp/thari_backend/internal/dto"
)

// DebtSvcFacade defines debt operations, including settlement.
type DebtSvcFacade interface {
	CreateDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error)
	ListDebts(ctx context.Context) ([]domain.Debt, error)
	DeleteDebt(ctx context.Context, debtID string) error

	// Settle marks the debt paid and appends the matching transaction in a
	// single state transition. The target wallet must be denominated in the
	// debt's currency.
	Settle(ctx context.Context, debtID, walletID string) (*dto.SettlementResponse, error)

	// OutstandingTotals sums unpaid debts by direction, converted to the
	// pivot currency.
	OutstandingTotals(ctx context.Context) (*dto.DebtTotalsResponse, error)
}
