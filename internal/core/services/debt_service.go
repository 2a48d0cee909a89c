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
	"github.com/thariapp/thari_backend/internal/core/fx"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/dto"
)

// DebtService provides business logic for debts and settlement.
type DebtService struct {
	BaseService
	store *StateStore
}

// NewDebtService creates a new DebtService.
func NewDebtService(store *StateStore) *DebtService {
	return &DebtService{store: store}
}

var _ portssvc.DebtSvcFacade = (*DebtService)(nil)

// CreateDebt records a new unpaid debt.
func (s *DebtService) CreateDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: debt amount must be positive", apperrors.ErrValidation)
	}

	debt := domain.Debt{
		DebtID:       uuid.NewString(),
		PersonName:   req.PersonName,
		Amount:       req.Amount,
		Type:         domain.DebtType(req.Type),
		DueDate:      req.DueDate,
		IsPaid:       false,
		Note:         req.Note,
		CurrencyCode: strings.ToUpper(req.CurrencyCode),
		AuditFields:  domain.NewAuditFields(time.Now()),
	}

	err := s.store.Update(ctx, func(state *domain.AppState) error {
		if state.FindCurrency(debt.CurrencyCode) == nil {
			return fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, debt.CurrencyCode)
		}
		state.Debts = append(state.Debts, debt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Debt recorded", "debt_id", debt.DebtID, "type", string(debt.Type), "amount", debt.Amount.String())
	return &debt, nil
}

// ListDebts retrieves all debts.
func (s *DebtService) ListDebts(ctx context.Context) ([]domain.Debt, error) {
	var debts []domain.Debt
	err := s.store.View(func(state *domain.AppState) error {
		debts = append([]domain.Debt{}, state.Debts...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list debts in service: %w", err)
	}
	return debts, nil
}

// DeleteDebt removes a debt in any state, paid or not.
func (s *DebtService) DeleteDebt(ctx context.Context, debtID string) error {
	err := s.store.Update(ctx, func(state *domain.AppState) error {
		for i := range state.Debts {
			if state.Debts[i].DebtID == debtID {
				state.Debts = append(state.Debts[:i], state.Debts[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: debt '%s'", apperrors.ErrNotFound, debtID)
	})
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Debt deleted", "debt_id", debtID)
	return nil
}

// Settle transitions a debt from unpaid to paid and appends the matching
// transaction dated now, both inside one state transition: there is never a
// state where the settlement transaction exists but the debt is still
// unpaid, or the reverse. Settling twice is rejected, and the target wallet
// must be denominated in the debt's currency so the spawned transaction
// cannot mix units into the wallet's balance.
func (s *DebtService) Settle(ctx context.Context, debtID, walletID string) (*dto.SettlementResponse, error) {
	var resp *dto.SettlementResponse
	err := s.store.Update(ctx, func(state *domain.AppState) error {
		debt := state.FindDebt(debtID)
		if debt == nil {
			return fmt.Errorf("%w: debt '%s'", apperrors.ErrNotFound, debtID)
		}
		if debt.IsPaid {
			return fmt.Errorf("%w: debt '%s' is already settled", apperrors.ErrConflict, debtID)
		}
		wallet := state.FindWallet(walletID)
		if wallet == nil {
			return fmt.Errorf("%w: wallet '%s' not found", apperrors.ErrValidation, walletID)
		}
		if wallet.CurrencyCode != debt.CurrencyCode {
			return fmt.Errorf("%w: wallet currency '%s' does not match debt currency '%s'",
				apperrors.ErrValidation, wallet.CurrencyCode, debt.CurrencyCode)
		}

		now := time.Now()
		txn := domain.Transaction{
			TransactionID: uuid.NewString(),
			Amount:        debt.Amount,
			Type:          debt.SettlementType(),
			WalletID:      walletID,
			Note:          fmt.Sprintf("Settlement: %s", debt.PersonName),
			Date:          now,
			CurrencyCode:  debt.CurrencyCode,
			Frequency:     domain.Once,
			AuditFields:   domain.NewAuditFields(now),
		}

		debt.IsPaid = true
		debt.LastUpdatedAt = now
		state.Transactions = append(state.Transactions, txn)

		resp = &dto.SettlementResponse{
			Debt:        dto.ToDebtResponse(debt),
			Transaction: dto.ToTransactionResponse(&txn, state.CategoryName(txn.CategoryID)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Debt settled", "debt_id", debtID, "wallet_id", walletID)
	return resp, nil
}

// OutstandingTotals sums unpaid debts by direction, converted to the pivot
// currency. Unconvertible currencies contribute their native amount, per the
// converter's fail-soft contract.
func (s *DebtService) OutstandingTotals(ctx context.Context) (*dto.DebtTotalsResponse, error) {
	var resp *dto.DebtTotalsResponse
	err := s.store.View(func(state *domain.AppState) error {
		rates := state.RateTable()
		toMe := decimal.Zero
		byMe := decimal.Zero
		for i := range state.Debts {
			d := &state.Debts[i]
			if d.IsPaid {
				continue
			}
			amount := fx.ToPivot(d.Amount, d.CurrencyCode, rates)
			if d.Type == domain.DebtToMe {
				toMe = toMe.Add(amount)
			} else {
				byMe = byMe.Add(amount)
			}
		}
		resp = &dto.DebtTotalsResponse{OwedToMe: toMe, OwedByMe: byMe, Currency: fx.PivotCurrency}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute debt totals: %w", err)
	}
	return resp, nil
}
