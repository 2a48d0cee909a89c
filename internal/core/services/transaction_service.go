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

// TransactionService provides business logic for the transaction log.
type TransactionService struct {
	BaseService
	store *StateStore
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *StateStore) *TransactionService {
	return &TransactionService{store: store}
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)

// CreateTransaction appends a transaction to the log. The transaction's
// currency always equals the referenced wallet's currency: it is filled in
// from the wallet when omitted, and a mismatching explicit code is rejected
// so wallet balances never mix units.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: transaction amount must be positive", apperrors.ErrValidation)
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	frequency := domain.Frequency(req.Frequency)
	if frequency == "" {
		frequency = domain.Once
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        req.Amount,
		Type:          domain.TransactionType(req.Type),
		CategoryID:    req.CategoryID,
		WalletID:      req.WalletID,
		Note:          req.Note,
		Date:          date,
		Frequency:     frequency,
		AuditFields:   domain.NewAuditFields(time.Now()),
	}

	var categoryName string
	err := s.store.Update(ctx, func(state *domain.AppState) error {
		wallet := state.FindWallet(req.WalletID)
		if wallet == nil {
			return fmt.Errorf("%w: wallet '%s' not found", apperrors.ErrValidation, req.WalletID)
		}
		if req.CurrencyCode != "" && strings.ToUpper(req.CurrencyCode) != wallet.CurrencyCode {
			return fmt.Errorf("%w: transaction currency '%s' does not match wallet currency '%s'",
				apperrors.ErrValidation, strings.ToUpper(req.CurrencyCode), wallet.CurrencyCode)
		}
		txn.CurrencyCode = wallet.CurrencyCode
		categoryName = state.CategoryName(txn.CategoryID)
		state.Transactions = append(state.Transactions, txn)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transaction recorded",
		"transaction_id", txn.TransactionID,
		"wallet_id", txn.WalletID,
		"type", string(txn.Type),
		"amount", txn.Amount.String(),
	)
	resp := dto.ToTransactionResponse(&txn, categoryName)
	return &resp, nil
}

// ListTransactions retrieves transactions, optionally narrowed by wallet,
// category or type. Dangling category references resolve to the fallback
// label rather than erroring.
func (s *TransactionService) ListTransactions(ctx context.Context, filter dto.ListTransactionsFilter) ([]dto.TransactionResponse, error) {
	var out []dto.TransactionResponse
	err := s.store.View(func(state *domain.AppState) error {
		out = make([]dto.TransactionResponse, 0, len(state.Transactions))
		for i := range state.Transactions {
			txn := &state.Transactions[i]
			if filter.WalletID != "" && txn.WalletID != filter.WalletID {
				continue
			}
			if filter.CategoryID != "" && txn.CategoryID != filter.CategoryID {
				continue
			}
			if filter.Type != "" && string(txn.Type) != filter.Type {
				continue
			}
			out = append(out, dto.ToTransactionResponse(txn, state.CategoryName(txn.CategoryID)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	return out, nil
}

// DeleteTransaction removes a transaction from the log. Derived balances
// reflect the deletion immediately since they are recomputed on every read.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	err := s.store.Update(ctx, func(state *domain.AppState) error {
		for i := range state.Transactions {
			if state.Transactions[i].TransactionID == transactionID {
				state.Transactions = append(state.Transactions[:i], state.Transactions[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: transaction '%s'", apperrors.ErrNotFound, transactionID)
	})
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", "transaction_id", transactionID)
	return nil
}
