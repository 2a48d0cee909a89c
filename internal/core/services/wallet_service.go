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

// WalletService provides business logic for wallets. Balances are always
// recomputed from the transaction log, never stored.
type WalletService struct {
	BaseService
	store *StateStore
}

// NewWalletService creates a new WalletService.
func NewWalletService(store *StateStore) *WalletService {
	return &WalletService{store: store}
}

var _ portssvc.WalletSvcFacade = (*WalletService)(nil)

// CreateWallet persists a new wallet denominated in an existing currency.
// The currency is fixed for the wallet's lifetime.
func (s *WalletService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*dto.WalletResponse, error) {
	code := strings.ToUpper(req.CurrencyCode)

	wallet := domain.Wallet{
		WalletID:     uuid.NewString(),
		Name:         req.Name,
		CurrencyCode: code,
		Color:        req.Color,
		AuditFields:  domain.NewAuditFields(time.Now()),
	}

	err := s.store.Update(ctx, func(state *domain.AppState) error {
		if state.FindCurrency(code) == nil {
			return fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, code)
		}
		state.Wallets = append(state.Wallets, wallet)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Wallet created", "wallet_id", wallet.WalletID, "currency_code", code)
	resp := dto.ToWalletResponse(&wallet, decimal.Zero)
	return &resp, nil
}

// GetWallet retrieves a wallet with its recomputed balance.
func (s *WalletService) GetWallet(ctx context.Context, walletID string) (*dto.WalletResponse, error) {
	var resp *dto.WalletResponse
	err := s.store.View(func(state *domain.AppState) error {
		wallet := state.FindWallet(walletID)
		if wallet == nil {
			return fmt.Errorf("%w: wallet '%s'", apperrors.ErrNotFound, walletID)
		}
		r := dto.ToWalletResponse(wallet, state.WalletBalance(walletID))
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListWallets retrieves all wallets with recomputed balances.
func (s *WalletService) ListWallets(ctx context.Context) ([]dto.WalletResponse, error) {
	var wallets []dto.WalletResponse
	err := s.store.View(func(state *domain.AppState) error {
		wallets = make([]dto.WalletResponse, 0, len(state.Wallets))
		for i := range state.Wallets {
			w := &state.Wallets[i]
			wallets = append(wallets, dto.ToWalletResponse(w, state.WalletBalance(w.WalletID)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets in service: %w", err)
	}
	return wallets, nil
}

// DeleteWallet removes a wallet. Transactions referencing it are left in
// the log as dangling references; aggregations simply stop matching them.
func (s *WalletService) DeleteWallet(ctx context.Context, walletID string) error {
	err := s.store.Update(ctx, func(state *domain.AppState) error {
		for i := range state.Wallets {
			if state.Wallets[i].WalletID == walletID {
				state.Wallets = append(state.Wallets[:i], state.Wallets[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: wallet '%s'", apperrors.ErrNotFound, walletID)
	})
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Wallet deleted", "wallet_id", walletID)
	return nil
}
