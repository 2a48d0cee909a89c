package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/dto"
)

// negligibleBalance is the per-wallet threshold in travel mode: a currency
// bucket is shown when at least one of its wallets meets it.
var negligibleBalance = decimal.RequireFromString("0.01")

// BalanceService produces the dashboard aggregates. Neither mode converts
// currencies: the unified view filters to the display currency, travel mode
// shows native buckets side by side. Pivoted totals live in the report
// service only.
type BalanceService struct {
	BaseService
	store *StateStore
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(store *StateStore) *BalanceService {
	return &BalanceService{store: store}
}

var _ portssvc.BalanceSvcFacade = (*BalanceService)(nil)

// Summary computes the dashboard aggregate for the current settings.
func (s *BalanceService) Summary(ctx context.Context) (*dto.BalanceSummaryResponse, error) {
	var resp *dto.BalanceSummaryResponse
	err := s.store.View(func(state *domain.AppState) error {
		if state.Settings.TravelMode {
			resp = travelSummary(state)
		} else {
			resp = unifiedSummary(state)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance summary: %w", err)
	}
	return resp, nil
}

// unifiedSummary sums only the wallets and transactions matching the
// selected display currency. Cross-currency unification is deliberately not
// automatic here.
func unifiedSummary(state *domain.AppState) *dto.BalanceSummaryResponse {
	display := state.Settings.DisplayCurrency

	balance := decimal.Zero
	for i := range state.Wallets {
		if state.Wallets[i].CurrencyCode == display {
			balance = balance.Add(state.WalletBalance(state.Wallets[i].WalletID))
		}
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, txn := range state.Transactions {
		if txn.CurrencyCode != display {
			continue
		}
		switch txn.Type {
		case domain.Income:
			income = income.Add(txn.Amount)
		case domain.Expense:
			expense = expense.Add(txn.Amount)
		}
	}

	return &dto.BalanceSummaryResponse{
		TravelMode:      false,
		DisplayCurrency: display,
		Balance:         &balance,
		TotalIncome:     &income,
		TotalExpense:    &expense,
	}
}

// travelSummary shows a currency as an independent bucket when at least one
// of its wallets holds a non-negligible balance, native sums only. The
// per-wallet test matters: two offsetting wallets still represent money the
// user is carrying, even though their sum is zero.
func travelSummary(state *domain.AppState) *dto.BalanceSummaryResponse {
	type bucket struct {
		balance     decimal.Decimal
		income      decimal.Decimal
		expense     decimal.Decimal
		walletCount int
		material    bool
	}
	buckets := map[string]*bucket{}

	for i := range state.Wallets {
		w := &state.Wallets[i]
		b, ok := buckets[w.CurrencyCode]
		if !ok {
			b = &bucket{balance: decimal.Zero, income: decimal.Zero, expense: decimal.Zero}
			buckets[w.CurrencyCode] = b
		}
		walletBalance := state.WalletBalance(w.WalletID)
		if walletBalance.Abs().GreaterThanOrEqual(negligibleBalance) {
			b.material = true
		}
		b.balance = b.balance.Add(walletBalance)
		b.walletCount++
	}
	for _, txn := range state.Transactions {
		b, ok := buckets[txn.CurrencyCode]
		if !ok {
			continue
		}
		switch txn.Type {
		case domain.Income:
			b.income = b.income.Add(txn.Amount)
		case domain.Expense:
			b.expense = b.expense.Add(txn.Amount)
		}
	}

	codes := make([]string, 0, len(buckets))
	for code, b := range buckets {
		if b.material {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)

	out := make([]dto.CurrencyBucket, 0, len(codes))
	for _, code := range codes {
		b := buckets[code]
		symbol := code
		if c := state.FindCurrency(code); c != nil {
			symbol = c.Symbol
		}
		out = append(out, dto.CurrencyBucket{
			CurrencyCode: code,
			Symbol:       symbol,
			Balance:      b.balance,
			TotalIncome:  b.income,
			TotalExpense: b.expense,
			WalletCount:  b.walletCount,
		})
	}

	return &dto.BalanceSummaryResponse{TravelMode: true, Buckets: out}
}

// GetSettings returns the stored display settings.
func (s *BalanceService) GetSettings(ctx context.Context) (*dto.SettingsResponse, error) {
	var resp *dto.SettingsResponse
	err := s.store.View(func(state *domain.AppState) error {
		resp = settingsResponse(state)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return resp, nil
}

// UpdateSettings applies the present fields of the request. The display
// currency must reference an existing currency.
func (s *BalanceService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	var resp *dto.SettingsResponse
	err := s.store.Update(ctx, func(state *domain.AppState) error {
		if req.DisplayCurrency != nil {
			if state.FindCurrency(*req.DisplayCurrency) == nil {
				return fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, *req.DisplayCurrency)
			}
			state.Settings.DisplayCurrency = *req.DisplayCurrency
		}
		if req.TravelMode != nil {
			state.Settings.TravelMode = *req.TravelMode
		}
		if req.UserName != nil {
			state.UserName = *req.UserName
		}
		resp = settingsResponse(state)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Settings updated")
	return resp, nil
}

func settingsResponse(state *domain.AppState) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		UserName:        state.UserName,
		DisplayCurrency: state.Settings.DisplayCurrency,
		TravelMode:      state.Settings.TravelMode,
		PINEnabled:      state.Settings.PINHash != "",
	}
}
