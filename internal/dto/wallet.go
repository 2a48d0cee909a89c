package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/core/domain"
)

// CreateWalletRequest defines the data needed to create a new wallet.
type CreateWalletRequest struct {
	Name         string `json:"name" binding:"required"`
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
	Color        string `json:"color"`
}

// WalletResponse defines the data returned for a wallet, including its
// recomputed balance in the wallet's native currency.
type WalletResponse struct {
	WalletID     string          `json:"walletID"`
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currencyCode"`
	Color        string          `json:"color"`
	Balance      decimal.Decimal `json:"balance"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToWalletResponse converts a domain.Wallet plus its balance to a DTO.
func ToWalletResponse(w *domain.Wallet, balance decimal.Decimal) WalletResponse {
	return WalletResponse{
		WalletID:     w.WalletID,
		Name:         w.Name,
		CurrencyCode: w.CurrencyCode,
		Color:        w.Color,
		Balance:      balance,
		CreatedAt:    w.CreatedAt,
	}
}
