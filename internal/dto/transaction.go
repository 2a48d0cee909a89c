package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/core/domain"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// The currency is taken from the referenced wallet; if a currency code is
// supplied it must match the wallet's or the request is rejected.
type CreateTransactionRequest struct {
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Type         string          `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	CategoryID   string          `json:"categoryID"`
	WalletID     string          `json:"walletID" binding:"required"`
	Note         string          `json:"note"`
	Date         time.Time       `json:"date"`
	CurrencyCode string          `json:"currencyCode" binding:"omitempty,currencycode"`
	Frequency    string          `json:"frequency" binding:"omitempty,oneof=ONCE DAILY WEEKLY MONTHLY YEARLY"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	CategoryID    string          `json:"categoryID"`
	CategoryName  string          `json:"categoryName"`
	WalletID      string          `json:"walletID"`
	Note          string          `json:"note"`
	Date          time.Time       `json:"date"`
	CurrencyCode  string          `json:"currencyCode"`
	Frequency     string          `json:"frequency"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to a DTO. The category
// name is resolved by the caller so dangling references can fall back.
func ToTransactionResponse(t *domain.Transaction, categoryName string) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		Amount:        t.Amount,
		Type:          string(t.Type),
		CategoryID:    t.CategoryID,
		CategoryName:  categoryName,
		WalletID:      t.WalletID,
		Note:          t.Note,
		Date:          t.Date,
		CurrencyCode:  t.CurrencyCode,
		Frequency:     string(t.Frequency),
		CreatedAt:     t.CreatedAt,
	}
}

// ListTransactionsFilter narrows a transaction listing.
type ListTransactionsFilter struct {
	WalletID   string `form:"walletID"`
	CategoryID string `form:"categoryID"`
	Type       string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
}
