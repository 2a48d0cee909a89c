package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/core/domain"
)

// CreateDebtRequest defines the data needed to record a debt.
type CreateDebtRequest struct {
	PersonName   string          `json:"personName" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Type         string          `json:"type" binding:"required,oneof=TO_ME ON_ME"`
	DueDate      *time.Time      `json:"dueDate"`
	Note         string          `json:"note"`
	CurrencyCode string          `json:"currencyCode" binding:"required,currencycode"`
}

// SettleDebtRequest names the wallet the settlement transaction lands in.
// The wallet must be denominated in the debt's currency.
type SettleDebtRequest struct {
	WalletID string `json:"walletID" binding:"required"`
}

// DebtResponse defines the data returned for a debt.
type DebtResponse struct {
	DebtID       string          `json:"debtID"`
	PersonName   string          `json:"personName"`
	Amount       decimal.Decimal `json:"amount"`
	Type         string          `json:"type"`
	DueDate      *time.Time      `json:"dueDate,omitempty"`
	IsPaid       bool            `json:"isPaid"`
	Note         string          `json:"note"`
	CurrencyCode string          `json:"currencyCode"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToDebtResponse converts a domain.Debt to its response DTO.
func ToDebtResponse(d *domain.Debt) DebtResponse {
	return DebtResponse{
		DebtID:       d.DebtID,
		PersonName:   d.PersonName,
		Amount:       d.Amount,
		Type:         string(d.Type),
		DueDate:      d.DueDate,
		IsPaid:       d.IsPaid,
		Note:         d.Note,
		CurrencyCode: d.CurrencyCode,
		CreatedAt:    d.CreatedAt,
	}
}

// SettlementResponse returns both sides of a completed settlement.
type SettlementResponse struct {
	Debt        DebtResponse        `json:"debt"`
	Transaction TransactionResponse `json:"transaction"`
}

// DebtTotalsResponse aggregates outstanding debts by direction, in the
// pivot currency.
type DebtTotalsResponse struct {
	OwedToMe decimal.Decimal `json:"owedToMe"`
	OwedByMe decimal.Decimal `json:"owedByMe"`
	Currency string          `json:"currency"`
}
