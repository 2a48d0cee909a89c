package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
	Symbol       string `json:"symbol" binding:"required"`
	Name         string `json:"name" binding:"required"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string    `json:"currencyCode"`
	Symbol       string    `json:"symbol"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToCurrencyResponse converts a domain.Currency to its response DTO.
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		Symbol:       curr.Symbol,
		Name:         curr.Name,
		CreatedAt:    curr.CreatedAt,
	}
}

// ToListCurrencyResponse converts a slice of currencies to response DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}

// SetRateRequest updates the exchange rate for a currency. The rate is
// entered the way users think about it: "1 pivot unit = Rate foreign units".
// It is inverted before storage.
type SetRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// RateResponse returns both directions of a currency's rate.
type RateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	RateToPivot  decimal.Decimal `json:"rateToPivot"`  // 1 unit of code in pivot units
	PivotPerUnit decimal.Decimal `json:"pivotPerUnit"` // 1 pivot unit in code units, zero when unconvertible
	Convertible  bool            `json:"convertible"`
}

// ConvertRequest asks for a currency conversion through the pivot.
type ConvertRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	FromCode string          `json:"fromCode" binding:"required,currencycode"`
	ToCode   string          `json:"toCode" binding:"required,currencycode"`
}

// ConvertResponse carries the conversion result. Converted is false when the
// engine fell back to returning the amount unconverted.
type ConvertResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	FromCode  string          `json:"fromCode"`
	ToCode    string          `json:"toCode"`
	Result    decimal.Decimal `json:"result"`
	Converted bool            `json:"converted"`
}
