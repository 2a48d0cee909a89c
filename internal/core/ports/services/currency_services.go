package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/core/domain"
	"github.com/thariapp/thari_backend/internal/dto"
)

// CurrencyReaderSvc defines read operations for currencies and rates.
type CurrencyReaderSvc interface {
	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// GetRate resolves the rate for a currency code (custom, then default,
	// then zero).
	GetRate(ctx context.Context, currencyCode string) (*dto.RateResponse, error)

	// Convert converts an amount between two currencies through the pivot.
	Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*dto.ConvertResponse, error)
}

// CurrencyWriterSvc defines write operations for currencies and rates.
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error)

	// SetRate stores a custom rate for the code. The request rate is entered
	// as "1 pivot = X foreign" and inverted before storage.
	SetRate(ctx context.Context, currencyCode string, req dto.SetRateRequest) (*dto.RateResponse, error)
}

// CurrencySvcFacade combines all currency-related service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
