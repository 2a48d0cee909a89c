package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	"github.com/thariapp/thari_backend/internal/core/fx"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/dto"
)

// CurrencyService provides business logic for currencies, rates and
// conversion.
type CurrencyService struct {
	BaseService
	store *StateStore
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(store *StateStore) *CurrencyService {
	return &CurrencyService{store: store}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

// ListCurrencies retrieves all available currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var currencies []domain.Currency
	err := s.store.View(func(state *domain.AppState) error {
		currencies = append([]domain.Currency{}, state.Currencies...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	return currencies, nil
}

// CreateCurrency persists a new currency. Codes are unique.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	code := strings.ToUpper(req.CurrencyCode)

	currency := domain.Currency{
		CurrencyCode: code,
		Symbol:       req.Symbol,
		Name:         req.Name,
		AuditFields:  domain.NewAuditFields(time.Now()),
	}

	err := s.store.Update(ctx, func(state *domain.AppState) error {
		if state.FindCurrency(code) != nil {
			return fmt.Errorf("%w: currency code '%s'", apperrors.ErrDuplicate, code)
		}
		state.Currencies = append(state.Currencies, currency)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Currency created", "currency_code", code)
	return &currency, nil
}

// GetRate resolves the rate for a currency code: the stored custom rate if
// present, else the built-in default, else zero (unconvertible).
func (s *CurrencyService) GetRate(ctx context.Context, currencyCode string) (*dto.RateResponse, error) {
	code := strings.ToUpper(currencyCode)
	if len(code) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	var resp *dto.RateResponse
	err := s.store.View(func(state *domain.AppState) error {
		resp = rateResponse(code, state.RateTable())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get rate in service: %w", err)
	}
	return resp, nil
}

// SetRate stores a custom rate for the code. Users enter rates as "1 pivot
// unit = X foreign units"; the stored direction is the inverse (1 unit of
// code = 1/X pivot units), and that direction must be preserved everywhere.
func (s *CurrencyService) SetRate(ctx context.Context, currencyCode string, req dto.SetRateRequest) (*dto.RateResponse, error) {
	code := strings.ToUpper(currencyCode)
	if code == fx.PivotCurrency {
		return nil, fmt.Errorf("%w: the pivot currency rate is fixed at 1", apperrors.ErrValidation)
	}
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}

	internal := decimal.NewFromInt(1).Div(req.Rate)

	var resp *dto.RateResponse
	err := s.store.Update(ctx, func(state *domain.AppState) error {
		if state.FindCurrency(code) == nil {
			return fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrNotFound, code)
		}
		if state.Settings.CustomRates == nil {
			state.Settings.CustomRates = map[string]decimal.Decimal{}
		}
		state.Settings.CustomRates[code] = internal
		resp = rateResponse(code, state.RateTable())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rate updated", "currency_code", code, "rate_to_pivot", internal.String())
	return resp, nil
}

// Convert converts an amount between two currencies through the pivot.
// Unconvertible codes degrade to returning the amount unchanged, flagged in
// the response.
func (s *CurrencyService) Convert(ctx context.Context, amount decimal.Decimal, fromCode, toCode string) (*dto.ConvertResponse, error) {
	from := strings.ToUpper(fromCode)
	to := strings.ToUpper(toCode)

	var resp *dto.ConvertResponse
	err := s.store.View(func(state *domain.AppState) error {
		rates := state.RateTable()
		result := fx.Convert(amount, from, to, rates)
		converted := from == to || (rates.Convertible(from) && rates.Convertible(to))
		resp = &dto.ConvertResponse{
			Amount:    amount,
			FromCode:  from,
			ToCode:    to,
			Result:    result,
			Converted: converted,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to convert in service: %w", err)
	}
	return resp, nil
}

func rateResponse(code string, rates fx.RateTable) *dto.RateResponse {
	toPivot := rates.Rate(code)
	perUnit := decimal.Zero
	if !toPivot.IsZero() {
		perUnit = decimal.NewFromInt(1).Div(toPivot)
	}
	return &dto.RateResponse{
		CurrencyCode: code,
		RateToPivot:  toPivot,
		PivotPerUnit: perUnit,
		Convertible:  !toPivot.IsZero(),
	}
}
