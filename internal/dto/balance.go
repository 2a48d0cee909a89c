package dto

import "github.com/shopspring/decimal"

// CurrencyBucket is one currency's slice of the travel-mode view: native
// sums only, never converted.
type CurrencyBucket struct {
	CurrencyCode string          `json:"currencyCode"`
	Symbol       string          `json:"symbol"`
	Balance      decimal.Decimal `json:"balance"`
	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalExpense decimal.Decimal `json:"totalExpense"`
	WalletCount  int             `json:"walletCount"`
}

// BalanceSummaryResponse is the dashboard aggregate. In unified mode only
// the display-currency fields are populated; in travel mode Buckets carries
// every currency with a non-negligible balance.
type BalanceSummaryResponse struct {
	TravelMode      bool             `json:"travelMode"`
	DisplayCurrency string           `json:"displayCurrency,omitempty"`
	Balance         *decimal.Decimal `json:"balance,omitempty"`
	TotalIncome     *decimal.Decimal `json:"totalIncome,omitempty"`
	TotalExpense    *decimal.Decimal `json:"totalExpense,omitempty"`
	Buckets         []CurrencyBucket `json:"buckets,omitempty"`
}

// UpdateSettingsRequest changes the display preferences. Pointer fields are
// only applied when present.
type UpdateSettingsRequest struct {
	DisplayCurrency *string `json:"displayCurrency" binding:"omitempty,currencycode"`
	TravelMode      *bool   `json:"travelMode"`
	UserName        *string `json:"userName"`
}

// SettingsResponse mirrors the stored settings.
type SettingsResponse struct {
	UserName        string `json:"userName"`
	DisplayCurrency string `json:"displayCurrency"`
	TravelMode      bool   `json:"travelMode"`
	PINEnabled      bool   `json:"pinEnabled"`
}
