package dto

import "github.com/shopspring/decimal"

// ReportLine is one wallet's contribution to the financial report, shown in
// both its native currency and converted to the report currency.
type ReportLine struct {
	WalletID        string          `json:"walletID"`
	WalletName      string          `json:"walletName"`
	CurrencyCode    string          `json:"currencyCode"`
	NativeBalance   decimal.Decimal `json:"nativeBalance"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Converted       bool            `json:"converted"`
}

// CategoryReportLine is one category's expense total in the report currency.
type CategoryReportLine struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Spent        decimal.Decimal `json:"spent"`
}

// FinancialReportResponse is the only view that produces a single pivoted
// total. Live dashboard balances stay same-currency sums.
type FinancialReportResponse struct {
	ReportCurrency string               `json:"reportCurrency"`
	TotalBalance   decimal.Decimal      `json:"totalBalance"`
	TotalIncome    decimal.Decimal      `json:"totalIncome"`
	TotalExpense   decimal.Decimal      `json:"totalExpense"`
	Wallets        []ReportLine         `json:"wallets"`
	Categories     []CategoryReportLine `json:"categories"`
}

// ZakatRequest asks for a nisab/zakat computation from the current gold
// price per gram in the given currency.
type ZakatRequest struct {
	GoldGramPrice decimal.Decimal `json:"goldGramPrice" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,currencycode"`
}

// ZakatResponse reports the nisab threshold and the levy due, if any.
type ZakatResponse struct {
	CurrencyCode   string          `json:"currencyCode"`
	Nisab          decimal.Decimal `json:"nisab"`
	EligibleAssets decimal.Decimal `json:"eligibleAssets"`
	AboveNisab     bool            `json:"aboveNisab"`
	ZakatDue       decimal.Decimal `json:"zakatDue"`
}
