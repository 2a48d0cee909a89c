package domain

import "github.com/shopspring/decimal"

// CategorySpend is one line of a spending summary handed to the advisor.
type CategorySpend struct {
	CategoryName string          `json:"categoryName"`
	Spent        decimal.Decimal `json:"spent"`
}

// AdviceSummary is the condensed view of the user's finances passed to the
// AI advisor. It carries no identifiers, only aggregates.
type AdviceSummary struct {
	CurrencySymbol string          `json:"currencySymbol"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpense   decimal.Decimal `json:"totalExpense"`
	TopCategories  []CategorySpend `json:"topCategories"`
}
