package fx

import "github.com/shopspring/decimal"

// Convert converts amount from one currency to another by routing through
// the pivot currency: amount * rate(from) / rate(to).
//
// Same-code conversions return the amount untouched, with no rounding drift.
// If either rate resolves to zero (unknown code or explicitly zeroed) the
// division is never attempted and the original amount is returned unchanged,
// so callers never see an infinity or a failed division in a report.
func Convert(amount decimal.Decimal, fromCode, toCode string, rates RateTable) decimal.Decimal {
	if fromCode == toCode {
		return amount
	}
	fromRate := rates.Rate(fromCode)
	toRate := rates.Rate(toCode)
	if fromRate.IsZero() || toRate.IsZero() {
		return amount
	}
	return amount.Mul(fromRate).Div(toRate)
}

// ToPivot converts amount from the given currency into the pivot currency.
// It degrades the same way Convert does when the rate is unknown.
func ToPivot(amount decimal.Decimal, fromCode string, rates RateTable) decimal.Decimal {
	return Convert(amount, fromCode, PivotCurrency, rates)
}
