package fx

import "github.com/shopspring/decimal"

// PivotCurrency is the fixed reference currency through which all
// cross-currency conversions are routed. Its rate is 1.0 by definition.
const PivotCurrency = "SAR"

// defaultRates maps a currency code to its built-in rate, expressed as
// "1 unit of code = rate units of the pivot currency".
var defaultRates = map[string]decimal.Decimal{
	"SAR": decimal.NewFromInt(1),
	"USD": decimal.RequireFromString("3.75"),
	"EUR": decimal.RequireFromString("4.05"),
	"GBP": decimal.RequireFromString("4.75"),
	"KWD": decimal.RequireFromString("12.20"),
	"BHD": decimal.RequireFromString("9.95"),
	"OMR": decimal.RequireFromString("9.74"),
	"QAR": decimal.RequireFromString("1.03"),
	"AED": decimal.RequireFromString("1.02"),
	"JOD": decimal.RequireFromString("5.29"),
	"EGP": decimal.RequireFromString("0.077"),
	"TRY": decimal.RequireFromString("0.091"),
	"INR": decimal.RequireFromString("0.043"),
	"PKR": decimal.RequireFromString("0.013"),
	"JPY": decimal.RequireFromString("0.025"),
}

// RateTable resolves the rate of a currency code relative to the pivot.
// Custom rates take precedence over the built-in defaults; an unknown code
// resolves to zero, which the converter treats as "unconvertible".
type RateTable struct {
	custom map[string]decimal.Decimal
}

// NewRateTable creates a RateTable layering the given custom rates over the
// built-in defaults. A nil map is valid and yields the defaults only.
func NewRateTable(custom map[string]decimal.Decimal) RateTable {
	return RateTable{custom: custom}
}

// Rate returns the stored custom rate for code if present, else the built-in
// default, else zero.
func (t RateTable) Rate(code string) decimal.Decimal {
	if r, ok := t.custom[code]; ok {
		return r
	}
	if r, ok := defaultRates[code]; ok {
		return r
	}
	return decimal.Zero
}

// Convertible reports whether code resolves to a usable (non-zero) rate.
func (t RateTable) Convertible(code string) bool {
	return !t.Rate(code).IsZero()
}

// DefaultRate returns the built-in rate for code and whether one exists.
func DefaultRate(code string) (decimal.Decimal, bool) {
	r, ok := defaultRates[code]
	return r, ok
}
