package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Subscription is a periodically billed commitment.
type Subscription struct {
	SubscriptionID string          `json:"subscriptionID"` // Primary Key (UUID)
	Name           string          `json:"name"`
	Amount         decimal.Decimal `json:"amount"` // Positive value
	CurrencyCode   string          `json:"currencyCode"`
	Frequency      Frequency       `json:"frequency"` // MONTHLY or YEARLY
	NextBillingAt  time.Time       `json:"nextBillingAt"`
	Active         bool            `json:"active"`
	AuditFields
}

// DueBy reports whether the subscription bills on or before the given time.
func (s Subscription) DueBy(t time.Time) bool {
	return s.Active && !s.NextBillingAt.After(t)
}

// Advance moves the next billing date forward one period. Unknown
// frequencies default to monthly.
func (s *Subscription) Advance() {
	switch s.Frequency {
	case Yearly:
		s.NextBillingAt = s.NextBillingAt.AddDate(1, 0, 0)
	default:
		s.NextBillingAt = s.NextBillingAt.AddDate(0, 1, 0)
	}
}
