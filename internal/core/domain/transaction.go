package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction adds to or subtracts from
// a wallet's balance.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Frequency describes how often a transaction or subscription recurs.
type Frequency string

const (
	Once    Frequency = "ONCE"
	Daily   Frequency = "DAILY"
	Weekly  Frequency = "WEEKLY"
	Monthly Frequency = "MONTHLY"
	Yearly  Frequency = "YEARLY"
)

// Transaction is a single entry in the append-only log. Amount is always
// positive; the sign applied during aggregation comes from Type.
// CurrencyCode always equals the currency of the referenced wallet; this is
// enforced at creation time so per-wallet balances never mix units.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Amount        decimal.Decimal `json:"amount"`        // Positive value
	Type          TransactionType `json:"type"`
	CategoryID    string          `json:"categoryID"` // FK -> Category.categoryID
	WalletID      string          `json:"walletID"`   // FK -> Wallet.walletID
	Note          string          `json:"note"`
	Date          time.Time       `json:"date"` // Calendar date, day precision
	CurrencyCode  string          `json:"currencyCode"`
	Frequency     Frequency       `json:"frequency"`
	AuditFields
}

// SignedAmount returns the amount with the sign implied by the transaction
// type: positive for income, negative for expense.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}
