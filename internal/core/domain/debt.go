package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtType indicates the direction of a debt relative to the user.
type DebtType string

const (
	// DebtToMe means someone owes the user; settling it records an income.
	DebtToMe DebtType = "TO_ME"
	// DebtOnMe means the user owes someone; settling it records an expense.
	DebtOnMe DebtType = "ON_ME"
)

// Debt tracks money owed to or by the user. Lifecycle: created unpaid,
// optionally settled exactly once (IsPaid becomes true and a matching
// transaction is appended in the same state transition), never mutated
// afterwards. Deletable in any state.
type Debt struct {
	DebtID       string          `json:"debtID"` // Primary Key (UUID)
	PersonName   string          `json:"personName"`
	Amount       decimal.Decimal `json:"amount"` // Positive value
	Type         DebtType        `json:"type"`
	DueDate      *time.Time      `json:"dueDate,omitempty"`
	IsPaid       bool            `json:"isPaid"`
	Note         string          `json:"note"`
	CurrencyCode string          `json:"currencyCode"`
	AuditFields
}

// SettlementType returns the transaction type a settlement of this debt
// produces.
func (d Debt) SettlementType() TransactionType {
	if d.Type == DebtOnMe {
		return Expense
	}
	return Income
}
