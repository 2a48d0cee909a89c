package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/core/fx"
)

// Settings holds per-user preferences that shape the derived views.
type Settings struct {
	// DisplayCurrency is the currency the unified dashboard is filtered to.
	DisplayCurrency string `json:"displayCurrency"`
	// TravelMode shows every currency bucket side by side instead of the
	// unified single-currency view.
	TravelMode bool `json:"travelMode"`
	// CustomRates overrides the built-in pivot rates, keyed by currency
	// code, expressed as "1 unit of code = rate pivot units".
	CustomRates map[string]decimal.Decimal `json:"customRates,omitempty"`
	// PINHash is the bcrypt hash of the lock PIN; empty means no lock.
	PINHash string `json:"pinHash,omitempty"`
}

// AppState is the single source-of-truth document. Every collection is owned
// by this document; entities reference each other by code/id only, never by
// embedding, so deletions do not cascade. All mutations happen as whole
// document transitions.
type AppState struct {
	UserName      string         `json:"userName"`
	Settings      Settings       `json:"settings"`
	Currencies    []Currency     `json:"currencies"`
	Wallets       []Wallet       `json:"wallets"`
	Categories    []Category     `json:"categories"`
	Transactions  []Transaction  `json:"transactions"`
	Debts         []Debt         `json:"debts"`
	Budgets       []Budget       `json:"budgets"`
	Goals         []Goal         `json:"goals"`
	Subscriptions []Subscription `json:"subscriptions"`
}

// NewDefaultState builds the fresh state used when no prior document exists:
// seeded currencies, one pivot-currency cash wallet, default categories and
// empty logs.
func NewDefaultState(now time.Time) *AppState {
	audit := NewAuditFields(now)
	return &AppState{
		Settings: Settings{DisplayCurrency: fx.PivotCurrency},
		Currencies: []Currency{
			{CurrencyCode: "SAR", Symbol: "ر.س", Name: "Saudi Riyal", AuditFields: audit},
			{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", AuditFields: audit},
			{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", AuditFields: audit},
			{CurrencyCode: "GBP", Symbol: "£", Name: "Pound Sterling", AuditFields: audit},
			{CurrencyCode: "AED", Symbol: "د.إ", Name: "UAE Dirham", AuditFields: audit},
			{CurrencyCode: "KWD", Symbol: "د.ك", Name: "Kuwaiti Dinar", AuditFields: audit},
			{CurrencyCode: "EGP", Symbol: "ج.م", Name: "Egyptian Pound", AuditFields: audit},
		},
		Wallets: []Wallet{
			{WalletID: "wallet-cash", Name: "Cash", CurrencyCode: fx.PivotCurrency, Color: "#2E7D32", AuditFields: audit},
		},
		Categories: []Category{
			{CategoryID: "cat-food", Name: "Food & Drink", Icon: IconFood, AuditFields: audit},
			{CategoryID: "cat-transport", Name: "Transport", Icon: IconTransport, AuditFields: audit},
			{CategoryID: "cat-shopping", Name: "Shopping", Icon: IconShopping, AuditFields: audit},
			{CategoryID: "cat-bills", Name: "Bills & Utilities", Icon: IconBills, AuditFields: audit},
			{CategoryID: "cat-health", Name: "Health", Icon: IconHealth, AuditFields: audit},
			{CategoryID: "cat-entertainment", Name: "Entertainment", Icon: IconEntertainment, AuditFields: audit},
			{CategoryID: "cat-salary", Name: "Salary", Icon: IconSalary, AuditFields: audit},
			{CategoryID: "cat-other", Name: "Other", Icon: IconOther, AuditFields: audit},
		},
		Transactions:  []Transaction{},
		Debts:         []Debt{},
		Budgets:       []Budget{},
		Goals:         []Goal{},
		Subscriptions: []Subscription{},
	}
}

// RateTable builds the conversion table for this state, layering the user's
// custom rates over the built-in defaults.
func (s *AppState) RateTable() fx.RateTable {
	return fx.NewRateTable(s.Settings.CustomRates)
}

// FindCurrency returns the currency with the given code, or nil.
func (s *AppState) FindCurrency(code string) *Currency {
	for i := range s.Currencies {
		if s.Currencies[i].CurrencyCode == code {
			return &s.Currencies[i]
		}
	}
	return nil
}

// FindWallet returns the wallet with the given id, or nil.
func (s *AppState) FindWallet(walletID string) *Wallet {
	for i := range s.Wallets {
		if s.Wallets[i].WalletID == walletID {
			return &s.Wallets[i]
		}
	}
	return nil
}

// FindCategory returns the category with the given id, or nil.
func (s *AppState) FindCategory(categoryID string) *Category {
	for i := range s.Categories {
		if s.Categories[i].CategoryID == categoryID {
			return &s.Categories[i]
		}
	}
	return nil
}

// CategoryName resolves a category id to its display name, falling back to
// the unclassified label when the reference is dangling.
func (s *AppState) CategoryName(categoryID string) string {
	if c := s.FindCategory(categoryID); c != nil {
		return c.Name
	}
	return FallbackCategoryName
}

// FindDebt returns the debt with the given id, or nil.
func (s *AppState) FindDebt(debtID string) *Debt {
	for i := range s.Debts {
		if s.Debts[i].DebtID == debtID {
			return &s.Debts[i]
		}
	}
	return nil
}

// WalletBalance recomputes the wallet's balance from the transaction log.
// There is no retained state between calls: an empty log yields zero and a
// deleted transaction simply stops contributing.
func (s *AppState) WalletBalance(walletID string) decimal.Decimal {
	balance := decimal.Zero
	for _, txn := range s.Transactions {
		if txn.WalletID == walletID {
			balance = balance.Add(txn.SignedAmount())
		}
	}
	return balance
}

// Clone returns a deep copy of the state via a JSON round trip. Mutating the
// copy and swapping it in keeps every transition all-or-nothing.
func (s *AppState) Clone() (*AppState, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state for clone: %w", err)
	}
	var out AppState
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state clone: %w", err)
	}
	return &out, nil
}
