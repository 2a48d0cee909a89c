package domain

// Wallet is a named, single-currency sub-account. Its balance is never
// stored; it is the signed sum of the transactions referencing it. The
// currency is fixed for the wallet's lifetime once transactions exist
// against it.
type Wallet struct {
	WalletID     string `json:"walletID"` // Primary Key (UUID)
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"` // FK -> Currency.currencyCode
	Color        string `json:"color"`
	AuditFields
}
