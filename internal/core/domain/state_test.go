package domain_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thariapp/thari_backend/internal/core/domain"
	"github.com/thariapp/thari_backend/internal/core/fx"
)

func txn(walletID string, typ domain.TransactionType, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID: walletID + "-" + amount,
		WalletID:      walletID,
		Type:          typ,
		Amount:        decimal.RequireFromString(amount),
	}
}

func TestWalletBalance_EmptyLog(t *testing.T) {
	state := domain.NewDefaultState(time.Now())

	assert.True(t, state.WalletBalance("wallet-cash").IsZero())
	assert.True(t, state.WalletBalance("no-such-wallet").IsZero())
}

func TestWalletBalance_SignedSum(t *testing.T) {
	state := domain.NewDefaultState(time.Now())
	state.Transactions = []domain.Transaction{
		txn("w1", domain.Income, "100"),
		txn("w1", domain.Expense, "40"),
		txn("w2", domain.Income, "999"),
	}

	assert.True(t, decimal.RequireFromString("60").Equal(state.WalletBalance("w1")))
	assert.True(t, decimal.RequireFromString("999").Equal(state.WalletBalance("w2")))
}

func TestWalletBalance_OrderIndependent(t *testing.T) {
	state := domain.NewDefaultState(time.Now())
	state.Transactions = []domain.Transaction{
		txn("w1", domain.Income, "10.50"),
		txn("w1", domain.Expense, "3.25"),
		txn("w1", domain.Income, "0.75"),
		txn("w1", domain.Expense, "8"),
	}
	want := state.WalletBalance("w1")

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(state.Transactions), func(a, b int) {
			state.Transactions[a], state.Transactions[b] = state.Transactions[b], state.Transactions[a]
		})
		assert.True(t, want.Equal(state.WalletBalance("w1")), "balance must not depend on log order")
	}
}

func TestNewDefaultState_Seeds(t *testing.T) {
	state := domain.NewDefaultState(time.Now())

	require.NotNil(t, state.FindCurrency(fx.PivotCurrency), "pivot currency must be seeded")
	require.NotEmpty(t, state.Wallets)
	assert.Equal(t, fx.PivotCurrency, state.Wallets[0].CurrencyCode, "seed wallet is pivot-denominated")
	assert.Equal(t, fx.PivotCurrency, state.Settings.DisplayCurrency)
	assert.Empty(t, state.Transactions)
}

func TestCategoryName_Fallback(t *testing.T) {
	state := domain.NewDefaultState(time.Now())

	assert.Equal(t, "Food & Drink", state.CategoryName("cat-food"))
	assert.Equal(t, domain.FallbackCategoryName, state.CategoryName("deleted-category"))
}

func TestClone_Isolated(t *testing.T) {
	state := domain.NewDefaultState(time.Now())
	state.Transactions = append(state.Transactions, txn("w1", domain.Income, "5"))

	clone, err := state.Clone()
	require.NoError(t, err)

	clone.Transactions = append(clone.Transactions, txn("w1", domain.Income, "7"))
	clone.UserName = "changed"

	assert.Len(t, state.Transactions, 1, "original must not see clone mutations")
	assert.Empty(t, state.UserName)
}
