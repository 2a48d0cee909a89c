package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/core/services"
	"github.com/thariapp/thari_backend/internal/dto"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	store   *services.StateStore
	service portssvc.BalanceSvcFacade
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.store = newTestStore(suite.T())
	suite.service = services.NewBalanceService(suite.store)
}

func (suite *BalanceServiceTestSuite) seed(fn func(state *domain.AppState)) {
	err := suite.store.Update(context.Background(), func(state *domain.AppState) error {
		fn(state)
		return nil
	})
	suite.Require().NoError(err)
}

func txn(id, walletID, currency string, txnType domain.TransactionType, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Amount:        decimal.NewFromInt(amount),
		Type:          txnType,
		WalletID:      walletID,
		CurrencyCode:  currency,
		Date:          time.Now(),
		Frequency:     domain.Once,
	}
}

func (suite *BalanceServiceTestSuite) TestSummary_UnifiedFiltersToDisplayCurrency() {
	suite.seed(func(state *domain.AppState) {
		state.Wallets = append(state.Wallets, domain.Wallet{WalletID: "wallet-usd", Name: "Trip", CurrencyCode: "USD"})
		state.Transactions = append(state.Transactions,
			txn("t1", "wallet-cash", "SAR", domain.Income, 1000),
			txn("t2", "wallet-cash", "SAR", domain.Expense, 300),
			txn("t3", "wallet-usd", "USD", domain.Income, 50),
		)
	})

	summary, err := suite.service.Summary(context.Background())
	suite.Require().NoError(err)
	suite.False(summary.TravelMode)
	suite.Equal("SAR", summary.DisplayCurrency)
	// The USD income never leaks into the unified SAR view.
	suite.True(summary.Balance.Equal(decimal.NewFromInt(700)))
	suite.True(summary.TotalIncome.Equal(decimal.NewFromInt(1000)))
	suite.True(summary.TotalExpense.Equal(decimal.NewFromInt(300)))
}

func (suite *BalanceServiceTestSuite) TestSummary_TravelModeBucketsPerCurrency() {
	suite.seed(func(state *domain.AppState) {
		state.Settings.TravelMode = true
		state.Wallets = append(state.Wallets,
			domain.Wallet{WalletID: "wallet-usd", Name: "Trip", CurrencyCode: "USD"},
			domain.Wallet{WalletID: "wallet-eur", Name: "Spare", CurrencyCode: "EUR"},
		)
		state.Transactions = append(state.Transactions,
			txn("t1", "wallet-cash", "SAR", domain.Income, 500),
			txn("t2", "wallet-usd", "USD", domain.Income, 120),
			txn("t3", "wallet-usd", "USD", domain.Expense, 20),
		)
	})

	summary, err := suite.service.Summary(context.Background())
	suite.Require().NoError(err)
	suite.True(summary.TravelMode)
	suite.Nil(summary.Balance)

	// EUR holds a zero balance so only SAR and USD appear, sorted by code.
	suite.Require().Len(summary.Buckets, 2)
	suite.Equal("SAR", summary.Buckets[0].CurrencyCode)
	suite.True(summary.Buckets[0].Balance.Equal(decimal.NewFromInt(500)))
	suite.Equal("USD", summary.Buckets[1].CurrencyCode)
	suite.True(summary.Buckets[1].Balance.Equal(decimal.NewFromInt(100)))
	suite.True(summary.Buckets[1].TotalIncome.Equal(decimal.NewFromInt(120)))
	suite.True(summary.Buckets[1].TotalExpense.Equal(decimal.NewFromInt(20)))
	suite.Equal("$", summary.Buckets[1].Symbol)
}

func (suite *BalanceServiceTestSuite) TestSummary_TravelModeHidesNegligibleBalances() {
	suite.seed(func(state *domain.AppState) {
		state.Settings.TravelMode = true
		state.Wallets = append(state.Wallets, domain.Wallet{WalletID: "wallet-usd", Name: "Trip", CurrencyCode: "USD"})
		state.Transactions = append(state.Transactions,
			domain.Transaction{TransactionID: "t1", Amount: decimal.RequireFromString("0.009"), Type: domain.Income, WalletID: "wallet-usd", CurrencyCode: "USD", Frequency: domain.Once},
			txn("t2", "wallet-cash", "SAR", domain.Income, 10),
		)
	})

	summary, err := suite.service.Summary(context.Background())
	suite.Require().NoError(err)
	suite.Require().Len(summary.Buckets, 1)
	suite.Equal("SAR", summary.Buckets[0].CurrencyCode)
}

func (suite *BalanceServiceTestSuite) TestSummary_TravelModeShowsOffsettingWallets() {
	suite.seed(func(state *domain.AppState) {
		state.Settings.TravelMode = true
		state.Wallets = append(state.Wallets,
			domain.Wallet{WalletID: "wallet-usd-a", Name: "Checking", CurrencyCode: "USD"},
			domain.Wallet{WalletID: "wallet-usd-b", Name: "Owed", CurrencyCode: "USD"},
		)
		state.Transactions = append(state.Transactions,
			txn("t1", "wallet-usd-a", "USD", domain.Income, 100),
			txn("t2", "wallet-usd-b", "USD", domain.Expense, 100),
		)
	})

	summary, err := suite.service.Summary(context.Background())
	suite.Require().NoError(err)
	// The two wallets cancel out to zero, but each holds real money, so the
	// USD bucket stays visible.
	suite.Require().Len(summary.Buckets, 1)
	suite.Equal("USD", summary.Buckets[0].CurrencyCode)
	suite.True(summary.Buckets[0].Balance.IsZero())
	suite.Equal(2, summary.Buckets[0].WalletCount)
}

func (suite *BalanceServiceTestSuite) TestUpdateSettings_AppliesPresentFields() {
	travel := true
	name := "Sara"
	resp, err := suite.service.UpdateSettings(context.Background(), dto.UpdateSettingsRequest{
		TravelMode: &travel,
		UserName:   &name,
	})
	suite.Require().NoError(err)
	suite.True(resp.TravelMode)
	suite.Equal("Sara", resp.UserName)
	// Display currency was absent from the request and stays put.
	suite.Equal("SAR", resp.DisplayCurrency)
}

func (suite *BalanceServiceTestSuite) TestUpdateSettings_UnknownDisplayCurrency() {
	code := "XXX"
	_, err := suite.service.UpdateSettings(context.Background(), dto.UpdateSettingsRequest{
		DisplayCurrency: &code,
	})
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
