package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/core/services"
	"github.com/thariapp/thari_backend/internal/dto"
)

type WalletServiceTestSuite struct {
	suite.Suite
	store   *services.StateStore
	service portssvc.WalletSvcFacade
}

func (suite *WalletServiceTestSuite) SetupTest() {
	suite.store = newTestStore(suite.T())
	suite.service = services.NewWalletService(suite.store)
}

func (suite *WalletServiceTestSuite) TestCreateWallet_UppercasesCurrency() {
	wallet, err := suite.service.CreateWallet(context.Background(), dto.CreateWalletRequest{
		Name:         "Trip Cash",
		CurrencyCode: "usd",
		Color:        "#336699",
	})
	suite.Require().NoError(err)
	suite.Equal("USD", wallet.CurrencyCode)
	suite.True(wallet.Balance.IsZero())
	suite.NotEmpty(wallet.WalletID)
}

func (suite *WalletServiceTestSuite) TestCreateWallet_UnknownCurrency() {
	_, err := suite.service.CreateWallet(context.Background(), dto.CreateWalletRequest{
		Name:         "Mystery",
		CurrencyCode: "XXX",
	})
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *WalletServiceTestSuite) TestGetWallet_BalanceRecomputedFromLog() {
	ctx := context.Background()
	err := suite.store.Update(ctx, func(state *domain.AppState) error {
		state.Transactions = append(state.Transactions,
			txn("t1", "wallet-cash", "SAR", domain.Income, 500),
			txn("t2", "wallet-cash", "SAR", domain.Expense, 120),
		)
		return nil
	})
	suite.Require().NoError(err)

	wallet, err := suite.service.GetWallet(ctx, "wallet-cash")
	suite.Require().NoError(err)
	suite.True(wallet.Balance.Equal(decimal.NewFromInt(380)), "got %s", wallet.Balance)
}

func (suite *WalletServiceTestSuite) TestGetWallet_NotFound() {
	_, err := suite.service.GetWallet(context.Background(), "nope")
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *WalletServiceTestSuite) TestDeleteWallet_LeavesTransactionLogIntact() {
	ctx := context.Background()
	err := suite.store.Update(ctx, func(state *domain.AppState) error {
		state.Transactions = append(state.Transactions, txn("t1", "wallet-cash", "SAR", domain.Income, 10))
		return nil
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.DeleteWallet(ctx, "wallet-cash"))

	err = suite.store.View(func(state *domain.AppState) error {
		suite.Nil(state.FindWallet("wallet-cash"))
		suite.Len(state.Transactions, 1)
		return nil
	})
	suite.Require().NoError(err)

	err = suite.service.DeleteWallet(ctx, "wallet-cash")
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *WalletServiceTestSuite) TestListWallets() {
	ctx := context.Background()
	_, err := suite.service.CreateWallet(ctx, dto.CreateWalletRequest{Name: "Trip", CurrencyCode: "USD"})
	suite.Require().NoError(err)

	wallets, err := suite.service.ListWallets(ctx)
	suite.Require().NoError(err)
	suite.Len(wallets, 2)
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}
