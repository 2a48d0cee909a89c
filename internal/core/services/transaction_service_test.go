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

type TransactionServiceTestSuite struct {
	suite.Suite
	store   *services.StateStore
	service portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.store = newTestStore(suite.T())
	suite.service = services.NewTransactionService(suite.store)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CurrencyFilledFromWallet() {
	resp, err := suite.service.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Amount:     decimal.NewFromInt(45),
		Type:       string(domain.Expense),
		CategoryID: "cat-food",
		WalletID:   "wallet-cash",
	})
	suite.Require().NoError(err)
	suite.Equal("SAR", resp.CurrencyCode)
	suite.Equal("Food & Drink", resp.CategoryName)
	suite.Equal(string(domain.Once), resp.Frequency)
	suite.False(resp.Date.IsZero())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_MismatchingCurrencyRejected() {
	_, err := suite.service.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Amount:       decimal.NewFromInt(45),
		Type:         string(domain.Expense),
		WalletID:     "wallet-cash",
		CurrencyCode: "USD",
	})
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))

	err = suite.store.View(func(state *domain.AppState) error {
		suite.Empty(state.Transactions)
		return nil
	})
	suite.Require().NoError(err)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownWallet() {
	_, err := suite.service.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(45),
		Type:     string(domain.Income),
		WalletID: "nope",
	})
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_NonPositiveAmount() {
	_, err := suite.service.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(-5),
		Type:     string(domain.Income),
		WalletID: "wallet-cash",
	})
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *TransactionServiceTestSuite) TestListTransactions_Filters() {
	ctx := context.Background()
	for _, req := range []dto.CreateTransactionRequest{
		{Amount: decimal.NewFromInt(10), Type: string(domain.Income), WalletID: "wallet-cash", CategoryID: "cat-salary"},
		{Amount: decimal.NewFromInt(20), Type: string(domain.Expense), WalletID: "wallet-cash", CategoryID: "cat-food"},
		{Amount: decimal.NewFromInt(30), Type: string(domain.Expense), WalletID: "wallet-cash", CategoryID: "cat-food"},
	} {
		_, err := suite.service.CreateTransaction(ctx, req)
		suite.Require().NoError(err)
	}

	all, err := suite.service.ListTransactions(ctx, dto.ListTransactionsFilter{})
	suite.Require().NoError(err)
	suite.Len(all, 3)

	food, err := suite.service.ListTransactions(ctx, dto.ListTransactionsFilter{CategoryID: "cat-food"})
	suite.Require().NoError(err)
	suite.Len(food, 2)

	income, err := suite.service.ListTransactions(ctx, dto.ListTransactionsFilter{Type: string(domain.Income)})
	suite.Require().NoError(err)
	suite.Len(income, 1)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DanglingCategoryFallsBack() {
	ctx := context.Background()
	err := suite.store.Update(ctx, func(state *domain.AppState) error {
		state.Transactions = append(state.Transactions, txn("t1", "wallet-cash", "SAR", domain.Expense, 15))
		state.Transactions[0].CategoryID = "deleted-category"
		return nil
	})
	suite.Require().NoError(err)

	out, err := suite.service.ListTransactions(ctx, dto.ListTransactionsFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(out, 1)
	suite.Equal(domain.FallbackCategoryName, out[0].CategoryName)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_BalanceRecomputes() {
	ctx := context.Background()
	created, err := suite.service.CreateTransaction(ctx, dto.CreateTransactionRequest{
		Amount:   decimal.NewFromInt(100),
		Type:     string(domain.Income),
		WalletID: "wallet-cash",
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.DeleteTransaction(ctx, created.TransactionID))

	err = suite.store.View(func(state *domain.AppState) error {
		suite.True(state.WalletBalance("wallet-cash").IsZero())
		return nil
	})
	suite.Require().NoError(err)

	err = suite.service.DeleteTransaction(ctx, created.TransactionID)
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
