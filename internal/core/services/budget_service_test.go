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

type BudgetServiceTestSuite struct {
	suite.Suite
	store   *services.StateStore
	service portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.store = newTestStore(suite.T())
	suite.service = services.NewBudgetService(suite.store)
}

func (suite *BudgetServiceTestSuite) spend(category string, amount int64, currency string) {
	err := suite.store.Update(context.Background(), func(state *domain.AppState) error {
		t := txn("t-"+category+"-"+currency, "wallet-cash", currency, domain.Expense, amount)
		t.CategoryID = category
		state.Transactions = append(state.Transactions, t)
		return nil
	})
	suite.Require().NoError(err)
}

func (suite *BudgetServiceTestSuite) TestSetBudget_NonPositiveRejected() {
	_, err := suite.service.SetBudget(context.Background(), dto.SetBudgetRequest{
		CategoryID: "cat-food",
		Amount:     decimal.Zero,
	})
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *BudgetServiceTestSuite) TestSetBudget_UnknownCategory() {
	_, err := suite.service.SetBudget(context.Background(), dto.SetBudgetRequest{
		CategoryID: "nope",
		Amount:     decimal.NewFromInt(100),
	})
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *BudgetServiceTestSuite) TestSetBudget_ReplacesExisting() {
	ctx := context.Background()
	_, err := suite.service.SetBudget(ctx, dto.SetBudgetRequest{CategoryID: "cat-food", Amount: decimal.NewFromInt(100)})
	suite.Require().NoError(err)
	_, err = suite.service.SetBudget(ctx, dto.SetBudgetRequest{CategoryID: "cat-food", Amount: decimal.NewFromInt(250)})
	suite.Require().NoError(err)

	statuses, err := suite.service.ListBudgetStatuses(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(statuses, 1)
	suite.True(statuses[0].Amount.Equal(decimal.NewFromInt(250)))
}

func (suite *BudgetServiceTestSuite) TestListBudgetStatuses_SeverityLevels() {
	ctx := context.Background()
	_, err := suite.service.SetBudget(ctx, dto.SetBudgetRequest{CategoryID: "cat-food", Amount: decimal.NewFromInt(100)})
	suite.Require().NoError(err)

	suite.spend("cat-food", 50, "SAR")
	statuses, err := suite.service.ListBudgetStatuses(ctx)
	suite.Require().NoError(err)
	suite.Equal(string(domain.BudgetNormal), statuses[0].Severity)

	suite.spend("cat-food", 30, "SAR") // 80%
	statuses, err = suite.service.ListBudgetStatuses(ctx)
	suite.Require().NoError(err)
	suite.Equal(string(domain.BudgetWarning), statuses[0].Severity)

	suite.spend("cat-food", 15, "SAR") // 95%
	statuses, err = suite.service.ListBudgetStatuses(ctx)
	suite.Require().NoError(err)
	suite.Equal(string(domain.BudgetCritical), statuses[0].Severity)
	suite.True(statuses[0].Percentage.Equal(decimal.NewFromInt(95)))
}

func (suite *BudgetServiceTestSuite) TestListBudgetStatuses_PercentClampedAt100() {
	ctx := context.Background()
	_, err := suite.service.SetBudget(ctx, dto.SetBudgetRequest{CategoryID: "cat-food", Amount: decimal.NewFromInt(100)})
	suite.Require().NoError(err)

	suite.spend("cat-food", 180, "SAR")
	statuses, err := suite.service.ListBudgetStatuses(ctx)
	suite.Require().NoError(err)
	suite.True(statuses[0].Percentage.Equal(decimal.NewFromInt(100)))
	suite.True(statuses[0].Spent.Equal(decimal.NewFromInt(180)))
}

func (suite *BudgetServiceTestSuite) TestListBudgetStatuses_OnlyDisplayCurrencyCounts() {
	ctx := context.Background()
	_, err := suite.service.SetBudget(ctx, dto.SetBudgetRequest{CategoryID: "cat-food", Amount: decimal.NewFromInt(100)})
	suite.Require().NoError(err)

	suite.spend("cat-food", 40, "SAR")
	suite.spend("cat-food", 500, "USD")

	statuses, err := suite.service.ListBudgetStatuses(ctx)
	suite.Require().NoError(err)
	suite.True(statuses[0].Spent.Equal(decimal.NewFromInt(40)), "got %s", statuses[0].Spent)
}

func (suite *BudgetServiceTestSuite) TestDeleteBudget() {
	ctx := context.Background()
	_, err := suite.service.SetBudget(ctx, dto.SetBudgetRequest{CategoryID: "cat-food", Amount: decimal.NewFromInt(100)})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.DeleteBudget(ctx, "cat-food"))

	err = suite.service.DeleteBudget(ctx, "cat-food")
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
