package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/thariapp/thari_backend/internal/core/domain"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/core/services"
)

// --- Mock Advisor ---
type MockAdvisor struct {
	mock.Mock
}

func (m *MockAdvisor) Advise(ctx context.Context, summary domain.AdviceSummary) (string, error) {
	args := m.Called(ctx, summary)
	return args.String(0), args.Error(1)
}

type AdviceServiceTestSuite struct {
	suite.Suite
	store       *services.StateStore
	mockAdvisor *MockAdvisor
	service     portssvc.AdviceSvcFacade
}

func (suite *AdviceServiceTestSuite) SetupTest() {
	suite.store = newTestStore(suite.T())
	suite.mockAdvisor = new(MockAdvisor)
	suite.service = services.NewAdviceService(suite.store, suite.mockAdvisor)
}

func (suite *AdviceServiceTestSuite) TestAdvise_PassesDisplayCurrencySummary() {
	ctx := context.Background()
	err := suite.store.Update(ctx, func(state *domain.AppState) error {
		t1 := txn("t1", "wallet-cash", "SAR", domain.Income, 5000)
		t2 := txn("t2", "wallet-cash", "SAR", domain.Expense, 700)
		t2.CategoryID = "cat-food"
		t3 := txn("t3", "wallet-cash", "USD", domain.Expense, 999)
		state.Transactions = append(state.Transactions, t1, t2, t3)
		return nil
	})
	suite.Require().NoError(err)

	suite.mockAdvisor.On("Advise", mock.Anything, mock.MatchedBy(func(s domain.AdviceSummary) bool {
		return s.CurrencySymbol == "ر.س" &&
			s.TotalIncome.Equal(decimal.NewFromInt(5000)) &&
			s.TotalExpense.Equal(decimal.NewFromInt(700)) &&
			len(s.TopCategories) == 1 &&
			s.TopCategories[0].CategoryName == "Food & Drink"
	})).Return("Cut back on takeout.", nil).Once()

	resp, err := suite.service.Advise(ctx)
	suite.Require().NoError(err)
	suite.False(resp.Fallback)
	suite.Equal("Cut back on takeout.", resp.Advice)
	suite.mockAdvisor.AssertExpectations(suite.T())
}

func (suite *AdviceServiceTestSuite) TestAdvise_ErrorDegradesToFallback() {
	suite.mockAdvisor.On("Advise", mock.Anything, mock.Anything).Return("", errors.New("network down")).Once()

	resp, err := suite.service.Advise(context.Background())
	suite.Require().NoError(err)
	suite.True(resp.Fallback)
	suite.Equal(services.FallbackAdvice, resp.Advice)
}

func (suite *AdviceServiceTestSuite) TestAdvise_EmptyResponseDegradesToFallback() {
	suite.mockAdvisor.On("Advise", mock.Anything, mock.Anything).Return("   ", nil).Once()

	resp, err := suite.service.Advise(context.Background())
	suite.Require().NoError(err)
	suite.True(resp.Fallback)
}

func (suite *AdviceServiceTestSuite) TestAdvise_NoAdvisorConfigured() {
	service := services.NewAdviceService(suite.store, nil)

	resp, err := service.Advise(context.Background())
	suite.Require().NoError(err)
	suite.True(resp.Fallback)
	suite.Equal(services.FallbackAdvice, resp.Advice)
}

func TestAdviceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdviceServiceTestSuite))
}
