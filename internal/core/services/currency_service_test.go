package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/thariapp/thari_backend/internal/apperrors"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/core/services"
	"github.com/thariapp/thari_backend/internal/dto"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	store   *services.StateStore
	service portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.store = newTestStore(suite.T())
	suite.service = services.NewCurrencyService(suite.store)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{CurrencyCode: "TRY", Symbol: "₺", Name: "Turkish Lira"}

	_, err := suite.service.CreateCurrency(ctx, req)
	suite.Require().NoError(err)

	_, err = suite.service.CreateCurrency(ctx, req)
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrDuplicate))
}

func (suite *CurrencyServiceTestSuite) TestSetRate_InvertsUserEnteredDirection() {
	ctx := context.Background()

	// The user enters "1 SAR = 4 EGP"; the stored direction is 1 EGP = 0.25 SAR.
	resp, err := suite.service.SetRate(ctx, "EGP", dto.SetRateRequest{Rate: decimal.NewFromInt(4)})
	suite.Require().NoError(err)
	suite.True(resp.RateToPivot.Equal(decimal.RequireFromString("0.25")), "got %s", resp.RateToPivot)
	suite.True(resp.PivotPerUnit.Equal(decimal.NewFromInt(4)))
	suite.True(resp.Convertible)
}

func (suite *CurrencyServiceTestSuite) TestSetRate_PivotIsFixed() {
	_, err := suite.service.SetRate(context.Background(), "SAR", dto.SetRateRequest{Rate: decimal.NewFromInt(2)})
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *CurrencyServiceTestSuite) TestSetRate_NonPositive() {
	_, err := suite.service.SetRate(context.Background(), "USD", dto.SetRateRequest{Rate: decimal.Zero})
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *CurrencyServiceTestSuite) TestSetRate_UnknownCurrency() {
	_, err := suite.service.SetRate(context.Background(), "XXX", dto.SetRateRequest{Rate: decimal.NewFromInt(2)})
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrNotFound))
}

func (suite *CurrencyServiceTestSuite) TestConvert_ThroughPivot() {
	resp, err := suite.service.Convert(context.Background(), decimal.NewFromInt(100), "USD", "SAR")
	suite.Require().NoError(err)
	suite.True(resp.Result.Equal(decimal.NewFromInt(375)), "got %s", resp.Result)
	suite.True(resp.Converted)
}

func (suite *CurrencyServiceTestSuite) TestConvert_UnknownCurrencyFailsSoft() {
	resp, err := suite.service.Convert(context.Background(), decimal.NewFromInt(100), "XXX", "SAR")
	suite.Require().NoError(err)
	suite.True(resp.Result.Equal(decimal.NewFromInt(100)))
	suite.False(resp.Converted)
}

func (suite *CurrencyServiceTestSuite) TestConvert_CustomRateWins() {
	ctx := context.Background()
	// "1 SAR = 5 USD" is nonsense economically but proves the override wins.
	_, err := suite.service.SetRate(ctx, "USD", dto.SetRateRequest{Rate: decimal.NewFromInt(5)})
	suite.Require().NoError(err)

	resp, err := suite.service.Convert(ctx, decimal.NewFromInt(10), "USD", "SAR")
	suite.Require().NoError(err)
	suite.True(resp.Result.Equal(decimal.NewFromInt(2)), "got %s", resp.Result)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
