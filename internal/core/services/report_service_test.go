package services_test

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/core/services"
	"github.com/thariapp/thari_backend/internal/dto"
)

type ReportServiceTestSuite struct {
	suite.Suite
	store   *services.StateStore
	service portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.store = newTestStore(suite.T())
	suite.service = services.NewReportService(suite.store)
}

func (suite *ReportServiceTestSuite) seed(fn func(state *domain.AppState)) {
	err := suite.store.Update(context.Background(), func(state *domain.AppState) error {
		fn(state)
		return nil
	})
	suite.Require().NoError(err)
}

func (suite *ReportServiceTestSuite) TestFinancialReport_ConvertsWalletBalances() {
	suite.seed(func(state *domain.AppState) {
		state.Wallets = append(state.Wallets, domain.Wallet{WalletID: "wallet-usd", Name: "Trip", CurrencyCode: "USD"})
		state.Transactions = append(state.Transactions,
			txn("t1", "wallet-cash", "SAR", domain.Income, 1000),
			txn("t2", "wallet-usd", "USD", domain.Income, 100),
		)
	})

	report, err := suite.service.FinancialReport(context.Background(), "SAR")
	suite.Require().NoError(err)
	suite.Equal("SAR", report.ReportCurrency)
	// 1000 SAR + 100 USD at 3.75.
	suite.True(report.TotalBalance.Equal(decimal.NewFromInt(1375)), "got %s", report.TotalBalance)
	suite.True(report.TotalIncome.Equal(decimal.NewFromInt(1375)))
	suite.Require().Len(report.Wallets, 2)
	for _, line := range report.Wallets {
		suite.True(line.Converted)
	}
}

func (suite *ReportServiceTestSuite) TestFinancialReport_DefaultsToDisplayCurrency() {
	report, err := suite.service.FinancialReport(context.Background(), "")
	suite.Require().NoError(err)
	suite.Equal("SAR", report.ReportCurrency)
}

func (suite *ReportServiceTestSuite) TestFinancialReport_UnknownCurrency() {
	_, err := suite.service.FinancialReport(context.Background(), "XXX")
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *ReportServiceTestSuite) TestFinancialReport_CategoryBreakdown() {
	suite.seed(func(state *domain.AppState) {
		t1 := txn("t1", "wallet-cash", "SAR", domain.Expense, 60)
		t1.CategoryID = "cat-food"
		t2 := txn("t2", "wallet-cash", "SAR", domain.Expense, 40)
		t2.CategoryID = "cat-transport"
		state.Transactions = append(state.Transactions, t1, t2)
	})

	report, err := suite.service.FinancialReport(context.Background(), "SAR")
	suite.Require().NoError(err)
	suite.Require().Len(report.Categories, 2)
	suite.Equal("Food & Drink", report.Categories[0].CategoryName)
	suite.True(report.Categories[0].Spent.Equal(decimal.NewFromInt(60)))
}

func (suite *ReportServiceTestSuite) TestExportCSV_HeaderAndQuotedNotes() {
	suite.seed(func(state *domain.AppState) {
		t := txn("t1", "wallet-cash", "SAR", domain.Expense, 25)
		t.Note = `groceries, "weekly" run`
		state.Transactions = append(state.Transactions, t)
	})

	data, err := suite.service.ExportCSV(context.Background())
	suite.Require().NoError(err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.Equal([]string{"transactionID", "date", "type", "amount", "currencyCode", "walletID", "categoryName", "note"}, records[0])
	suite.Equal(`groceries, "weekly" run`, records[1][7])
	suite.Equal("25", records[1][3])
}

func (suite *ReportServiceTestSuite) TestImport_RejectsPayloadWithoutMarkers() {
	ctx := context.Background()
	err := suite.service.Import(ctx, []byte(`{"foo": "bar"}`))
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))

	// The document is untouched after the rejection.
	err = suite.store.View(func(state *domain.AppState) error {
		suite.Len(state.Currencies, 7)
		return nil
	})
	suite.Require().NoError(err)
}

func (suite *ReportServiceTestSuite) TestImport_RejectsNonJSON() {
	err := suite.service.Import(context.Background(), []byte("not json at all"))
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func (suite *ReportServiceTestSuite) TestImport_ReplacesWholeDocument() {
	ctx := context.Background()

	exported, err := suite.service.ExportJSON(ctx)
	suite.Require().NoError(err)

	var doc domain.AppState
	suite.Require().NoError(json.Unmarshal(exported, &doc))
	doc.UserName = "Imported"
	doc.Transactions = append(doc.Transactions, txn("t1", "wallet-cash", "SAR", domain.Income, 5))
	payload, err := json.Marshal(&doc)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.service.Import(ctx, payload))

	err = suite.store.View(func(state *domain.AppState) error {
		suite.Equal("Imported", state.UserName)
		suite.Len(state.Transactions, 1)
		return nil
	})
	suite.Require().NoError(err)
}

func (suite *ReportServiceTestSuite) TestZakat_AboveNisab() {
	suite.seed(func(state *domain.AppState) {
		state.Transactions = append(state.Transactions, txn("t1", "wallet-cash", "SAR", domain.Income, 100000))
	})

	resp, err := suite.service.Zakat(context.Background(), dto.ZakatRequest{
		GoldGramPrice: decimal.NewFromInt(400),
		CurrencyCode:  "SAR",
	})
	suite.Require().NoError(err)
	// Nisab is 85 grams of gold.
	suite.True(resp.Nisab.Equal(decimal.NewFromInt(34000)))
	suite.True(resp.AboveNisab)
	suite.True(resp.ZakatDue.Equal(decimal.NewFromInt(2500)), "got %s", resp.ZakatDue)
}

func (suite *ReportServiceTestSuite) TestZakat_BelowNisab() {
	resp, err := suite.service.Zakat(context.Background(), dto.ZakatRequest{
		GoldGramPrice: decimal.NewFromInt(400),
		CurrencyCode:  "SAR",
	})
	suite.Require().NoError(err)
	suite.False(resp.AboveNisab)
	suite.True(resp.ZakatDue.IsZero())
}

func (suite *ReportServiceTestSuite) TestZakat_NonPositiveGoldPrice() {
	_, err := suite.service.Zakat(context.Background(), dto.ZakatRequest{
		GoldGramPrice: decimal.Zero,
		CurrencyCode:  "SAR",
	})
	suite.Require().Error(err)
	suite.True(errors.Is(err, apperrors.ErrValidation))
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
