package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	"github.com/thariapp/thari_backend/internal/core/fx"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/dto"
)

// nisabGoldGrams is the gold weight defining the zakat threshold.
var nisabGoldGrams = decimal.NewFromInt(85)

// zakatRate is the levy applied to eligible assets above the nisab.
var zakatRate = decimal.RequireFromString("0.025")

var csvHeader = []string{"transactionID", "date", "type", "amount", "currencyCode", "walletID", "categoryName", "note"}

// ReportService produces the export and report views over the document.
type ReportService struct {
	BaseService
	store *StateStore
}

// NewReportService creates a new ReportService.
func NewReportService(store *StateStore) *ReportService {
	return &ReportService{store: store}
}

var _ portssvc.ReportSvcFacade = (*ReportService)(nil)

// FinancialReport converts every wallet balance and every transaction into
// the report currency. Unconvertible amounts pass through at face value and
// the per-wallet line is flagged accordingly.
func (s *ReportService) FinancialReport(ctx context.Context, reportCurrency string) (*dto.FinancialReportResponse, error) {
	code := strings.ToUpper(reportCurrency)

	var resp *dto.FinancialReportResponse
	err := s.store.View(func(state *domain.AppState) error {
		if code == "" {
			code = state.Settings.DisplayCurrency
		}
		if state.FindCurrency(code) == nil {
			return fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, code)
		}
		rates := state.RateTable()

		totalBalance := decimal.Zero
		lines := make([]dto.ReportLine, 0, len(state.Wallets))
		for i := range state.Wallets {
			w := &state.Wallets[i]
			native := state.WalletBalance(w.WalletID)
			converted := fx.Convert(native, w.CurrencyCode, code, rates)
			totalBalance = totalBalance.Add(converted)
			lines = append(lines, dto.ReportLine{
				WalletID:        w.WalletID,
				WalletName:      w.Name,
				CurrencyCode:    w.CurrencyCode,
				NativeBalance:   native,
				ConvertedAmount: converted,
				Converted:       w.CurrencyCode == code || (rates.Convertible(w.CurrencyCode) && rates.Convertible(code)),
			})
		}

		totalIncome := decimal.Zero
		totalExpense := decimal.Zero
		spentByCategory := map[string]decimal.Decimal{}
		for _, txn := range state.Transactions {
			converted := fx.Convert(txn.Amount, txn.CurrencyCode, code, rates)
			switch txn.Type {
			case domain.Income:
				totalIncome = totalIncome.Add(converted)
			case domain.Expense:
				totalExpense = totalExpense.Add(converted)
				spentByCategory[txn.CategoryID] = spentByCategory[txn.CategoryID].Add(converted)
			}
		}

		categoryIDs := make([]string, 0, len(spentByCategory))
		for id := range spentByCategory {
			categoryIDs = append(categoryIDs, id)
		}
		sort.Strings(categoryIDs)
		categories := make([]dto.CategoryReportLine, 0, len(categoryIDs))
		for _, id := range categoryIDs {
			categories = append(categories, dto.CategoryReportLine{
				CategoryID:   id,
				CategoryName: state.CategoryName(id),
				Spent:        spentByCategory[id],
			})
		}

		resp = &dto.FinancialReportResponse{
			ReportCurrency: code,
			TotalBalance:   totalBalance,
			TotalIncome:    totalIncome,
			TotalExpense:   totalExpense,
			Wallets:        lines,
			Categories:     categories,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ExportCSV renders the transaction log as CSV with a fixed header row.
// encoding/csv handles quoting, so free-text notes with commas or quotes
// survive a round trip through spreadsheet tools.
func (s *ReportService) ExportCSV(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	err := s.store.View(func(state *domain.AppState) error {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("failed to write csv header: %w", err)
		}
		for _, txn := range state.Transactions {
			record := []string{
				txn.TransactionID,
				txn.Date.Format(time.RFC3339),
				string(txn.Type),
				txn.Amount.String(),
				txn.CurrencyCode,
				txn.WalletID,
				state.CategoryName(txn.CategoryID),
				txn.Note,
			}
			if err := w.Write(record); err != nil {
				return fmt.Errorf("failed to write csv record: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	s.LogInfo(ctx, "Transactions exported as CSV")
	return buf.Bytes(), nil
}

// ExportJSON dumps the full state document.
func (s *ReportService) ExportJSON(ctx context.Context) ([]byte, error) {
	var raw []byte
	err := s.store.View(func(state *domain.AppState) error {
		var err error
		raw, err = json.MarshalIndent(state, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal state for export: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "State exported as JSON")
	return raw, nil
}

// importMarkers mirrors the two fields an export always carries. Their
// presence is what distinguishes one of our documents from arbitrary JSON.
type importMarkers struct {
	UserName     *string          `json:"userName"`
	Transactions *json.RawMessage `json:"transactions"`
}

// decodeStateDocument parses a payload that claims to be an exported state
// document. The marker check runs before the full decode so a stray JSON
// object can never be installed as the new state.
func decodeStateDocument(payload []byte) (*domain.AppState, error) {
	var markers importMarkers
	if err := json.Unmarshal(payload, &markers); err != nil {
		return nil, fmt.Errorf("%w: payload is not valid JSON", apperrors.ErrValidation)
	}
	if markers.UserName == nil || markers.Transactions == nil {
		return nil, fmt.Errorf("%w: payload is not a recognized export", apperrors.ErrValidation)
	}

	var next domain.AppState
	if err := json.Unmarshal(payload, &next); err != nil {
		return nil, fmt.Errorf("%w: payload does not decode as a state document", apperrors.ErrValidation)
	}
	return &next, nil
}

// Import replaces the whole document with the payload. The payload must
// carry the userName and transactions marker fields; anything else is
// rejected before the current document is touched.
func (s *ReportService) Import(ctx context.Context, payload []byte) error {
	next, err := decodeStateDocument(payload)
	if err != nil {
		return err
	}

	if err := s.store.Replace(ctx, next); err != nil {
		return err
	}

	s.LogInfo(ctx, "State imported", "transactions", len(next.Transactions))
	return nil
}

// Zakat computes the nisab threshold from the current gold gram price and
// the levy due on eligible assets. Eligible assets are all wallet balances
// converted into the requested currency.
func (s *ReportService) Zakat(ctx context.Context, req dto.ZakatRequest) (*dto.ZakatResponse, error) {
	if req.GoldGramPrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: gold gram price must be positive", apperrors.ErrValidation)
	}
	code := strings.ToUpper(req.CurrencyCode)

	var resp *dto.ZakatResponse
	err := s.store.View(func(state *domain.AppState) error {
		if state.FindCurrency(code) == nil {
			return fmt.Errorf("%w: currency code '%s' not found", apperrors.ErrValidation, code)
		}
		rates := state.RateTable()

		assets := decimal.Zero
		for i := range state.Wallets {
			w := &state.Wallets[i]
			assets = assets.Add(fx.Convert(state.WalletBalance(w.WalletID), w.CurrencyCode, code, rates))
		}

		nisab := nisabGoldGrams.Mul(req.GoldGramPrice)
		above := assets.GreaterThanOrEqual(nisab)
		due := decimal.Zero
		if above {
			due = assets.Mul(zakatRate)
		}

		resp = &dto.ZakatResponse{
			CurrencyCode:   code,
			Nisab:          nisab,
			EligibleAssets: assets,
			AboveNisab:     above,
			ZakatDue:       due,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
