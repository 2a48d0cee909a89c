package services

import (
	"context"

	"github.com/thariapp/thari_backend/internal/dto"
)

// ReportSvcFacade defines the export/report views. These are the only
// consumers of the currency converter that produce pivoted totals.
type ReportSvcFacade interface {
	// FinancialReport converts every wallet balance into the report
	// currency and aggregates income, expense and per-category spend.
	FinancialReport(ctx context.Context, reportCurrency string) (*dto.FinancialReportResponse, error)

	// ExportCSV renders the transaction log as CSV: header row, one row per
	// transaction, notes quoted.
	ExportCSV(ctx context.Context) ([]byte, error)

	// ExportJSON dumps the full state document.
	ExportJSON(ctx context.Context) ([]byte, error)

	// Import replaces the whole document. The payload must carry the
	// userName and transactions marker fields or it is rejected with the
	// state left untouched.
	Import(ctx context.Context, payload []byte) error

	// Zakat computes the nisab threshold and levy from a gold gram price.
	Zakat(ctx context.Context, req dto.ZakatRequest) (*dto.ZakatResponse, error)
}
