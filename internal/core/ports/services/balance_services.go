package services

import (
	"context"

	"github.com/thariapp/thari_backend/internal/dto"
)

// BalanceSvcFacade produces the dashboard aggregates and manages the display
// settings that shape them.
type BalanceSvcFacade interface {
	// Summary computes the unified or travel-mode view depending on the
	// stored settings. No currency conversion happens here.
	Summary(ctx context.Context) (*dto.BalanceSummaryResponse, error)

	GetSettings(ctx context.Context) (*dto.SettingsResponse, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}
