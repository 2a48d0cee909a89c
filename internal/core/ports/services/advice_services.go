package services

import (
	"context"

	"github.com/thariapp/thari_backend/internal/dto"
)

// AdviceSvcFacade produces AI advice from the current financial summary.
// It never returns transport errors to the caller: failures degrade to a
// fixed fallback message flagged in the response.
type AdviceSvcFacade interface {
	Advise(ctx context.Context) (*dto.AdviceResponse, error)
}
