package ai

import (
	"context"

	"github.com/thariapp/thari_backend/internal/core/domain"
)

// Advisor turns a financial summary into free-text advice. Implementations
// talk to external model providers; callers must treat any error as a signal
// to degrade to a fixed fallback message, never to fail the request.
type Advisor interface {
	Advise(ctx context.Context, summary domain.AdviceSummary) (string, error)
}
