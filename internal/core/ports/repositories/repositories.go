package repositories

import (
	"context"

	"github.com/thariapp/thari_backend/internal/core/domain"
)

// StateRepository persists the whole application state document as one
// blob under a single key. Load returns apperrors.ErrNotFound when no
// document has been saved yet.
type StateRepository interface {
	Load(ctx context.Context) (*domain.AppState, error)
	Save(ctx context.Context, state *domain.AppState) error
}

// RepositoryProvider bundles the repositories handed to the service layer.
type RepositoryProvider struct {
	StateRepo StateRepository
}
