package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	"github.com/thariapp/thari_backend/internal/core/services"
)

// memStateRepository keeps the persisted document in memory for tests.
type memStateRepository struct {
	saved *domain.AppState
}

func (m *memStateRepository) Load(ctx context.Context) (*domain.AppState, error) {
	if m.saved == nil {
		return nil, fmt.Errorf("%w: no state document", apperrors.ErrNotFound)
	}
	return m.saved, nil
}

func (m *memStateRepository) Save(ctx context.Context, state *domain.AppState) error {
	m.saved = state
	return nil
}

// MockStateRepository is a testify mock for failure injection.
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Load(ctx context.Context) (*domain.AppState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppState), args.Error(1)
}

func (m *MockStateRepository) Save(ctx context.Context, state *domain.AppState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

// newTestStore builds a StateStore over an in-memory repository seeded with
// the default state document.
func newTestStore(t *testing.T) *services.StateStore {
	t.Helper()
	store, err := services.NewStateStore(context.Background(), &memStateRepository{})
	require.NoError(t, err)
	return store
}

// defaultStateAt is shorthand for the seeded document.
func defaultStateAt(now time.Time) *domain.AppState {
	return domain.NewDefaultState(now)
}
