package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	portsrepo "github.com/thariapp/thari_backend/internal/core/ports/repositories"
)

// StateStore owns the in-memory state document and funnels every mutation
// through a single transition: clone the document, apply the mutation to the
// clone, persist, then swap the pointer. A failing mutation or a failing
// save leaves the previous document fully intact, which is what makes
// multi-effect operations like debt settlement atomic.
type StateStore struct {
	repo portsrepo.StateRepository

	mu    sync.Mutex
	state *domain.AppState
}

// NewStateStore loads the persisted document, seeding a fresh default state
// when none exists yet.
func NewStateStore(ctx context.Context, repo portsrepo.StateRepository) (*StateStore, error) {
	state, err := repo.Load(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load state: %w", err)
		}
		state = domain.NewDefaultState(time.Now())
		if err := repo.Save(ctx, state); err != nil {
			return nil, fmt.Errorf("failed to persist seeded state: %w", err)
		}
	}
	return &StateStore{repo: repo, state: state}, nil
}

// View runs fn against the current document under the store lock. fn must
// not retain or mutate the document.
func (s *StateStore) View(fn func(state *domain.AppState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.state)
}

// Update applies fn to a clone of the current document, persists the clone
// and swaps it in. All-or-nothing: an error from fn or from persistence
// leaves the in-memory and stored documents unchanged.
func (s *StateStore) Update(ctx context.Context, fn func(state *domain.AppState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.Clone()
	if err != nil {
		return err
	}
	if err := fn(next); err != nil {
		return err
	}
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	s.state = next
	return nil
}

// Replace swaps in a complete new document (import/restore path). The
// incoming document is persisted before it becomes visible.
func (s *StateStore) Replace(ctx context.Context, next *domain.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to persist state: %w", err)
	}
	s.state = next
	return nil
}
