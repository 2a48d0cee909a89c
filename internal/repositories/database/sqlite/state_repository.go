package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	portsrepo "github.com/thariapp/thari_backend/internal/core/ports/repositories"
)

// stateKey is the single row the whole document lives under.
const stateKey = "app_state"

// SQLiteStateRepository persists the state document as one JSON blob in a
// key-value table.
type SQLiteStateRepository struct {
	db *sql.DB
}

// NewSQLiteStateRepository creates a new repository over an open database.
func NewSQLiteStateRepository(db *sql.DB) *SQLiteStateRepository {
	return &SQLiteStateRepository{db: db}
}

var _ portsrepo.StateRepository = (*SQLiteStateRepository)(nil)

// NewRepositoryProvider bundles the repositories for the service layer.
func NewRepositoryProvider(db *sql.DB) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		StateRepo: NewSQLiteStateRepository(db),
	}
}

// Load reads and decodes the stored document. A missing row yields
// apperrors.ErrNotFound so the caller can seed a default state.
func (r *SQLiteStateRepository) Load(ctx context.Context) (*domain.AppState, error) {
	query := `SELECT document FROM app_state WHERE state_key = ?;`

	var raw string
	err := r.db.QueryRowContext(ctx, query, stateKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: no state document", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to query state document: %w", err)
	}

	var state domain.AppState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("failed to decode state document: %w", err)
	}
	return &state, nil
}

// Save upserts the encoded document under the single key.
func (r *SQLiteStateRepository) Save(ctx context.Context, state *domain.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state document: %w", err)
	}

	query := `
		INSERT INTO app_state (state_key, document, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (state_key) DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at;
	`

	if _, err := r.db.ExecContext(ctx, query, stateKey, string(raw), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save state document: %w", err)
	}
	return nil
}
