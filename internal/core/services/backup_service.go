package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/utils"
)

// BackupService wraps the state document in a password-protected envelope
// and restores from it. Legacy plain-JSON exports restore without a
// password.
type BackupService struct {
	BaseService
	store *StateStore
}

// NewBackupService creates a new BackupService.
func NewBackupService(store *StateStore) *BackupService {
	return &BackupService{store: store}
}

var _ portssvc.BackupSvcFacade = (*BackupService)(nil)

// Backup serializes the current state and seals it with the password.
func (s *BackupService) Backup(ctx context.Context, password string) (string, error) {
	var raw []byte
	err := s.store.View(func(state *domain.AppState) error {
		var err error
		raw, err = json.Marshal(state)
		if err != nil {
			return fmt.Errorf("failed to marshal state for backup: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	payload, err := utils.SealEnvelope(raw, password)
	if err != nil {
		return "", fmt.Errorf("failed to seal backup: %w", err)
	}

	s.LogInfo(ctx, "Encrypted backup produced")
	return payload, nil
}

// Restore replaces the state document from a backup payload. Envelope
// payloads are decrypted with the password; a payload that already looks
// like JSON is treated as a legacy unencrypted export. Either way the
// plaintext must pass the same marker check as Import, so a bare JSON
// object is rejected without touching the current document.
func (s *BackupService) Restore(ctx context.Context, payload, password string) error {
	var raw []byte
	switch {
	case utils.IsEnvelope(payload):
		plaintext, err := utils.OpenEnvelope(payload, password)
		if err != nil {
			return err
		}
		raw = plaintext
	case utils.LooksLikeJSON(payload):
		raw = []byte(payload)
	default:
		return apperrors.ErrBadCipher
	}

	next, err := decodeStateDocument(raw)
	if err != nil {
		return err
	}

	if err := s.store.Replace(ctx, next); err != nil {
		return err
	}

	s.LogInfo(ctx, "State restored from backup")
	return nil
}
