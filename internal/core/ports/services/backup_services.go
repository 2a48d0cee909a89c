package services

import "context"

// BackupSvcFacade defines password-protected whole-state backup/restore.
type BackupSvcFacade interface {
	// Backup returns the encrypted envelope string for the current state.
	Backup(ctx context.Context, password string) (string, error)

	// Restore replaces the state from an envelope produced by Backup, or
	// from a legacy raw-JSON export when the payload already looks like
	// JSON. Wrong password and corrupt payload yield the same error.
	Restore(ctx context.Context, payload, password string) error
}
