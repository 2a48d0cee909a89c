package services

import (
	"context"

	"github.com/thariapp/thari_backend/internal/dto"
)

// AuthSvcFacade manages the lock PIN and session tokens.
type AuthSvcFacade interface {
	// SetPIN sets or changes the PIN; changing requires the old one.
	SetPIN(ctx context.Context, req dto.SetPINRequest) error

	// Unlock verifies the PIN and issues a session token. When no PIN is
	// configured the token is issued without verification.
	Unlock(ctx context.Context, req dto.UnlockRequest) (*dto.TokenResponse, error)
}
