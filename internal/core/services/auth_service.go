package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/thariapp/thari_backend/internal/apperrors"
	"github.com/thariapp/thari_backend/internal/core/domain"
	portssvc "github.com/thariapp/thari_backend/internal/core/ports/services"
	"github.com/thariapp/thari_backend/internal/dto"
	"github.com/thariapp/thari_backend/internal/platform/config"
	"github.com/thariapp/thari_backend/internal/utils"
)

// AuthService manages the lock PIN and issues session tokens.
type AuthService struct {
	BaseService
	store *StateStore
	cfg   *config.Config
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *StateStore, cfg *config.Config) *AuthService {
	return &AuthService{store: store, cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*AuthService)(nil)

// SetPIN sets the lock PIN. Changing an existing PIN requires the old one;
// only the bcrypt hash is ever stored.
func (s *AuthService) SetPIN(ctx context.Context, req dto.SetPINRequest) error {
	hash, err := utils.HashPIN(req.PIN)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}

	err = s.store.Update(ctx, func(state *domain.AppState) error {
		if state.Settings.PINHash != "" && !utils.CheckPINHash(req.OldPIN, state.Settings.PINHash) {
			return fmt.Errorf("%w: old PIN does not match", apperrors.ErrUnauthorized)
		}
		state.Settings.PINHash = hash
		return nil
	})
	if err != nil {
		return err
	}

	s.LogInfo(ctx, "Lock PIN updated")
	return nil
}

// Unlock verifies the PIN and issues a session token. When no PIN is
// configured the token is issued without verification so a fresh install is
// never locked out.
func (s *AuthService) Unlock(ctx context.Context, req dto.UnlockRequest) (*dto.TokenResponse, error) {
	err := s.store.View(func(state *domain.AppState) error {
		if state.Settings.PINHash == "" {
			return nil
		}
		if !utils.CheckPINHash(req.PIN, state.Settings.PINHash) {
			return fmt.Errorf("%w: wrong PIN", apperrors.ErrUnauthorized)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(uuid.NewString(), s.cfg.JWTSecret, s.cfg.JWTExpiry, s.cfg.JWTIssuer)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	s.LogInfo(ctx, "Session unlocked")
	return &dto.TokenResponse{Token: token}, nil
}
