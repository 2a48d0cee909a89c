package services

import (
	"context"

	"github.com/thariapp/thari_backend/internal/dto"
)

// WalletSvcFacade defines wallet operations. Balances in responses are
// always recomputed from the transaction log, never read from stored state.
type WalletSvcFacade interface {
	CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*dto.WalletResponse, error)
	GetWallet(ctx context.Context, walletID string) (*dto.WalletResponse, error)
	ListWallets(ctx context.Context) ([]dto.WalletResponse, error)
	DeleteWallet(ctx context.Context, walletID string) error
}
