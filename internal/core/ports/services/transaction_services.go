package services

import (
	"context"

	"github.com/thariapp/thari_backend/internal/dto"
)

// TransactionSvcFacade defines operations on the transaction log.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	ListTransactions(ctx context.Context, filter dto.ListTransactionsFilter) ([]dto.TransactionResponse, error)
	DeleteTransaction(ctx context.Context, transactionID string) error
}
