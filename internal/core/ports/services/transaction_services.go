package services

import (
	"context"

	"github.com/openbooks/general_ledger_app/internal/core/domain"
	"github.com/openbooks/general_ledger_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions and lines.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction with its lines populated.
	GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactions retrieves a filtered, cursor-paginated page of
	// transactions, newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// ListTransactionLines retrieves all lines matching the filter.
	ListTransactionLines(ctx context.Context, params dto.ListTransactionLinesParams) ([]domain.TransactionLine, error)
}

// TransactionWriterSvc defines write operations for the transaction aggregate.
type TransactionWriterSvc interface {
	// SaveTransaction validates the aggregate (balance, line count, references)
	// and persists it atomically, replacing any prior line set.
	SaveTransaction(ctx context.Context, req dto.SaveTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes the transaction and all of its lines.
	DeleteTransaction(ctx context.Context, transactionID int64) error
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
