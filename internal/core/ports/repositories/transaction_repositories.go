package repositories

import (
	"context"

	"github.com/openbooks/general_ledger_app/internal/core/domain"
)

// TransactionReader defines read operations for transactions and their lines.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction header (without lines).
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// FindLinesByTransactionID retrieves all lines of a single transaction,
	// ordered by line number ascending.
	FindLinesByTransactionID(ctx context.Context, transactionID int64) ([]domain.TransactionLine, error)

	// FindLinesByTransactionIDs retrieves lines for multiple transactions,
	// grouped by transaction id.
	FindLinesByTransactionIDs(ctx context.Context, transactionIDs []int64) (map[int64][]domain.TransactionLine, error)

	// ListTransactions returns a filtered, cursor-paginated page of transaction
	// headers ordered by date descending, id descending, plus a token for the
	// next page when one exists.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListTransactionLines returns all lines matching the filter, ordered by
	// parent transaction date descending, transaction id descending, line
	// number ascending.
	ListTransactionLines(ctx context.Context, filter domain.TransactionLineFilter) ([]domain.TransactionLine, error)
}

// TransactionWriter defines write operations for the transaction aggregate.
type TransactionWriter interface {
	// SaveTransaction persists the transaction and replaces its entire line set
	// in one storage transaction. A zero TransactionID inserts and assigns an
	// id; a non-zero id updates the existing header. Returns the persisted
	// transaction with its assigned id, lines excluded.
	SaveTransaction(ctx context.Context, txn domain.Transaction, lines []domain.TransactionLine) (*domain.Transaction, error)

	// DeleteTransaction removes the transaction and all of its lines atomically.
	DeleteTransaction(ctx context.Context, transactionID int64) error
}

// TransactionRepositoryFacade combines transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends the facade with transaction management.
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
