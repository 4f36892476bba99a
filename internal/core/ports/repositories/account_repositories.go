package repositories

import (
	"context"

	"github.com/openbooks/general_ledger_app/internal/core/domain"
)

// AccountReader defines read operations for ledger accounts.
type AccountReader interface {
	// FindAccountByNumber retrieves an account by its number.
	FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error)

	// FindAccountByName retrieves an account by its unique name.
	FindAccountByName(ctx context.Context, name string) (*domain.Account, error)

	// FindAccountsByNumbers retrieves the numbered accounts keyed by number;
	// missing numbers are simply absent from the map.
	FindAccountsByNumbers(ctx context.Context, numbers []string) (map[string]domain.Account, error)

	// ListAccounts returns accounts matching the filter, ordered by number ascending.
	ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error)
}

// AccountWriter defines write operations for ledger accounts.
type AccountWriter interface {
	// SaveAccount upserts an account by its number.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account. Returns apperrors.ErrReferentialConstraint
	// while any transaction line references it.
	DeleteAccount(ctx context.Context, number string) error
}

// AccountRepositoryFacade combines account repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
