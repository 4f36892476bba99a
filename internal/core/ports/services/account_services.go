package services

import (
	"context"

	"github.com/openbooks/general_ledger_app/internal/core/domain"
	"github.com/openbooks/general_ledger_app/internal/dto"
)

// AccountReaderSvc defines read operations for ledger accounts.
type AccountReaderSvc interface {
	// GetAccountByNumber retrieves a specific account by its number.
	GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error)

	// GetAccountsByNumbers retrieves the numbered accounts keyed by number.
	GetAccountsByNumbers(ctx context.Context, numbers []string) (map[string]domain.Account, error)

	// ListAccounts retrieves accounts matching the filter, ordered by number.
	ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for ledger accounts.
type AccountWriterSvc interface {
	// SaveAccount validates and creates or updates an account by its number.
	SaveAccount(ctx context.Context, req dto.SaveAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account unless a line still references it.
	DeleteAccount(ctx context.Context, number string) error
}

// AccountSvcFacade combines all account-related service interfaces.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
