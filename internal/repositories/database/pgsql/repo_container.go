package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/openbooks/general_ledger_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	elementRepo := newPgxElementRepository(dbPool)
	playerRepo := newPgxPlayerRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ElementRepo:     elementRepo,
		PlayerRepo:      playerRepo,
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
	}
}
