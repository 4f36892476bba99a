package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbooks/general_ledger_app/internal/apperrors"
	"github.com/openbooks/general_ledger_app/internal/core/domain"
	portsrepo "github.com/openbooks/general_ledger_app/internal/core/ports/repositories"
	"github.com/openbooks/general_ledger_app/internal/query"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = "number, name, element_number, player_name, created_at, last_updated_at"

func scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.Number, &a.Name, &a.ElementNumber, &a.PlayerName, &a.CreatedAt, &a.LastUpdatedAt)
	return a, err
}

// SaveAccount inserts or updates an account keyed by its number. Foreign keys
// on element_number and player_name surface as ErrReferentialConstraint, the
// unique name as ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (number, name, element_number, player_name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (number) DO UPDATE SET
			name = EXCLUDED.name,
			element_number = EXCLUDED.element_number,
			player_name = EXCLUDED.player_name,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		account.Number,
		account.Name,
		account.ElementNumber,
		account.PlayerName,
		account.CreatedAt,
		account.LastUpdatedAt,
	)
	if err != nil {
		if tErr := translateConstraint(err); tErr != err {
			return tErr
		}
		return fmt.Errorf("failed to save account %s: %w", account.Number, err)
	}
	return nil
}

// FindAccountByNumber retrieves an account by its number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE number = $1;`
	account, err := scanAccount(r.Pool.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by number %s: %w", number, err)
	}
	return &account, nil
}

// FindAccountByName retrieves an account by its unique name.
func (r *PgxAccountRepository) FindAccountByName(ctx context.Context, name string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE name = $1;`
	account, err := scanAccount(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by name %s: %w", name, err)
	}
	return &account, nil
}

// FindAccountsByNumbers retrieves the numbered accounts keyed by number.
// Missing numbers are absent from the map.
func (r *PgxAccountRepository) FindAccountsByNumbers(ctx context.Context, numbers []string) (map[string]domain.Account, error) {
	if len(numbers) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE number = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, numbers)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by numbers: %w", err)
	}
	defer rows.Close()

	accounts := make(map[string]domain.Account, len(numbers))
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts[a.Number] = a
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves accounts matching the filter, ordered by number.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, filter domain.AccountFilter) ([]domain.Account, error) {
	f := query.New("number ASC").
		Pattern("number", filter.NumberPattern, false).
		Pattern("name", filter.NamePattern, false).
		ExactInt("element_number", filter.ElementNumber).
		ExactText("player_name", filter.PlayerName)

	sql, args := f.SQL(`SELECT ` + accountColumns + ` FROM accounts`)
	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return accounts, nil
}

// DeleteAccount removes an account; the transaction_lines FK blocks deletion
// while any line still references the account.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, number string) error {
	query := `DELETE FROM accounts WHERE number = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, number)
	if err != nil {
		if tErr := translateConstraint(err); tErr != err {
			return tErr
		}
		return fmt.Errorf("failed to delete account %s: %w", number, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account " + number + " not found for delete")
	}
	return nil
}
