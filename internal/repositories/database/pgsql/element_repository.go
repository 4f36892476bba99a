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

type PgxElementRepository struct {
	BaseRepository
}

// newPgxElementRepository creates a new repository for element data.
func newPgxElementRepository(pool *pgxpool.Pool) portsrepo.ElementRepositoryFacade {
	return &PgxElementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ElementRepositoryFacade = (*PgxElementRepository)(nil)

const elementColumns = "number, name, created_at, last_updated_at"

func scanElement(row pgx.Row) (domain.Element, error) {
	var e domain.Element
	err := row.Scan(&e.Number, &e.Name, &e.CreatedAt, &e.LastUpdatedAt)
	return e, err
}

// SaveElement inserts or updates an element keyed by its number.
func (r *PgxElementRepository) SaveElement(ctx context.Context, element domain.Element) error {
	query := `
		INSERT INTO elements (number, name, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (number) DO UPDATE SET
			name = EXCLUDED.name,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		element.Number,
		element.Name,
		element.CreatedAt,
		element.LastUpdatedAt,
	)
	if err != nil {
		if tErr := translateConstraint(err); tErr != err {
			return tErr
		}
		return fmt.Errorf("failed to save element %d: %w", element.Number, err)
	}
	return nil
}

// FindElementByNumber retrieves an element by its number.
func (r *PgxElementRepository) FindElementByNumber(ctx context.Context, number int64) (*domain.Element, error) {
	query := `SELECT ` + elementColumns + ` FROM elements WHERE number = $1;`
	element, err := scanElement(r.Pool.QueryRow(ctx, query, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find element by number %d: %w", number, err)
	}
	return &element, nil
}

// FindElementByName retrieves an element by its unique name.
func (r *PgxElementRepository) FindElementByName(ctx context.Context, name string) (*domain.Element, error) {
	query := `SELECT ` + elementColumns + ` FROM elements WHERE name = $1;`
	element, err := scanElement(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find element by name %s: %w", name, err)
	}
	return &element, nil
}

// ListElements retrieves elements matching the filter, ordered by number.
func (r *PgxElementRepository) ListElements(ctx context.Context, filter domain.ElementFilter) ([]domain.Element, error) {
	f := query.New("number ASC").
		Pattern("name", filter.NamePattern, false)

	sql, args := f.SQL(`SELECT ` + elementColumns + ` FROM elements`)
	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query elements: %w", err)
	}
	defer rows.Close()

	elements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Element, error) {
		return scanElement(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan elements: %w", err)
	}
	return elements, nil
}

// DeleteElement removes an element; the accounts FK blocks deletion while
// any account still references the element.
func (r *PgxElementRepository) DeleteElement(ctx context.Context, number int64) error {
	query := `DELETE FROM elements WHERE number = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, number)
	if err != nil {
		if tErr := translateConstraint(err); tErr != err {
			return tErr
		}
		return fmt.Errorf("failed to delete element %d: %w", number, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("element %d not found for delete", number))
	}
	return nil
}
