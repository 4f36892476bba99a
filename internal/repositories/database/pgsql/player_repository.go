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

type PgxPlayerRepository struct {
	BaseRepository
}

// newPgxPlayerRepository creates a new repository for player data.
func newPgxPlayerRepository(pool *pgxpool.Pool) portsrepo.PlayerRepositoryFacade {
	return &PgxPlayerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PlayerRepositoryFacade = (*PgxPlayerRepository)(nil)

const playerColumns = "name, is_bank, created_at, last_updated_at"

func scanPlayer(row pgx.Row) (domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.Name, &p.IsBank, &p.CreatedAt, &p.LastUpdatedAt)
	return p, err
}

// SavePlayer inserts or updates a player keyed by its name.
func (r *PgxPlayerRepository) SavePlayer(ctx context.Context, player domain.Player) error {
	query := `
		INSERT INTO players (name, is_bank, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE SET
			is_bank = EXCLUDED.is_bank,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		player.Name,
		player.IsBank,
		player.CreatedAt,
		player.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save player %s: %w", player.Name, err)
	}
	return nil
}

// FindPlayerByName retrieves a player by its unique name.
func (r *PgxPlayerRepository) FindPlayerByName(ctx context.Context, name string) (*domain.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE name = $1;`
	player, err := scanPlayer(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find player by name %s: %w", name, err)
	}
	return &player, nil
}

// FindPlayersByNames retrieves the named players keyed by name. Missing names
// are absent from the map; the caller decides whether absence is an error.
func (r *PgxPlayerRepository) FindPlayersByNames(ctx context.Context, names []string) (map[string]domain.Player, error) {
	if len(names) == 0 {
		return map[string]domain.Player{}, nil
	}

	query := `SELECT ` + playerColumns + ` FROM players WHERE name = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, names)
	if err != nil {
		return nil, fmt.Errorf("failed to query players by names: %w", err)
	}
	defer rows.Close()

	players := make(map[string]domain.Player, len(names))
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		players[p.Name] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating player rows: %w", err)
	}
	return players, nil
}

// ListPlayers retrieves players matching the filter, ordered by name.
func (r *PgxPlayerRepository) ListPlayers(ctx context.Context, filter domain.PlayerFilter) ([]domain.Player, error) {
	f := query.New("name ASC").
		Pattern("name", filter.NamePattern, false).
		Flag("is_bank", filter.IsBank)

	sql, args := f.SQL(`SELECT ` + playerColumns + ` FROM players`)
	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Player, error) {
		return scanPlayer(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan players: %w", err)
	}
	return players, nil
}

// DeletePlayer removes a player; FKs from accounts and transaction lines
// block deletion while any reference remains.
func (r *PgxPlayerRepository) DeletePlayer(ctx context.Context, name string) error {
	query := `DELETE FROM players WHERE name = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, name)
	if err != nil {
		if tErr := translateConstraint(err); tErr != err {
			return tErr
		}
		return fmt.Errorf("failed to delete player %s: %w", name, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("player " + name + " not found for delete")
	}
	return nil
}
