package repositories

import (
	"context"

	"github.com/openbooks/general_ledger_app/internal/core/domain"
)

// PlayerReader defines read operations for counterparties.
type PlayerReader interface {
	// FindPlayerByName retrieves a player by its unique name.
	FindPlayerByName(ctx context.Context, name string) (*domain.Player, error)

	// FindPlayersByNames retrieves the named players keyed by name; missing
	// names are simply absent from the map.
	FindPlayersByNames(ctx context.Context, names []string) (map[string]domain.Player, error)

	// ListPlayers returns players matching the filter, ordered by name ascending.
	ListPlayers(ctx context.Context, filter domain.PlayerFilter) ([]domain.Player, error)
}

// PlayerWriter defines write operations for counterparties.
type PlayerWriter interface {
	// SavePlayer upserts a player by its name.
	SavePlayer(ctx context.Context, player domain.Player) error

	// DeletePlayer removes a player. Returns apperrors.ErrReferentialConstraint
	// while any account or transaction line references it.
	DeletePlayer(ctx context.Context, name string) error
}

// PlayerRepositoryFacade combines player repository interfaces.
type PlayerRepositoryFacade interface {
	PlayerReader
	PlayerWriter
}
