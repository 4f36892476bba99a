package services

import (
	"context"

	"github.com/openbooks/general_ledger_app/internal/core/domain"
	"github.com/openbooks/general_ledger_app/internal/dto"
)

// PlayerReaderSvc defines read operations for counterparties.
type PlayerReaderSvc interface {
	// GetPlayerByName retrieves a specific player by its name.
	GetPlayerByName(ctx context.Context, name string) (*domain.Player, error)

	// ListPlayers retrieves players matching the filter, ordered by name.
	ListPlayers(ctx context.Context, params dto.ListPlayersParams) ([]domain.Player, error)
}

// PlayerWriterSvc defines write operations for counterparties.
type PlayerWriterSvc interface {
	// SavePlayer creates or updates a player by its name.
	SavePlayer(ctx context.Context, req dto.SavePlayerRequest) (*domain.Player, error)

	// DeletePlayer removes a player unless an account or line still references it.
	DeletePlayer(ctx context.Context, name string) error
}

// PlayerSvcFacade combines all player-related service interfaces.
type PlayerSvcFacade interface {
	PlayerReaderSvc
	PlayerWriterSvc
}
