package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openbooks/general_ledger_app/internal/apperrors"
	"github.com/openbooks/general_ledger_app/internal/core/domain"
	portsrepo "github.com/openbooks/general_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/openbooks/general_ledger_app/internal/core/ports/services"
	"github.com/openbooks/general_ledger_app/internal/dto"
	"github.com/openbooks/general_ledger_app/internal/middleware"
)

// playerService provides operations over counterparties.
type playerService struct {
	playerRepo portsrepo.PlayerRepositoryFacade
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(playerRepo portsrepo.PlayerRepositoryFacade) portssvc.PlayerSvcFacade {
	return &playerService{playerRepo: playerRepo}
}

var _ portssvc.PlayerSvcFacade = (*playerService)(nil)

// SavePlayer creates or updates a player, keyed by its name.
func (s *playerService) SavePlayer(ctx context.Context, req dto.SavePlayerRequest) (*domain.Player, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	player := domain.Player{
		Name:   req.Name,
		IsBank: req.IsBank,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if prior, err := s.playerRepo.FindPlayerByName(ctx, req.Name); err == nil {
		player.CreatedAt = prior.CreatedAt
	}

	if err := s.playerRepo.SavePlayer(ctx, player); err != nil {
		logger.Error("Failed to save player", slog.String("player_name", req.Name), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save player: %w", err)
	}

	logger.Info("Player saved", slog.String("player_name", player.Name), slog.Bool("is_bank", player.IsBank))
	return &player, nil
}

// GetPlayerByName retrieves a single player.
func (s *playerService) GetPlayerByName(ctx context.Context, name string) (*domain.Player, error) {
	player, err := s.playerRepo.FindPlayerByName(ctx, name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find player", slog.String("player_name", name), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return player, nil
}

// ListPlayers retrieves players matching the optional filter.
func (s *playerService) ListPlayers(ctx context.Context, params dto.ListPlayersParams) ([]domain.Player, error) {
	players, err := s.playerRepo.ListPlayers(ctx, params.Filter())
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list players", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// DeletePlayer removes a player; blocked while an account or line references it.
func (s *playerService) DeletePlayer(ctx context.Context, name string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.playerRepo.DeletePlayer(ctx, name); err != nil {
		if errors.Is(err, apperrors.ErrReferentialConstraint) {
			logger.Warn("Player delete blocked by live references", slog.String("player_name", name))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete player", slog.String("player_name", name), slog.String("error", err.Error()))
		}
		return err
	}

	logger.Info("Player deleted", slog.String("player_name", name))
	return nil
}
