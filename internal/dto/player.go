package dto

import (
	"time"

	"github.com/openbooks/general_ledger_app/internal/core/domain"
)

// SavePlayerRequest defines the data needed to create or update a player.
type SavePlayerRequest struct {
	Name   string `json:"name" binding:"required"`
	IsBank bool   `json:"isBank"`
}

// PlayerResponse defines the data returned for a player.
type PlayerResponse struct {
	Name          string    `json:"name"`
	IsBank        bool      `json:"isBank"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToPlayerResponse converts a domain.Player to PlayerResponse.
func ToPlayerResponse(p *domain.Player) PlayerResponse {
	return PlayerResponse{
		Name:          p.Name,
		IsBank:        p.IsBank,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListPlayerResponse converts a slice of domain.Player to response DTOs.
func ToListPlayerResponse(players []domain.Player) []PlayerResponse {
	res := make([]PlayerResponse, len(players))
	for i := range players {
		res[i] = ToPlayerResponse(&players[i])
	}
	return res
}

// ListPlayersParams defines query parameters for listing players.
type ListPlayersParams struct {
	Name   *string `form:"name"` // LIKE pattern, case-sensitive
	IsBank *bool   `form:"isBank"`
}

// Filter converts the query parameters to a domain filter.
func (p ListPlayersParams) Filter() domain.PlayerFilter {
	return domain.PlayerFilter{NamePattern: p.Name, IsBank: p.IsBank}
}
