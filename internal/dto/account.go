package dto

import (
	"time"

	"github.com/openbooks/general_ledger_app/internal/core/domain"
)

// SaveAccountRequest defines the data needed to create or update an account.
type SaveAccountRequest struct {
	Number        string  `json:"number" binding:"required,accountnumber"`
	Name          string  `json:"name" binding:"required"`
	ElementNumber int64   `json:"elementNumber" binding:"required,gt=0"`
	PlayerName    *string `json:"playerName"` // Optional, use pointer for nullability
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	Number        string    `json:"number"`
	Name          string    `json:"name"`
	ElementNumber int64     `json:"elementNumber"`
	PlayerName    *string   `json:"playerName"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		Number:        acc.Number,
		Name:          acc.Name,
		ElementNumber: acc.ElementNumber,
		PlayerName:    acc.PlayerName,
		CreatedAt:     acc.CreatedAt,
		LastUpdatedAt: acc.LastUpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Number        *string `form:"number"` // LIKE pattern, case-sensitive
	Name          *string `form:"name"`   // LIKE pattern, case-sensitive
	ElementNumber *int64  `form:"elementNumber"`
	PlayerName    *string `form:"playerName"` // Exact match
}

// Filter converts the query parameters to a domain filter.
func (p ListAccountsParams) Filter() domain.AccountFilter {
	return domain.AccountFilter{
		NumberPattern: p.Number,
		NamePattern:   p.Name,
		ElementNumber: p.ElementNumber,
		PlayerName:    p.PlayerName,
	}
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
