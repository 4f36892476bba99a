package dto

import (
	"time"

	"github.com/openbooks/general_ledger_app/internal/core/domain"
)

// SaveElementRequest defines the data needed to create or update an element.
type SaveElementRequest struct {
	Number int64  `json:"number" binding:"required,gt=0"`
	Name   string `json:"name" binding:"required"`
}

// ElementResponse defines the data returned for an element.
type ElementResponse struct {
	Number        int64     `json:"number"`
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToElementResponse converts a domain.Element to ElementResponse.
func ToElementResponse(e *domain.Element) ElementResponse {
	return ElementResponse{
		Number:        e.Number,
		Name:          e.Name,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListElementResponse converts a slice of domain.Element to response DTOs.
func ToListElementResponse(elements []domain.Element) []ElementResponse {
	res := make([]ElementResponse, len(elements))
	for i := range elements {
		res[i] = ToElementResponse(&elements[i])
	}
	return res
}

// ListElementsParams defines query parameters for listing elements.
// Pointer fields are nil when the parameter was not supplied.
type ListElementsParams struct {
	Name *string `form:"name"` // LIKE pattern, case-sensitive
}

// Filter converts the query parameters to a domain filter.
func (p ListElementsParams) Filter() domain.ElementFilter {
	return domain.ElementFilter{NamePattern: p.Name}
}
