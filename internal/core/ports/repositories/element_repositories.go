package repositories

import (
	"context"

	"github.com/openbooks/general_ledger_app/internal/core/domain"
)

// ElementReader defines read operations for accounting elements.
type ElementReader interface {
	// FindElementByNumber retrieves an element by its number.
	// Returns apperrors.ErrNotFound when the number does not resolve.
	FindElementByNumber(ctx context.Context, number int64) (*domain.Element, error)

	// FindElementByName retrieves an element by its unique name.
	FindElementByName(ctx context.Context, name string) (*domain.Element, error)

	// ListElements returns elements matching the filter, ordered by number ascending.
	ListElements(ctx context.Context, filter domain.ElementFilter) ([]domain.Element, error)
}

// ElementWriter defines write operations for accounting elements.
type ElementWriter interface {
	// SaveElement upserts an element by its number.
	SaveElement(ctx context.Context, element domain.Element) error

	// DeleteElement removes an element. Returns apperrors.ErrReferentialConstraint
	// while any account references it.
	DeleteElement(ctx context.Context, number int64) error
}

// ElementRepositoryFacade combines element repository interfaces.
type ElementRepositoryFacade interface {
	ElementReader
	ElementWriter
}
