package services

import (
	"context"

	"github.com/openbooks/general_ledger_app/internal/core/domain"
	"github.com/openbooks/general_ledger_app/internal/dto"
)

// ElementReaderSvc defines read operations for accounting elements.
type ElementReaderSvc interface {
	// GetElementByNumber retrieves a specific element by its number.
	GetElementByNumber(ctx context.Context, number int64) (*domain.Element, error)

	// ListElements retrieves elements matching the filter, ordered by number.
	ListElements(ctx context.Context, params dto.ListElementsParams) ([]domain.Element, error)
}

// ElementWriterSvc defines write operations for accounting elements.
type ElementWriterSvc interface {
	// SaveElement creates or updates an element by its number.
	SaveElement(ctx context.Context, req dto.SaveElementRequest) (*domain.Element, error)

	// DeleteElement removes an element unless an account still references it.
	DeleteElement(ctx context.Context, number int64) error
}

// ElementSvcFacade combines all element-related service interfaces.
type ElementSvcFacade interface {
	ElementReaderSvc
	ElementWriterSvc
}
