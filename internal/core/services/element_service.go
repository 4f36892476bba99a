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

// elementService provides operations over accounting elements.
type elementService struct {
	elementRepo portsrepo.ElementRepositoryFacade
}

// NewElementService creates a new ElementService.
func NewElementService(elementRepo portsrepo.ElementRepositoryFacade) portssvc.ElementSvcFacade {
	return &elementService{elementRepo: elementRepo}
}

var _ portssvc.ElementSvcFacade = (*elementService)(nil)

// SaveElement creates or updates an element, keyed by its external number.
func (s *elementService) SaveElement(ctx context.Context, req dto.SaveElementRequest) (*domain.Element, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// The name is unique; reject a name held by a different element before the
	// storage constraint fires so the caller gets a typed error.
	existing, err := s.elementRepo.FindElementByName(ctx, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check element name uniqueness", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check element name: %w", err)
	}
	if existing != nil && existing.Number != req.Number {
		return nil, fmt.Errorf("%w: name %q belongs to element %d", ErrDuplicateKey, req.Name, existing.Number)
	}

	now := time.Now().UTC()
	element := domain.Element{
		Number: req.Number,
		Name:   req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if prior, err := s.elementRepo.FindElementByNumber(ctx, req.Number); err == nil {
		element.CreatedAt = prior.CreatedAt
	}

	if err := s.elementRepo.SaveElement(ctx, element); err != nil {
		logger.Error("Failed to save element", slog.Int64("element_number", req.Number), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save element: %w", err)
	}

	logger.Info("Element saved", slog.Int64("element_number", element.Number))
	return &element, nil
}

// GetElementByNumber retrieves a single element.
func (s *elementService) GetElementByNumber(ctx context.Context, number int64) (*domain.Element, error) {
	element, err := s.elementRepo.FindElementByNumber(ctx, number)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find element", slog.Int64("element_number", number), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return element, nil
}

// ListElements retrieves elements matching the optional filter.
func (s *elementService) ListElements(ctx context.Context, params dto.ListElementsParams) ([]domain.Element, error) {
	elements, err := s.elementRepo.ListElements(ctx, params.Filter())
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list elements", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list elements: %w", err)
	}
	return elements, nil
}

// DeleteElement removes an element; blocked while an account references it.
func (s *elementService) DeleteElement(ctx context.Context, number int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.elementRepo.DeleteElement(ctx, number); err != nil {
		if errors.Is(err, apperrors.ErrReferentialConstraint) {
			logger.Warn("Element delete blocked by referencing accounts", slog.Int64("element_number", number))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete element", slog.Int64("element_number", number), slog.String("error", err.Error()))
		}
		return err
	}

	logger.Info("Element deleted", slog.Int64("element_number", number))
	return nil
}
