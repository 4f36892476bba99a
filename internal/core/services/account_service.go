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

// accountService provides operations over the chart of accounts.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	elementRepo portsrepo.ElementReader
	playerRepo  portsrepo.PlayerReader
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, elementRepo portsrepo.ElementReader, playerRepo portsrepo.PlayerReader) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		elementRepo: elementRepo,
		playerRepo:  playerRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// SaveAccount validates and creates or updates an account by its number.
// The referenced element must exist, the optional player must exist, and the
// unique name must not belong to a different account.
func (s *accountService) SaveAccount(ctx context.Context, req dto.SaveAccountRequest) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	account := domain.Account{
		Number:        req.Number,
		Name:          req.Name,
		ElementNumber: req.ElementNumber,
		PlayerName:    req.PlayerName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	elementExists := true
	if _, err := s.elementRepo.FindElementByNumber(ctx, req.ElementNumber); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to resolve element for account", slog.Int64("element_number", req.ElementNumber), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to resolve element: %w", err)
		}
		elementExists = false
	}

	conflicting, err := s.accountRepo.FindAccountByName(ctx, req.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to check account name uniqueness", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check account name: %w", err)
	}

	if err := validateAccount(account, elementExists, conflicting); err != nil {
		logger.Warn("Account rejected by validation", slog.String("account_number", req.Number), slog.String("error", err.Error()))
		return nil, err
	}

	if req.PlayerName != nil {
		if _, err := s.playerRepo.FindPlayerByName(ctx, *req.PlayerName); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: player %s", ErrDanglingPlayerReference, *req.PlayerName)
			}
			logger.Error("Failed to resolve player for account", slog.String("player_name", *req.PlayerName), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to resolve player: %w", err)
		}
	}

	if prior, err := s.accountRepo.FindAccountByNumber(ctx, req.Number); err == nil {
		account.CreatedAt = prior.CreatedAt
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("account_number", req.Number), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account saved", slog.String("account_number", account.Number))
	return &account, nil
}

// GetAccountByNumber retrieves a single account.
func (s *accountService) GetAccountByNumber(ctx context.Context, number string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, number)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find account", slog.String("account_number", number), slog.String("error", err.Error()))
		}
		return nil, err
	}
	return account, nil
}

// GetAccountsByNumbers retrieves the numbered accounts keyed by number.
func (s *accountService) GetAccountsByNumbers(ctx context.Context, numbers []string) (map[string]domain.Account, error) {
	accounts, err := s.accountRepo.FindAccountsByNumbers(ctx, numbers)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to find accounts by numbers", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	return accounts, nil
}

// ListAccounts retrieves accounts matching the optional filter.
func (s *accountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, params.Filter())
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list accounts", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// DeleteAccount removes an account; blocked while a line references it.
func (s *accountService) DeleteAccount(ctx context.Context, number string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.accountRepo.DeleteAccount(ctx, number); err != nil {
		if errors.Is(err, apperrors.ErrReferentialConstraint) {
			logger.Warn("Account delete blocked by referencing lines", slog.String("account_number", number))
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete account", slog.String("account_number", number), slog.String("error", err.Error()))
		}
		return err
	}

	logger.Info("Account deleted", slog.String("account_number", number))
	return nil
}
