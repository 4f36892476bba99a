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

// transactionService provides operations over the transaction aggregate.
// Every write goes through full integrity validation before it reaches the
// repository.
type transactionService struct {
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountReader
	playerRepo      portsrepo.PlayerReader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountReader, playerRepo portsrepo.PlayerReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		playerRepo:      playerRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// SaveTransaction validates the aggregate and persists it atomically. The
// stored line set is fully replaced by the request's lines; nothing is written
// when validation fails.
func (s *transactionService) SaveTransaction(ctx context.Context, req dto.SaveTransactionRequest) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	lines := req.ToDomainLines()

	accounts, players, err := s.resolveLineReferences(ctx, lines)
	if err != nil {
		return nil, err
	}

	if err := validateTransactionLines(lines, accounts, players); err != nil {
		logger.Warn("Transaction rejected by validation",
			slog.Int64("transaction_id", req.TransactionID),
			slog.Int("line_count", len(lines)),
			slog.String("error", err.Error()))
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: req.TransactionID,
		Date:          calendarDate(req.Date),
		Memo:          req.Memo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	for i := range lines {
		lines[i].AuditFields = txn.AuditFields
	}

	if txn.TransactionID != 0 {
		prior, err := s.transactionRepo.FindTransactionByID(ctx, txn.TransactionID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
			logger.Error("Failed to load transaction for update", slog.Int64("transaction_id", txn.TransactionID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to load transaction: %w", err)
		}
		txn.CreatedAt = prior.CreatedAt
	}

	saved, err := s.transactionRepo.SaveTransaction(ctx, txn, lines)
	if err != nil {
		logger.Error("Failed to save transaction", slog.Int64("transaction_id", txn.TransactionID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	for i := range lines {
		lines[i].TransactionID = saved.TransactionID
	}
	saved.Lines = lines

	logger.Info("Transaction saved",
		slog.Int64("transaction_id", saved.TransactionID),
		slog.Int("line_count", len(lines)))
	return saved, nil
}

// resolveLineReferences fetches the accounts and players named by the lines so
// the validator can check every reference in one pass.
// calendarDate drops the time-of-day component. Transactions are dated by
// calendar day, so a timestamped input must not leak past a day-bounded
// filter.
func calendarDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *transactionService) resolveLineReferences(ctx context.Context, lines []domain.TransactionLine) (map[string]domain.Account, map[string]domain.Player, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accountSet := make(map[string]struct{})
	playerSet := make(map[string]struct{})
	for i := range lines {
		accountSet[lines[i].AccountNumber] = struct{}{}
		if lines[i].PlayerName != nil {
			playerSet[*lines[i].PlayerName] = struct{}{}
		}
	}

	accountNumbers := make([]string, 0, len(accountSet))
	for number := range accountSet {
		accountNumbers = append(accountNumbers, number)
	}
	accounts, err := s.accountRepo.FindAccountsByNumbers(ctx, accountNumbers)
	if err != nil {
		logger.Error("Failed to resolve accounts for transaction lines", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to resolve accounts: %w", err)
	}

	players := map[string]domain.Player{}
	if len(playerSet) > 0 {
		playerNames := make([]string, 0, len(playerSet))
		for name := range playerSet {
			playerNames = append(playerNames, name)
		}
		players, err = s.playerRepo.FindPlayersByNames(ctx, playerNames)
		if err != nil {
			logger.Error("Failed to resolve players for transaction lines", slog.String("error", err.Error()))
			return nil, nil, fmt.Errorf("failed to resolve players: %w", err)
		}
	}

	return accounts, players, nil
}

// GetTransactionByID retrieves a transaction with its lines populated.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction", slog.Int64("transaction_id", transactionID), slog.String("error", err.Error()))
		}
		return nil, err
	}

	lines, err := s.transactionRepo.FindLinesByTransactionID(ctx, transactionID)
	if err != nil {
		logger.Error("Failed to fetch transaction lines", slog.Int64("transaction_id", transactionID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch transaction lines: %w", err)
	}
	txn.Lines = lines

	return txn, nil
}

// ListTransactions retrieves a filtered, cursor-paginated page of
// transactions. Lines are batch-fetched only when the caller asks for them.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txns, nextToken, err := s.transactionRepo.ListTransactions(ctx, params.Filter(), params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if params.IncludeLines && len(txns) > 0 {
		ids := make([]int64, len(txns))
		for i := range txns {
			ids[i] = txns[i].TransactionID
		}
		linesByID, err := s.transactionRepo.FindLinesByTransactionIDs(ctx, ids)
		if err != nil {
			logger.Error("Failed to fetch lines for transaction page", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to fetch transaction lines: %w", err)
		}
		for i := range txns {
			txns[i].Lines = linesByID[txns[i].TransactionID]
		}
	}

	resp := &dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, len(txns)),
		NextToken:    nextToken,
	}
	for i := range txns {
		resp.Transactions[i] = dto.ToTransactionResponse(&txns[i])
	}
	return resp, nil
}

// ListTransactionLines retrieves all lines matching the filter.
func (s *transactionService) ListTransactionLines(ctx context.Context, params dto.ListTransactionLinesParams) ([]domain.TransactionLine, error) {
	lines, err := s.transactionRepo.ListTransactionLines(ctx, params.Filter())
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list transaction lines", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list transaction lines: %w", err)
	}
	return lines, nil
}

// DeleteTransaction removes the transaction and all of its lines atomically.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete transaction", slog.Int64("transaction_id", transactionID), slog.String("error", err.Error()))
		}
		return err
	}

	logger.Info("Transaction deleted", slog.Int64("transaction_id", transactionID))
	return nil
}
