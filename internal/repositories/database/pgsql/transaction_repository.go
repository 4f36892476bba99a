package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openbooks/general_ledger_app/internal/apperrors"
	"github.com/openbooks/general_ledger_app/internal/core/domain"
	portsrepo "github.com/openbooks/general_ledger_app/internal/core/ports/repositories"
	"github.com/openbooks/general_ledger_app/internal/query"
	"github.com/openbooks/general_ledger_app/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction and
// line data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = "transaction_id, transaction_date, memo, created_at, last_updated_at"

const lineColumns = "transaction_id, line_number, account_number, player_name, amount, memo, date_reconciled, created_at, last_updated_at"

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(&t.TransactionID, &t.Date, &t.Memo, &t.CreatedAt, &t.LastUpdatedAt)
	return t, err
}

func scanLine(row pgx.Row) (domain.TransactionLine, error) {
	var l domain.TransactionLine
	err := row.Scan(
		&l.TransactionID,
		&l.LineNumber,
		&l.AccountNumber,
		&l.PlayerName,
		&l.Amount,
		&l.Memo,
		&l.DateReconciled,
		&l.CreatedAt,
		&l.LastUpdatedAt,
	)
	return l, err
}

// SaveTransaction persists the transaction header and replaces its entire
// line set within one database transaction. A zero TransactionID inserts and
// lets the sequence assign the id; a non-zero id updates the existing header.
// Nothing is left half-written: any failure rolls the whole aggregate back.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, lines []domain.TransactionLine) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if txn.TransactionID == 0 {
		insertQuery := `
			INSERT INTO transactions (transaction_date, memo, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4)
			RETURNING transaction_id;
		`
		err = tx.QueryRow(ctx, insertQuery,
			txn.Date,
			txn.Memo,
			txn.CreatedAt,
			txn.LastUpdatedAt,
		).Scan(&txn.TransactionID)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to insert transaction", err)
		}
	} else {
		updateQuery := `
			UPDATE transactions
			SET transaction_date = $2,
			    memo = $3,
			    last_updated_at = $4
			WHERE transaction_id = $1;
		`
		cmdTag, err := tx.Exec(ctx, updateQuery,
			txn.TransactionID,
			txn.Date,
			txn.Memo,
			txn.LastUpdatedAt,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to update transaction %d", txn.TransactionID), err)
		}
		if cmdTag.RowsAffected() == 0 {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %d not found for update", txn.TransactionID))
		}

		// Replace semantics: the stored line set is whatever the caller sent.
		if _, err := tx.Exec(ctx, `DELETE FROM transaction_lines WHERE transaction_id = $1;`, txn.TransactionID); err != nil {
			return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to clear lines for transaction %d", txn.TransactionID), err)
		}
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO transaction_lines (transaction_id, line_number, account_number, player_name, amount, memo, date_reconciled, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, line := range lines {
		batch.Queue(lineQuery,
			txn.TransactionID,
			line.LineNumber,
			line.AccountNumber,
			line.PlayerName,
			line.Amount,
			line.Memo,
			line.DateReconciled,
			line.CreatedAt,
			line.LastUpdatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		if tErr := translateConstraint(err); tErr != err {
			return nil, tErr
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to insert lines for transaction %d", txn.TransactionID), err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	txn.Lines = nil
	return &txn, nil
}

// FindTransactionByID retrieves a transaction header without its lines.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %d: %w", transactionID, err)
	}
	return &txn, nil
}

// FindLinesByTransactionID retrieves all lines of a transaction, ordered by
// line number.
func (r *PgxTransactionRepository) FindLinesByTransactionID(ctx context.Context, transactionID int64) ([]domain.TransactionLine, error) {
	query := `
		SELECT ` + lineColumns + `
		FROM transaction_lines
		WHERE transaction_id = $1
		ORDER BY line_number;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for transaction %d: %w", transactionID, err)
	}
	defer rows.Close()

	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TransactionLine, error) {
		return scanLine(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan lines for transaction %d: %w", transactionID, err)
	}
	return lines, nil
}

// FindLinesByTransactionIDs retrieves lines for multiple transactions in one
// round trip, grouped by transaction id. Transactions without lines get an
// empty slice.
func (r *PgxTransactionRepository) FindLinesByTransactionIDs(ctx context.Context, transactionIDs []int64) (map[int64][]domain.TransactionLine, error) {
	if len(transactionIDs) == 0 {
		return map[int64][]domain.TransactionLine{}, nil
	}

	query := `
		SELECT ` + lineColumns + `
		FROM transaction_lines
		WHERE transaction_id = ANY($1)
		ORDER BY transaction_id, line_number;
	`
	rows, err := r.Pool.Query(ctx, query, transactionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for transaction batch: %w", err)
	}
	defer rows.Close()

	linesMap := make(map[int64][]domain.TransactionLine, len(transactionIDs))
	for rows.Next() {
		l, err := scanLine(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line row during batch fetch: %w", err)
		}
		linesMap[l.TransactionID] = append(linesMap[l.TransactionID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating line rows during batch fetch: %w", err)
	}

	for _, id := range transactionIDs {
		if _, exists := linesMap[id]; !exists {
			linesMap[id] = []domain.TransactionLine{}
		}
	}
	return linesMap, nil
}

// ListTransactions retrieves a filtered, cursor-paginated page of transaction
// headers, newest first with id as tie-breaker.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 50
	}
	// One extra row decides whether a next page exists.
	fetchLimit := limit + 1

	f := query.New("transaction_date DESC, transaction_id DESC").
		DateRange("transaction_date", filter.DateFrom, filter.DateTo).
		Pattern("memo", filter.MemoPattern, true)

	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Tuple comparison matches the date DESC, id DESC ordering.
		f.Append("(transaction_date, transaction_id) < (" + f.Bind(lastDate) + ", " + f.Bind(lastID) + ")")
	}

	limitPlaceholder := f.Bind(fetchLimit)
	sql, args := f.SQL(`SELECT ` + transactionColumns + ` FROM transactions`)
	sql += " LIMIT " + limitPlaceholder

	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := make([]domain.Transaction, 0, fetchLimit)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var nextTokenVal *string
	if len(txns) > limit {
		last := txns[limit-1]
		token := pagination.EncodeToken(last.Date, last.TransactionID)
		nextTokenVal = &token
		txns = txns[:limit]
	}

	return txns, nextTokenVal, nil
}

// ListTransactionLines retrieves all lines matching the filter, joined to
// their parent transaction for the date bounds and ordering.
func (r *PgxTransactionRepository) ListTransactionLines(ctx context.Context, filter domain.TransactionLineFilter) ([]domain.TransactionLine, error) {
	f := query.New("t.transaction_date DESC, l.transaction_id DESC, l.line_number ASC").
		DateRange("t.transaction_date", filter.DateFrom, filter.DateTo).
		ExactText("l.account_number", filter.AccountNumber).
		ExactText("l.player_name", filter.PlayerName).
		PresenceFlag("l.date_reconciled", filter.Reconciled).
		Pattern("l.memo", filter.MemoPattern, true)

	baseSelect := `
		SELECT l.transaction_id, l.line_number, l.account_number, l.player_name, l.amount, l.memo, l.date_reconciled, l.created_at, l.last_updated_at
		FROM transaction_lines l
		JOIN transactions t ON l.transaction_id = t.transaction_id`

	sql, args := f.SQL(baseSelect)
	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction lines: %w", err)
	}
	defer rows.Close()

	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TransactionLine, error) {
		return scanLine(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction lines: %w", err)
	}
	return lines, nil
}

// DeleteTransaction removes the transaction; its lines go with it via the
// cascading FK.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	query := `DELETE FROM transactions WHERE transaction_id = $1;`
	cmdTag, err := r.Pool.Exec(ctx, query, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("transaction %d not found for delete", transactionID))
	}
	return nil
}
