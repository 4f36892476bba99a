package dto

import (
	"time"

	"github.com/openbooks/general_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveTransactionLineRequest defines one posting within a transaction save.
type SaveTransactionLineRequest struct {
	LineNumber     int32           `json:"lineNumber"` // Caller-chosen; 0 is a valid first line number
	AccountNumber  string          `json:"accountNumber" binding:"required,accountnumber"`
	PlayerName     *string         `json:"playerName"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	Memo           string          `json:"memo"`
	DateReconciled *time.Time      `json:"dateReconciled"`
}

// SaveTransactionRequest defines the full transaction aggregate to persist.
// A zero TransactionID creates a new transaction; a non-zero one replaces the
// stored header and the entire line set of that transaction.
type SaveTransactionRequest struct {
	TransactionID int64                        `json:"transactionID"`
	Date          time.Time                    `json:"date" binding:"required"` // Calendar date; time-of-day is discarded on save
	Memo          string                       `json:"memo"`
	Lines         []SaveTransactionLineRequest `json:"lines" binding:"required,dive"`
}

// ToDomainLines converts the request lines to domain lines (identity fields
// are filled in by the service).
func (r SaveTransactionRequest) ToDomainLines() []domain.TransactionLine {
	lines := make([]domain.TransactionLine, len(r.Lines))
	for i, l := range r.Lines {
		lines[i] = domain.TransactionLine{
			TransactionID:  r.TransactionID,
			LineNumber:     l.LineNumber,
			AccountNumber:  l.AccountNumber,
			PlayerName:     l.PlayerName,
			Amount:         l.Amount,
			Memo:           l.Memo,
			DateReconciled: l.DateReconciled,
		}
	}
	return lines
}

// TransactionLineResponse defines the data returned for a transaction line.
type TransactionLineResponse struct {
	TransactionID  int64           `json:"transactionID"`
	LineNumber     int32           `json:"lineNumber"`
	AccountNumber  string          `json:"accountNumber"`
	PlayerName     *string         `json:"playerName"`
	Amount         decimal.Decimal `json:"amount"`
	Memo           string          `json:"memo"`
	DateReconciled *time.Time      `json:"dateReconciled"`
	Reconciled     bool            `json:"reconciled"`
}

// ToTransactionLineResponse converts a domain line to its response DTO.
func ToTransactionLineResponse(l *domain.TransactionLine) TransactionLineResponse {
	return TransactionLineResponse{
		TransactionID:  l.TransactionID,
		LineNumber:     l.LineNumber,
		AccountNumber:  l.AccountNumber,
		PlayerName:     l.PlayerName,
		Amount:         l.Amount,
		Memo:           l.Memo,
		DateReconciled: l.DateReconciled,
		Reconciled:     l.Reconciled(),
	}
}

// ToTransactionLineResponses converts a slice of domain lines to DTOs.
func ToTransactionLineResponses(lines []domain.TransactionLine) []TransactionLineResponse {
	res := make([]TransactionLineResponse, len(lines))
	for i := range lines {
		res[i] = ToTransactionLineResponse(&lines[i])
	}
	return res
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID int64                     `json:"transactionID"`
	Date          time.Time                 `json:"date"`
	Memo          string                    `json:"memo"`
	Lines         []TransactionLineResponse `json:"lines,omitempty"`
	CreatedAt     time.Time                 `json:"createdAt"`
	LastUpdatedAt time.Time                 `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID: t.TransactionID,
		Date:          t.Date,
		Memo:          t.Memo,
		CreatedAt:     t.CreatedAt,
		LastUpdatedAt: t.LastUpdatedAt,
	}
	if t.Lines != nil {
		resp.Lines = ToTransactionLineResponses(t.Lines)
	}
	return resp
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	DateFrom     *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo       *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Memo         *string    `form:"memo"` // ILIKE pattern, case-insensitive
	IncludeLines bool       `form:"includeLines"`
	Limit        int        `form:"limit,default=50"`
	NextToken    *string    `form:"nextToken"`
}

// Filter converts the query parameters to a domain filter.
func (p ListTransactionsParams) Filter() domain.TransactionFilter {
	return domain.TransactionFilter{
		DateFrom:    p.DateFrom,
		DateTo:      p.DateTo,
		MemoPattern: p.Memo,
	}
}

// ListTransactionsResponse wraps a page of transactions with the next-page token.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ListTransactionLinesParams defines query parameters for the line finder.
type ListTransactionLinesParams struct {
	DateFrom   *time.Time `form:"dateFrom" time_format:"2006-01-02"`
	DateTo     *time.Time `form:"dateTo" time_format:"2006-01-02"`
	Account    *string    `form:"account"` // Exact account number
	Player     *string    `form:"player"`  // Exact player name
	Reconciled *bool      `form:"reconciled"`
	Memo       *string    `form:"memo"` // ILIKE pattern, case-insensitive
}

// Filter converts the query parameters to a domain filter.
func (p ListTransactionLinesParams) Filter() domain.TransactionLineFilter {
	return domain.TransactionLineFilter{
		DateFrom:      p.DateFrom,
		DateTo:        p.DateTo,
		AccountNumber: p.Account,
		PlayerName:    p.Player,
		Reconciled:    p.Reconciled,
		MemoPattern:   p.Memo,
	}
}

// ListTransactionLinesResponse wraps the list of matching lines.
type ListTransactionLinesResponse struct {
	Lines []TransactionLineResponse `json:"lines"`
}
