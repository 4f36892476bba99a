package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a single, balanced ledger event composed of at least
// two lines whose signed amounts sum to exactly zero.
type Transaction struct {
	TransactionID int64             `json:"transactionID"` // Assigned by storage on first save; 0 = unsaved
	Date          time.Time         `json:"date"`          // Date the event occurred
	Memo          string            `json:"memo"`          // Nullable user description
	Lines         []TransactionLine `json:"lines,omitempty"`
	AuditFields
}

// TransactionLine is one posting within a Transaction, affecting one account.
// Amount is signed: positive for debit-style increases, negative for
// credit-style decreases; the sign convention is the caller's.
type TransactionLine struct {
	TransactionID  int64           `json:"transactionID"`  // FK -> transactions.transaction_id (Not Null)
	LineNumber     int32           `json:"lineNumber"`     // Caller-chosen, unique within the transaction
	AccountNumber  string          `json:"accountNumber"`  // FK -> accounts.account_number (Not Null)
	PlayerName     *string         `json:"playerName"`     // Nullable FK -> players.name
	Amount         decimal.Decimal `json:"amount"`         // Signed; precise decimal type
	Memo           string          `json:"memo"`           // Nullable
	DateReconciled *time.Time      `json:"dateReconciled"` // Nil = unreconciled
	AuditFields
}

// LineKey is the composite identity of a transaction line.
type LineKey struct {
	TransactionID int64
	LineNumber    int32
}

// Key derives the composite key of the line.
func (l TransactionLine) Key() LineKey {
	return LineKey{TransactionID: l.TransactionID, LineNumber: l.LineNumber}
}

// Reconciled reports whether the line has been matched against an external
// statement.
func (l TransactionLine) Reconciled() bool {
	return l.DateReconciled != nil
}

// LinesTotal returns the exact decimal sum of the given line amounts.
func LinesTotal(lines []TransactionLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Amount)
	}
	return total
}
