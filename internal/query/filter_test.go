package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string        { return &s }
func boolPtr(b bool) *bool           { return &b }
func intPtr(i int64) *int64          { return &i }
func timePtr(t time.Time) *time.Time { return &t }

func TestNoPredicatesSelectsEverything(t *testing.T) {
	f := New("account_number ASC").
		ExactText("account_number", nil).
		Pattern("name", nil, false).
		ExactInt("element_number", nil).
		Flag("is_bank", nil).
		DateRange("transaction_date", nil, nil).
		PresenceFlag("date_reconciled", nil)

	sql, args := f.SQL("SELECT * FROM accounts")
	assert.Equal(t, "SELECT * FROM accounts ORDER BY account_number ASC", sql)
	assert.Empty(t, args)
	assert.Empty(t, f.Where())
}

func TestPredicatesCombineWithAnd(t *testing.T) {
	f := New("name ASC").
		ExactText("account_number", strPtr("1000")).
		ExactText("player_name", strPtr("ACME"))

	sql, args := f.SQL("SELECT * FROM lines")
	assert.Equal(t, "SELECT * FROM lines WHERE account_number = $1 AND player_name = $2 ORDER BY name ASC", sql)
	assert.Equal(t, []any{"1000", "ACME"}, args)
}

func TestDateRangeInclusiveBounds(t *testing.T) {
	from := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC)

	sql, args := New("transaction_date DESC").
		DateRange("transaction_date", timePtr(from), timePtr(to)).
		SQL("SELECT * FROM transactions")
	assert.Equal(t, "SELECT * FROM transactions WHERE transaction_date >= $1 AND transaction_date <= $2 ORDER BY transaction_date DESC", sql)
	assert.Equal(t, []any{from, to}, args)

	// Either side may be absent, leaving the other side unbounded.
	sql, args = New("transaction_date DESC").
		DateRange("transaction_date", timePtr(from), nil).
		SQL("SELECT * FROM transactions")
	assert.Equal(t, "SELECT * FROM transactions WHERE transaction_date >= $1 ORDER BY transaction_date DESC", sql)
	assert.Equal(t, []any{from}, args)
}

func TestPatternCaseFolding(t *testing.T) {
	sql, _ := New("name ASC").Pattern("name", strPtr("Bank%"), false).SQL("SELECT * FROM players")
	assert.Contains(t, sql, "name LIKE $1")

	sql, _ = New("transaction_date DESC").Pattern("memo", strPtr("%rent%"), true).SQL("SELECT * FROM transactions")
	assert.Contains(t, sql, "memo ILIKE $1")
}

func TestEmptyPatternIsLiteralMatch(t *testing.T) {
	// Present-but-empty is a literal empty-string match, not a no-op.
	sql, args := New("name ASC").Pattern("memo", strPtr(""), false).SQL("SELECT * FROM lines")
	assert.Contains(t, sql, "memo LIKE $1")
	assert.Equal(t, []any{""}, args)
}

func TestPresenceFlag(t *testing.T) {
	f := New("").PresenceFlag("date_reconciled", boolPtr(true))
	assert.Equal(t, "WHERE date_reconciled IS NOT NULL", f.Where())
	assert.Empty(t, f.Args())

	f = New("").PresenceFlag("date_reconciled", boolPtr(false))
	assert.Equal(t, "WHERE date_reconciled IS NULL", f.Where())
}

func TestBindContinuesPlaceholderNumbering(t *testing.T) {
	f := New("transaction_date DESC, transaction_id DESC").
		ExactInt("element_number", intPtr(1)).
		Flag("is_bank", boolPtr(true))

	// Repository-side cursor and limit arguments share the numbering.
	cursor := f.Bind(int64(77))
	limit := f.Bind(20)
	assert.Equal(t, "$3", cursor)
	assert.Equal(t, "$4", limit)
	assert.Equal(t, []any{int64(1), true, int64(77), 20}, f.Args())
}

func TestOrderingAppliedRegardlessOfFilters(t *testing.T) {
	sql, _ := New("transaction_date DESC, transaction_id DESC").SQL("SELECT * FROM transactions")
	assert.Equal(t, "SELECT * FROM transactions ORDER BY transaction_date DESC, transaction_id DESC", sql)

	sql, _ = New("transaction_date DESC, transaction_id DESC").
		ExactText("memo", strPtr("x")).
		SQL("SELECT * FROM transactions")
	assert.Contains(t, sql, "ORDER BY transaction_date DESC, transaction_id DESC")
}
