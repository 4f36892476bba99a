package domain

import "time"

// Filter types carry the optional query predicates accepted by the finders.
// Pointer fields distinguish "absent" (nil, predicate elided) from a present
// zero value (e.g. an empty pattern string matches literally).

// ElementFilter narrows element listings.
type ElementFilter struct {
	NamePattern *string // LIKE pattern, case-sensitive
}

// PlayerFilter narrows player listings.
type PlayerFilter struct {
	NamePattern *string // LIKE pattern, case-sensitive
	IsBank      *bool
}

// AccountFilter narrows account listings.
type AccountFilter struct {
	NumberPattern *string // LIKE pattern, case-sensitive
	NamePattern   *string // LIKE pattern, case-sensitive
	ElementNumber *int64
	PlayerName    *string
}

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	DateFrom    *time.Time // Inclusive
	DateTo      *time.Time // Inclusive
	MemoPattern *string    // ILIKE pattern, case-insensitive
}

// TransactionLineFilter narrows transaction line listings.
type TransactionLineFilter struct {
	DateFrom      *time.Time // Inclusive, on the parent transaction date
	DateTo        *time.Time // Inclusive
	AccountNumber *string
	PlayerName    *string
	Reconciled    *bool   // True: date_reconciled set; false: unreconciled
	MemoPattern   *string // ILIKE pattern, case-insensitive
}
