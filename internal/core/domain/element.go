package domain

// Element is a top-level accounting category (Asset, Liability, Equity, ...).
// Its number is externally assigned and immutable once created.
type Element struct {
	Number int64  `json:"number"` // Natural key, externally assigned
	Name   string `json:"name"`   // Unique
	AuditFields
}
