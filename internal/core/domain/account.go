package domain

// Account represents a single ledger account within the chart of accounts.
// Every account belongs to exactly one Element and may optionally be tied to
// a Player (e.g. a bank account held at a specific bank).
type Account struct {
	Number        string  `json:"number"`        // Natural key, externally assigned
	Name          string  `json:"name"`          // Unique
	ElementNumber int64   `json:"elementNumber"` // FK -> elements.element_number (Not Null)
	PlayerName    *string `json:"playerName"`    // Nullable FK -> players.name
	AuditFields
}
