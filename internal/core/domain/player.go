package domain

// Player is a counterparty: a person, company, or bank.
type Player struct {
	Name   string `json:"name"`   // Natural key, unique
	IsBank bool   `json:"isBank"` // True when the counterparty is a bank
	AuditFields
}
