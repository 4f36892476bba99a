package domain

import "time"

// AuditFields holds standard audit timestamps for domain entities.
// They are set explicitly by the service layer, never by the storage engine.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
