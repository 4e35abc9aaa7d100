package models

import "time"

// AuditEvent records a ledger mutation for later inspection.
type AuditEvent struct {
	ID        string
	Type      string
	Data      map[string]string
	CreatedAt time.Time
}
