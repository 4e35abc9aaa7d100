package sqlstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mmynk/profitshare/internal/models"
)

// SaveEvent appends an audit event.
func (s *Store) SaveEvent(ctx context.Context, e models.AuditEvent) error {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("failed to encode event data: %w", err)
	}

	_, err = s.db.ExecContext(ctx, s.q(
		`INSERT INTO audit_events (id, event_type, event_data, created_at) VALUES (?, ?, ?, ?)`),
		e.ID, e.Type, string(data), e.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return s.fail(err, "failed to save event")
	}
	return nil
}

// ListEventsByType returns the events of one type, oldest first.
func (s *Store) ListEventsByType(ctx context.Context, eventType string) ([]models.AuditEvent, error) {
	rows, err := s.db.QueryContext(ctx, s.q(
		`SELECT id, event_type, event_data, created_at FROM audit_events
		 WHERE event_type = ? ORDER BY created_at, id`),
		eventType,
	)
	if err != nil {
		return nil, s.fail(err, "failed to list events")
	}
	defer rows.Close()

	events := make([]models.AuditEvent, 0)
	for rows.Next() {
		var (
			e         models.AuditEvent
			data      string
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &e.Type, &data, &createdAt); err != nil {
			return nil, s.fail(err, "failed to scan event")
		}
		if err := json.Unmarshal([]byte(data), &e.Data); err != nil {
			return nil, fmt.Errorf("failed to decode event %s: %w", e.ID, err)
		}
		e.CreatedAt = time.UnixMilli(createdAt)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, s.fail(err, "failed to iterate events")
	}

	return events, nil
}
