// Package feed fans persisted behavior events out to downstream consumers.
// Publishing is best effort: the database row is the source of truth.
package feed

import (
	"context"
	"time"
)

// Event summarizes one applied webhook delivery.
type Event struct {
	OccurredAt   time.Time `json:"occurred_at"`
	TraceID      *string   `json:"trace_id,omitempty"`
	ID           string    `json:"id"`
	Action       string    `json:"action"`
	DedupeKey    string    `json:"dedupe_key"`
	EventType    string    `json:"event_type"`
	TicketID     int64     `json:"ticket_id"`
	RowsAffected int64     `json:"rows_affected"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

type noopPublisher struct{}

// NewNoop returns a Publisher that drops every event.
func NewNoop() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, Event) error { return nil }

func (noopPublisher) Close() error { return nil }
