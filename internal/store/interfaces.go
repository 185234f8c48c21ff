package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"supportpulse.app/pulse/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// BehaviorLogStore defines the contract for agent behavior log access.
// Rows are append-only; the only updates are closure and satisfaction enrichment.
type BehaviorLogStore interface {
	// Insert adds the event unless a row with the same event_id exists. Reports whether a row was written.
	Insert(ctx context.Context, event *model.BehaviorEvent) (bool, error)
	CountReplies(ctx context.Context, ticketID int64) (int, error)
	// UpdateResolution stamps touches and resolved_at on the ticket's reply rows.
	UpdateResolution(ctx context.Context, ticketID int64, touches int, resolvedAt time.Time) (int64, error)
	// SetCSAT sets the score on every row for the ticket.
	SetCSAT(ctx context.Context, ticketID int64, score int) (int64, error)
	ListRecent(ctx context.Context, limit int32) ([]model.BehaviorEvent, error)
}

// WebhookDeliveryStore defines the contract for the delivery dedupe log
type WebhookDeliveryStore interface {
	// CreateOrGet inserts the delivery or returns the existing one with the same dedupe key.
	// The boolean is true when this call created the row.
	CreateOrGet(ctx context.Context, delivery *model.WebhookDelivery) (*model.WebhookDelivery, bool, error)
}

// ReplyCounterStore defines the contract for per-ticket reply counters
type ReplyCounterStore interface {
	// Increment bumps the ticket's counter and returns the new value. The row stays
	// locked until the surrounding transaction ends.
	Increment(ctx context.Context, ticketID int64) (int, error)
}

// PulseCheckStore defines the contract for pulse check snapshots
type PulseCheckStore interface {
	Any(ctx context.Context) (bool, error)
	Create(ctx context.Context, check *model.PulseCheck) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.PulseCheck, error)
	ListRecent(ctx context.Context, limit int32) ([]model.PulseCheck, error)
}
