package store

import (
	"context"

	"supportpulse.app/pulse/core/db"
	"supportpulse.app/pulse/internal/model"
)

type webhookDeliveryStore struct {
	q db.DBTX
}

func newWebhookDeliveryStore(q db.DBTX) WebhookDeliveryStore {
	return &webhookDeliveryStore{q: q}
}

// The no-op update makes RETURNING yield the existing row on conflict.
const upsertWebhookDelivery = `
INSERT INTO webhook_deliveries (id, dedupe_key, event_type, ticket_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT (dedupe_key) DO UPDATE SET dedupe_key = EXCLUDED.dedupe_key
RETURNING id, dedupe_key, event_type, ticket_id, created_at`

func (s *webhookDeliveryStore) CreateOrGet(ctx context.Context, d *model.WebhookDelivery) (*model.WebhookDelivery, bool, error) {
	var row model.WebhookDelivery
	err := s.q.QueryRow(ctx, upsertWebhookDelivery, d.ID, d.DedupeKey, d.EventType, d.TicketID).
		Scan(&row.ID, &row.DedupeKey, &row.EventType, &row.TicketID, &row.CreatedAt)
	if err != nil {
		return nil, false, err
	}
	created := row.ID == d.ID
	return &row, created, nil
}
