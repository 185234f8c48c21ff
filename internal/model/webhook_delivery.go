package model

import "time"

// WebhookDelivery records that a delivery with a given dedupe key was applied.
type WebhookDelivery struct {
	CreatedAt time.Time `json:"created_at"`
	DedupeKey string    `json:"dedupe_key"`
	EventType string    `json:"event_type"`
	ID        int64     `json:"id"`
	TicketID  int64     `json:"ticket_id"`
}
