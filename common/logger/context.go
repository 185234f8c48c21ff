package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Fields flow through context enrichment, so every log line written while a delivery is
// being dispatched carries the ticket and dedupe key without passing them around.
type LogFields struct {
	TicketID   *int64  // Helpdesk ticket ID
	DeliveryID *int64  // webhook_deliveries row ID
	DedupeKey  *string // Content-derived idempotency key of the delivery
	EventType  *string // Wire event type (e.g., "ticket-updated")
	Action     *string // Dispatcher action taken (e.g., "reply_logged")
	Component  string  // Component name (OTel semantic convention style, e.g., "pulse.service.dispatcher")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.TicketID != nil {
		result.TicketID = new.TicketID
	}
	if new.DeliveryID != nil {
		result.DeliveryID = new.DeliveryID
	}
	if new.DedupeKey != nil {
		result.DedupeKey = new.DedupeKey
	}
	if new.EventType != nil {
		result.EventType = new.EventType
	}
	if new.Action != nil {
		result.Action = new.Action
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{TicketID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen bytes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
