package feed

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// streamMaxLen caps the stream so an absent consumer cannot grow it without bound.
const streamMaxLen = 100_000

type redisPublisher struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisPublisher(client *redis.Client, stream string, logger *slog.Logger) Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisPublisher{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisPublisher) Publish(ctx context.Context, ev Event) error {
	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: streamFields(ev),
	}).Err(); err != nil {
		return fmt.Errorf("publish behavior event: %w", err)
	}

	p.logger.DebugContext(ctx, "published behavior event", "stream", p.stream, "action", ev.Action, "ticket_id", ev.TicketID)
	return nil
}

func (p *redisPublisher) Close() error {
	return p.client.Close()
}

func streamFields(ev Event) map[string]any {
	fields := map[string]any{
		"id":            ev.ID,
		"action":        ev.Action,
		"dedupe_key":    ev.DedupeKey,
		"event_type":    ev.EventType,
		"ticket_id":     strconv.FormatInt(ev.TicketID, 10),
		"rows_affected": strconv.FormatInt(ev.RowsAffected, 10),
		"occurred_at":   ev.OccurredAt.UTC().Format(time.RFC3339Nano),
	}
	if ev.TraceID != nil && *ev.TraceID != "" {
		fields["trace_id"] = *ev.TraceID
	}
	return fields
}
