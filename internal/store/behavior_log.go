package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"supportpulse.app/pulse/core/db"
	"supportpulse.app/pulse/internal/model"
)

type behaviorLogStore struct {
	q db.DBTX
}

func newBehaviorLogStore(q db.DBTX) BehaviorLogStore {
	return &behaviorLogStore{q: q}
}

const insertBehaviorEvent = `
INSERT INTO agent_behavior_log (
    id, event_id, event_type,
    ticket_id, ticket_subject, ticket_channel, ticket_category, ticket_tags, ticket_created_at,
    agent_id, agent_name, agent_email,
    response_text, response_char_count, is_macro, macro_id, macro_name,
    message_position, time_to_first_response_min, touches_to_resolution, csat_score, resolved_at,
    raw_payload
) VALUES (
    $1, $2, $3,
    $4, $5, $6, $7, $8, $9,
    $10, $11, $12,
    $13, $14, $15, $16, $17,
    $18, $19, $20, $21, $22,
    $23
)
ON CONFLICT (event_id) DO NOTHING`

func (s *behaviorLogStore) Insert(ctx context.Context, e *model.BehaviorEvent) (bool, error) {
	tag, err := s.q.Exec(ctx, insertBehaviorEvent,
		e.ID, e.EventID, string(e.EventType),
		e.TicketID, e.TicketSubject, e.TicketChannel, e.TicketCategory, e.TicketTags, e.TicketCreatedAt,
		e.AgentID, e.AgentName, e.AgentEmail,
		e.ResponseText, e.ResponseCharCount, e.IsMacro, e.MacroID, e.MacroName,
		e.MessagePosition, e.TimeToFirstResponseMin, e.TouchesToResolution, e.CSATScore, e.ResolvedAt,
		e.RawPayload,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *behaviorLogStore) CountReplies(ctx context.Context, ticketID int64) (int, error) {
	var count int
	err := s.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM agent_behavior_log WHERE ticket_id = $1 AND event_type = $2`,
		ticketID, string(model.BehaviorEventReply),
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *behaviorLogStore) UpdateResolution(ctx context.Context, ticketID int64, touches int, resolvedAt time.Time) (int64, error) {
	tag, err := s.q.Exec(ctx,
		`UPDATE agent_behavior_log
		 SET touches_to_resolution = $2, resolved_at = $3
		 WHERE ticket_id = $1 AND event_type = $4`,
		ticketID, touches, resolvedAt, string(model.BehaviorEventReply),
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (s *behaviorLogStore) SetCSAT(ctx context.Context, ticketID int64, score int) (int64, error) {
	tag, err := s.q.Exec(ctx,
		`UPDATE agent_behavior_log SET csat_score = $2 WHERE ticket_id = $1`,
		ticketID, score,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ListRecent omits raw_payload; the dashboard never reads it.
func (s *behaviorLogStore) ListRecent(ctx context.Context, limit int32) ([]model.BehaviorEvent, error) {
	rows, err := s.q.Query(ctx,
		`SELECT id, created_at, event_id, event_type,
		        ticket_id, ticket_subject, ticket_channel, ticket_category, ticket_tags, ticket_created_at,
		        agent_id, agent_name, agent_email,
		        response_text, response_char_count, is_macro, macro_id, macro_name,
		        message_position, time_to_first_response_min, touches_to_resolution, csat_score, resolved_at
		 FROM agent_behavior_log
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanBehaviorEvent)
}

func scanBehaviorEvent(row pgx.CollectableRow) (model.BehaviorEvent, error) {
	var (
		e         model.BehaviorEvent
		eventType string
		ticketID  *int64
	)
	err := row.Scan(
		&e.ID, &e.CreatedAt, &e.EventID, &eventType,
		&ticketID, &e.TicketSubject, &e.TicketChannel, &e.TicketCategory, &e.TicketTags, &e.TicketCreatedAt,
		&e.AgentID, &e.AgentName, &e.AgentEmail,
		&e.ResponseText, &e.ResponseCharCount, &e.IsMacro, &e.MacroID, &e.MacroName,
		&e.MessagePosition, &e.TimeToFirstResponseMin, &e.TouchesToResolution, &e.CSATScore, &e.ResolvedAt,
	)
	if err != nil {
		return model.BehaviorEvent{}, err
	}
	e.EventType = model.BehaviorEventType(eventType)
	if ticketID != nil {
		e.TicketID = *ticketID
	}
	return e, nil
}
