package model

import (
	"encoding/json"
	"time"
)

type BehaviorEventType string

const (
	BehaviorEventReply    BehaviorEventType = "ticket-message-created"
	BehaviorEventClosed   BehaviorEventType = "ticket-closed"
	BehaviorEventAssigned BehaviorEventType = "ticket-assigned"
)

// BehaviorEvent is one row of agent_behavior_log. Rows are immutable apart from
// the closure fields (TouchesToResolution, ResolvedAt) and CSATScore.
type BehaviorEvent struct {
	CreatedAt              time.Time         `json:"created_at"`
	TicketCreatedAt        *time.Time        `json:"ticket_created_at,omitempty"`
	ResolvedAt             *time.Time        `json:"resolved_at,omitempty"`
	RawPayload             json.RawMessage   `json:"raw_payload,omitempty"`
	EventID                string            `json:"event_id"`
	EventType              BehaviorEventType `json:"event_type"`
	TicketSubject          *string           `json:"ticket_subject,omitempty"`
	TicketChannel          *string           `json:"ticket_channel,omitempty"`
	TicketCategory         *string           `json:"ticket_category,omitempty"`
	TicketTags             []string          `json:"ticket_tags,omitempty"`
	AgentName              *string           `json:"agent_name,omitempty"`
	AgentEmail             *string           `json:"agent_email,omitempty"`
	ResponseText           *string           `json:"response_text,omitempty"`
	MacroName              *string           `json:"macro_name,omitempty"`
	ID                     int64             `json:"id"`
	TicketID               int64             `json:"ticket_id"`
	AgentID                *int64            `json:"agent_id,omitempty"`
	MacroID                *int64            `json:"macro_id,omitempty"`
	ResponseCharCount      *int              `json:"response_char_count,omitempty"`
	IsMacro                *bool             `json:"is_macro,omitempty"`
	MessagePosition        *int              `json:"message_position,omitempty"`
	TimeToFirstResponseMin *float64          `json:"time_to_first_response_min,omitempty"`
	TouchesToResolution    *int              `json:"touches_to_resolution,omitempty"`
	CSATScore              *int              `json:"csat_score,omitempty"`
}

func (e *BehaviorEvent) IsReply() bool {
	return e.EventType == BehaviorEventReply
}
