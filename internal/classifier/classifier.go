// Package classifier turns a raw Gorgias webhook payload into a normalized,
// side-effect-free view that the dispatcher can act on.
package classifier

import (
	"strings"
	"time"
	"unicode/utf8"

	"supportpulse.app/pulse/internal/gorgias"
)

type Kind string

const (
	KindReply        Kind = "reply"
	KindClosure      Kind = "closure"
	KindAssignment   Kind = "assignment"
	KindSatisfaction Kind = "satisfaction"
	KindIgnored      Kind = "ignored"
)

// Skip reasons reported for KindIgnored.
const (
	ReasonUnknownEvent        = "unknown_event_type"
	ReasonMissingTicket       = "missing_ticket"
	ReasonInvalidTicketID     = "invalid_ticket_id"
	ReasonMissingMessage      = "missing_message"
	ReasonFilteredSource      = "filtered_source"
	ReasonNoAssignee          = "no_assignee"
	ReasonMissingSatisfaction = "missing_satisfaction"
	ReasonInvalidScore        = "invalid_score"
)

type Ticket struct {
	ID        int64
	Subject   *string
	Channel   *string
	Status    string
	Category  *string
	Tags      []string
	CreatedAt *time.Time
	ClosedAt  *time.Time
}

type Actor struct {
	ID    *int64
	Name  *string
	Email *string
}

type Message struct {
	// ID is the upstream message id rendered as text; empty when the payload had none.
	ID         string
	Text       *string
	CharCount  *int
	IsMacro    bool
	MacroID    *int64
	MacroName  *string
	CreatedAt  *time.Time
	SourceType string
	IsAgent    bool
	Sender     *Actor
}

// Event is the classified form of one webhook delivery.
type Event struct {
	Kind      Kind
	Reason    string
	EventType string
	Ticket    *Ticket
	Message   *Message
	Assignee  *Actor
	CSATScore *int
}

type Classifier struct {
	policy       Policy
	systemTags   map[string]struct{}
	agentSources map[string]struct{}
}

func New(policy Policy) *Classifier {
	c := &Classifier{
		policy:       policy,
		systemTags:   make(map[string]struct{}, len(policy.SystemTags)),
		agentSources: make(map[string]struct{}, len(policy.AgentSourceTypes)),
	}
	for _, t := range policy.SystemTags {
		c.systemTags[t] = struct{}{}
	}
	for _, s := range policy.AgentSourceTypes {
		c.agentSources[strings.ToLower(s)] = struct{}{}
	}
	return c
}

func (c *Classifier) Policy() Policy {
	return c.policy
}

// ExtractCategory returns the first tag that is not a system tag, or nil.
func (c *Classifier) ExtractCategory(tags []string) *string {
	for _, t := range tags {
		if t == "" {
			continue
		}
		if _, system := c.systemTags[t]; system {
			continue
		}
		category := t
		return &category
	}
	return nil
}

// IsAgentMessage reports whether the message source is one of the agent source types.
func (c *Classifier) IsAgentMessage(msg *gorgias.Message) bool {
	if msg == nil || msg.Source == nil {
		return false
	}
	_, ok := c.agentSources[strings.ToLower(msg.Source.Type)]
	return ok
}

// Admits reports whether a message should be logged at all under the policy.
func (c *Classifier) Admits(msg *gorgias.Message) bool {
	if !c.policy.AgentSourcesOnly {
		return true
	}
	return c.IsAgentMessage(msg)
}

// Classify routes a payload to a Kind and normalizes the fields that kind needs.
func (c *Classifier) Classify(p *gorgias.Payload) Event {
	if p == nil {
		return ignored("", ReasonUnknownEvent)
	}

	switch p.EventType {
	case gorgias.EventTicketMessageCreated, gorgias.EventTicketUpdated, gorgias.EventSatisfactionCreated:
	default:
		return ignored(p.EventType, ReasonUnknownEvent)
	}

	if p.Ticket == nil {
		return ignored(p.EventType, ReasonMissingTicket)
	}
	ticket := c.ticket(p.Ticket)
	if ticket == nil {
		return ignored(p.EventType, ReasonInvalidTicketID)
	}

	ev := Event{EventType: p.EventType, Ticket: ticket}

	switch p.EventType {
	case gorgias.EventTicketMessageCreated:
		if p.Message == nil {
			return withReason(ev, ReasonMissingMessage)
		}
		if !c.Admits(p.Message) {
			return withReason(ev, ReasonFilteredSource)
		}
		ev.Kind = KindReply
		ev.Message = c.message(p.Message)

	case gorgias.EventTicketUpdated:
		switch {
		case p.Ticket.Status == gorgias.StatusClosed:
			ev.Kind = KindClosure
		case p.AssigneeUser != nil:
			ev.Kind = KindAssignment
			ev.Assignee = actor(p.AssigneeUser)
		default:
			return withReason(ev, ReasonNoAssignee)
		}

	case gorgias.EventSatisfactionCreated:
		if p.Satisfaction == nil {
			return withReason(ev, ReasonMissingSatisfaction)
		}
		score := ToInt64(p.Satisfaction.Score.Raw())
		if score == nil || *score < 1 || *score > 5 {
			return withReason(ev, ReasonInvalidScore)
		}
		s := int(*score)
		ev.Kind = KindSatisfaction
		ev.CSATScore = &s
	}

	return ev
}

func (c *Classifier) ticket(t *gorgias.Ticket) *Ticket {
	id := ToInt64(t.ID.Raw())
	if id == nil {
		return nil
	}
	tags := t.TagNames()
	return &Ticket{
		ID:        *id,
		Subject:   t.Subject,
		Channel:   t.Channel,
		Status:    t.Status,
		Category:  c.ExtractCategory(tags),
		Tags:      tags,
		CreatedAt: ParseTimestamp(t.CreatedDatetime),
		ClosedAt:  ParseTimestamp(t.ClosedDatetime),
	}
}

func (c *Classifier) message(m *gorgias.Message) *Message {
	out := &Message{
		ID:        m.ID.String(),
		Text:      m.BodyText,
		CreatedAt: ParseTimestamp(m.CreatedDatetime),
		IsAgent:   c.IsAgentMessage(m),
		Sender:    actor(m.Sender),
	}
	if m.BodyText != nil {
		n := utf8.RuneCountInString(*m.BodyText)
		out.CharCount = &n
	}
	if m.Source != nil {
		out.SourceType = m.Source.Type
	}
	if macro := m.FirstMacro(); macro != nil {
		out.IsMacro = true
		out.MacroID = ToInt64(macro.ID.Raw())
		out.MacroName = macro.Name
	}
	return out
}

func actor(u *gorgias.User) *Actor {
	if u == nil {
		return nil
	}
	return &Actor{
		ID:    ToInt64(u.ID.Raw()),
		Name:  u.Name,
		Email: u.Email,
	}
}

func ignored(eventType, reason string) Event {
	return Event{Kind: KindIgnored, EventType: eventType, Reason: reason}
}

func withReason(ev Event, reason string) Event {
	ev.Kind = KindIgnored
	ev.Reason = reason
	return ev
}
