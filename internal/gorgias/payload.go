// Package gorgias holds the wire shape of Gorgias HTTP integration webhooks.
//
// Gorgias renders webhook bodies from user-editable templates, so any scalar
// (ids, scores) may arrive either as a JSON number or as a string. Those fields
// are typed as Value and coerced by the classifier.
package gorgias

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const (
	EventTicketMessageCreated = "ticket-message-created"
	EventTicketUpdated        = "ticket-updated"
	EventSatisfactionCreated  = "satisfaction-created"

	StatusClosed = "closed"
)

type Payload struct {
	EventType    string        `json:"event_type"`
	Ticket       *Ticket       `json:"ticket,omitempty"`
	Message      *Message      `json:"message,omitempty"`
	Satisfaction *Satisfaction `json:"satisfaction,omitempty"`
	AssigneeUser *User         `json:"assignee_user,omitempty"`
}

type Ticket struct {
	ID              Value     `json:"id"`
	Subject         *string   `json:"subject,omitempty"`
	Status          string    `json:"status"`
	Channel         *string   `json:"channel,omitempty"`
	CreatedDatetime *string   `json:"created_datetime,omitempty"`
	UpdatedDatetime *string   `json:"updated_datetime,omitempty"`
	ClosedDatetime  *string   `json:"closed_datetime,omitempty"`
	Tags            []Tag     `json:"tags,omitempty"`
	Customer        *Customer `json:"customer,omitempty"`
	AssigneeUser    *User     `json:"assignee_user,omitempty"`
}

type Tag struct {
	Name string `json:"name"`
}

type Customer struct {
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}

type Message struct {
	ID              Value   `json:"id"`
	BodyText        *string `json:"body_text,omitempty"`
	CreatedDatetime *string `json:"created_datetime,omitempty"`
	Sender          *User   `json:"sender,omitempty"`
	Source          *Source `json:"source,omitempty"`
	Macros          []Macro `json:"macros,omitempty"`
}

// Source.Type is one of "agent", "customer", "rule", "workflow" (or "email" for
// agent replies sent from a mailbox).
type Source struct {
	Type string `json:"type"`
}

type Macro struct {
	ID   Value   `json:"id"`
	Name *string `json:"name,omitempty"`
}

type Satisfaction struct {
	Score           Value   `json:"score"`
	CreatedDatetime *string `json:"created_datetime,omitempty"`
}

type User struct {
	ID    Value   `json:"id"`
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// TagNames returns the tag names in payload order.
func (t *Ticket) TagNames() []string {
	if t == nil || len(t.Tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(t.Tags))
	for _, tag := range t.Tags {
		names = append(names, tag.Name)
	}
	return names
}

// FirstMacro returns the first macro applied to the message, if any.
func (m *Message) FirstMacro() *Macro {
	if m == nil || len(m.Macros) == 0 {
		return nil
	}
	return &m.Macros[0]
}

// Value is a scalar that may be encoded as a JSON number, a string, or be absent.
// Numbers are kept as json.Number so large ids survive decoding.
type Value struct {
	raw any
}

// NewValue wraps a Go value, mostly for tests and fixtures.
func NewValue(v any) Value {
	return Value{raw: v}
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		v.raw = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("decoding value: %w", err)
	}
	v.raw = raw
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.raw)
}

// Raw returns the decoded value: nil, json.Number, string, bool, or a composite.
func (v Value) Raw() any {
	return v.raw
}

// String renders the value for use inside keys and log lines.
func (v Value) String() string {
	if v.raw == nil {
		return ""
	}
	return fmt.Sprint(v.raw)
}

// Parse decodes a webhook body.
func Parse(body []byte) (*Payload, error) {
	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding gorgias payload: %w", err)
	}
	return &payload, nil
}
