package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"supportpulse.app/pulse/common/id"
	"supportpulse.app/pulse/common/logger"
	"supportpulse.app/pulse/internal/calculator"
	"supportpulse.app/pulse/internal/classifier"
	"supportpulse.app/pulse/internal/feed"
	"supportpulse.app/pulse/internal/gorgias"
	"supportpulse.app/pulse/internal/model"
)

type Action string

const (
	ActionReplyLogged      Action = "reply_logged"
	ActionClosureEnriched  Action = "closure_enriched"
	ActionClosureRecorded  Action = "closure_recorded"
	ActionAssignmentLogged Action = "assignment_logged"
	ActionCSATApplied      Action = "csat_applied"
	ActionIgnored          Action = "ignored"
)

type DispatchResult struct {
	Action Action
	// Reason explains an ignored delivery.
	Reason       string
	DedupeKey    string
	TicketID     int64
	Duplicated   bool
	RowsAffected int64
}

// Dispatcher applies one webhook delivery to the behavior log.
type Dispatcher interface {
	Dispatch(ctx context.Context, body []byte, payload *gorgias.Payload) (*DispatchResult, error)
}

// errAlreadyLogged rolls back a reply whose event_id is already present, so the
// reply counter is not advanced twice for one message.
var errAlreadyLogged = errors.New("behavior event already logged")

type DispatcherOption func(*dispatcher)

// WithClock replaces time.Now, used for resolved_at when the ticket has no close time.
func WithClock(now func() time.Time) DispatcherOption {
	return func(d *dispatcher) {
		d.now = now
	}
}

type dispatcher struct {
	txRunner   TxRunner
	classifier *classifier.Classifier
	publisher  feed.Publisher
	logger     *slog.Logger
	now        func() time.Time
}

func NewDispatcher(txRunner TxRunner, c *classifier.Classifier, publisher feed.Publisher, logger *slog.Logger, opts ...DispatcherOption) Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = feed.NewNoop()
	}
	d := &dispatcher{
		txRunner:   txRunner,
		classifier: c,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *dispatcher) Dispatch(ctx context.Context, body []byte, payload *gorgias.Payload) (*DispatchResult, error) {
	sc := logger.StartSpan(ctx, "webhook.dispatch")
	defer sc.End()
	ctx = sc.Context()

	ev := d.classifier.Classify(payload)
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		EventType: logger.Ptr(ev.EventType),
		Component: "pulse.service.dispatcher",
	})
	sc.Span().SetAttributes(
		attribute.String("gorgias.event_type", ev.EventType),
		attribute.String("pulse.kind", string(ev.Kind)),
	)

	if ev.Kind == classifier.KindIgnored {
		d.logger.InfoContext(ctx, "webhook ignored", "reason", ev.Reason)
		return &DispatchResult{Action: ActionIgnored, Reason: ev.Reason}, nil
	}

	key := dedupeKey(ev, body)
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		TicketID:  logger.Ptr(ev.Ticket.ID),
		DedupeKey: logger.Ptr(key),
	})
	sc.Span().SetAttributes(attribute.Int64("gorgias.ticket_id", ev.Ticket.ID))

	result := &DispatchResult{DedupeKey: key, TicketID: ev.Ticket.ID}

	err := d.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		delivery, created, err := sp.WebhookDeliveries().CreateOrGet(ctx, &model.WebhookDelivery{
			ID:        id.New(),
			DedupeKey: key,
			EventType: ev.EventType,
			TicketID:  ev.Ticket.ID,
		})
		if err != nil {
			return fmt.Errorf("recording delivery: %w", err)
		}
		if !created {
			result.Duplicated = true
			return nil
		}
		txCtx := logger.WithLogFields(ctx, logger.LogFields{DeliveryID: logger.Ptr(delivery.ID)})

		switch ev.Kind {
		case classifier.KindReply:
			return d.logReply(txCtx, sp, ev, key, body, result)
		case classifier.KindClosure:
			return d.resolveTicket(txCtx, sp, ev, key, body, result)
		case classifier.KindAssignment:
			return d.logAssignment(txCtx, sp, ev, key, body, result)
		case classifier.KindSatisfaction:
			return d.applyCSAT(txCtx, sp, ev, result)
		}
		return fmt.Errorf("unhandled event kind %q", ev.Kind)
	})
	if errors.Is(err, errAlreadyLogged) {
		result.Duplicated = true
		err = nil
	}
	if err != nil {
		sc.RecordError(err)
		return nil, err
	}

	if result.Duplicated {
		d.logger.InfoContext(ctx, "duplicate delivery skipped")
		return result, nil
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{Action: logger.Ptr(string(result.Action))})
	d.logger.InfoContext(ctx, "webhook applied", "rows_affected", result.RowsAffected)
	d.publish(ctx, sc, ev, result)

	return result, nil
}

func (d *dispatcher) logReply(ctx context.Context, sp StoreProvider, ev classifier.Event, key string, body []byte, result *DispatchResult) error {
	count, err := sp.ReplyCounters().Increment(ctx, ev.Ticket.ID)
	if err != nil {
		return fmt.Errorf("incrementing reply counter: %w", err)
	}

	msg := ev.Message
	metrics := calculator.ComputeReply(count-1, ev.Ticket.CreatedAt, msg.CreatedAt)

	event := newBehaviorEvent(key, model.BehaviorEventReply, ev.Ticket, body)
	setActor(event, msg.Sender)
	event.ResponseText = msg.Text
	event.ResponseCharCount = msg.CharCount
	event.IsMacro = logger.Ptr(msg.IsMacro)
	event.MacroID = msg.MacroID
	event.MacroName = msg.MacroName
	event.MessagePosition = logger.Ptr(metrics.MessagePosition)
	event.TimeToFirstResponseMin = metrics.FirstResponseMinutes

	inserted, err := sp.BehaviorLogs().Insert(ctx, event)
	if err != nil {
		return fmt.Errorf("inserting reply: %w", err)
	}
	if !inserted {
		return errAlreadyLogged
	}

	result.Action = ActionReplyLogged
	result.RowsAffected = 1
	return nil
}

func (d *dispatcher) resolveTicket(ctx context.Context, sp StoreProvider, ev classifier.Event, key string, body []byte, result *DispatchResult) error {
	count, err := sp.BehaviorLogs().CountReplies(ctx, ev.Ticket.ID)
	if err != nil {
		return fmt.Errorf("counting replies: %w", err)
	}
	touches := calculator.TouchesToResolution(count)

	resolvedAt := d.now().UTC()
	if ev.Ticket.ClosedAt != nil {
		resolvedAt = *ev.Ticket.ClosedAt
	}

	if touches > 0 {
		n, err := sp.BehaviorLogs().UpdateResolution(ctx, ev.Ticket.ID, touches, resolvedAt)
		if err != nil {
			return fmt.Errorf("updating resolution: %w", err)
		}
		result.Action = ActionClosureEnriched
		result.RowsAffected = n
		return nil
	}

	// Closed without any logged reply (spam, auto-close): keep a marker row.
	event := newBehaviorEvent(key, model.BehaviorEventClosed, ev.Ticket, body)
	event.TouchesToResolution = logger.Ptr(0)
	event.ResolvedAt = &resolvedAt

	inserted, err := sp.BehaviorLogs().Insert(ctx, event)
	if err != nil {
		return fmt.Errorf("inserting closure: %w", err)
	}
	result.Action = ActionClosureRecorded
	if inserted {
		result.RowsAffected = 1
	}
	return nil
}

func (d *dispatcher) logAssignment(ctx context.Context, sp StoreProvider, ev classifier.Event, key string, body []byte, result *DispatchResult) error {
	event := newBehaviorEvent(key, model.BehaviorEventAssigned, ev.Ticket, body)
	setActor(event, ev.Assignee)

	inserted, err := sp.BehaviorLogs().Insert(ctx, event)
	if err != nil {
		return fmt.Errorf("inserting assignment: %w", err)
	}
	result.Action = ActionAssignmentLogged
	if inserted {
		result.RowsAffected = 1
	}
	return nil
}

func (d *dispatcher) applyCSAT(ctx context.Context, sp StoreProvider, ev classifier.Event, result *DispatchResult) error {
	n, err := sp.BehaviorLogs().SetCSAT(ctx, ev.Ticket.ID, *ev.CSATScore)
	if err != nil {
		return fmt.Errorf("setting csat: %w", err)
	}
	if n == 0 {
		d.logger.WarnContext(ctx, "csat received for ticket with no logged events", "score", *ev.CSATScore)
	}
	result.Action = ActionCSATApplied
	result.RowsAffected = n
	return nil
}

func (d *dispatcher) publish(ctx context.Context, sc *logger.SpanContext, ev classifier.Event, result *DispatchResult) {
	msg := feed.Event{
		ID:           uuid.NewString(),
		Action:       string(result.Action),
		DedupeKey:    result.DedupeKey,
		EventType:    ev.EventType,
		TicketID:     result.TicketID,
		RowsAffected: result.RowsAffected,
		OccurredAt:   d.now().UTC(),
	}
	if spanCtx := sc.Span().SpanContext(); spanCtx.HasTraceID() {
		msg.TraceID = logger.Ptr(spanCtx.TraceID().String())
	}
	if err := d.publisher.Publish(ctx, msg); err != nil {
		d.logger.WarnContext(ctx, "feed publish failed", "error", err)
	}
}

func newBehaviorEvent(key string, eventType model.BehaviorEventType, t *classifier.Ticket, body []byte) *model.BehaviorEvent {
	event := &model.BehaviorEvent{
		ID:              id.New(),
		EventID:         key,
		EventType:       eventType,
		TicketID:        t.ID,
		TicketSubject:   t.Subject,
		TicketChannel:   t.Channel,
		TicketCategory:  t.Category,
		TicketCreatedAt: t.CreatedAt,
		RawPayload:      json.RawMessage(body),
	}
	if len(t.Tags) > 0 {
		event.TicketTags = t.Tags
	}
	return event
}

func setActor(event *model.BehaviorEvent, actor *classifier.Actor) {
	if actor == nil {
		return
	}
	event.AgentID = actor.ID
	event.AgentName = actor.Name
	event.AgentEmail = actor.Email
}
