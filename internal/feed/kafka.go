package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewKafkaPublisher writes events to topic keyed by ticket id, so one ticket's
// events stay on one partition in order.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) (Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka publisher requires at least one broker")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Balancer:     &kafka.Hash{},
		},
		logger: logger,
	}, nil
}

func (p *kafkaPublisher) Publish(ctx context.Context, ev Event) error {
	msg, err := kafkaMessage(ev)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish behavior event: %w", err)
	}

	p.logger.DebugContext(ctx, "published behavior event", "topic", p.writer.Topic, "action", ev.Action, "ticket_id", ev.TicketID)
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

func kafkaMessage(ev Event) (kafka.Message, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encoding behavior event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(ev.TicketID, 10)),
		Value: data,
		Time:  ev.OccurredAt.UTC(),
	}, nil
}
