package feed

import (
	"context"
	"encoding/json"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("encoding", func() {
	at := time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)
	ev := Event{
		ID:           "3f2c",
		Action:       "reply_logged",
		DedupeKey:    "msg-77",
		EventType:    "ticket-message-created",
		TicketID:     500,
		RowsAffected: 1,
		OccurredAt:   at,
	}

	It("flattens events into stream fields", func() {
		fields := streamFields(ev)
		Expect(fields).To(HaveKeyWithValue("ticket_id", "500"))
		Expect(fields).To(HaveKeyWithValue("dedupe_key", "msg-77"))
		Expect(fields).To(HaveKeyWithValue("occurred_at", "2026-02-10T10:00:00Z"))
		Expect(fields).NotTo(HaveKey("trace_id"))
	})

	It("includes the trace id when present", func() {
		withTrace := ev
		traceID := "abc123"
		withTrace.TraceID = &traceID
		Expect(streamFields(withTrace)).To(HaveKeyWithValue("trace_id", "abc123"))
	})

	It("keys kafka messages by ticket", func() {
		msg, err := kafkaMessage(ev)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(msg.Key)).To(Equal("500"))

		var decoded Event
		Expect(json.Unmarshal(msg.Value, &decoded)).To(Succeed())
		Expect(decoded.Action).To(Equal("reply_logged"))
		Expect(decoded.OccurredAt.Equal(at)).To(BeTrue())
	})

	It("requires brokers for kafka", func() {
		_, err := NewKafkaPublisher(nil, "topic", nil)
		Expect(err).To(HaveOccurred())
	})

	It("drops events on the noop publisher", func() {
		p := NewNoop()
		Expect(p.Publish(context.Background(), ev)).To(Succeed())
		Expect(p.Close()).To(Succeed())
	})
})
