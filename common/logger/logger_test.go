package logger_test

import (
	"bytes"
	"context"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"supportpulse.app/pulse/common/logger"
)

var _ = Describe("LogFields", func() {
	It("merges newer non-empty fields over existing ones", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			TicketID:  logger.Ptr(int64(500)),
			Component: "pulse.http.webhook",
		})
		ctx = logger.WithLogFields(ctx, logger.LogFields{
			DedupeKey: logger.Ptr("msg-1"),
			Component: "pulse.service.dispatcher",
		})

		fields := logger.GetLogFields(ctx)
		Expect(*fields.TicketID).To(Equal(int64(500)))
		Expect(*fields.DedupeKey).To(Equal("msg-1"))
		Expect(fields.Component).To(Equal("pulse.service.dispatcher"))
		Expect(fields.EventType).To(BeNil())
	})

	It("returns empty fields for a bare context", func() {
		Expect(logger.GetLogFields(context.Background())).To(Equal(logger.LogFields{}))
	})

	It("truncates long strings", func() {
		Expect(logger.Truncate("abcdef", 3)).To(Equal("abc..."))
		Expect(logger.Truncate("abc", 3)).To(Equal("abc"))
	})
})

var _ = Describe("TraceHandler", func() {
	It("adds context fields to every record", func() {
		buf := &bytes.Buffer{}
		log := slog.New(logger.NewTraceHandler(slog.NewJSONHandler(buf, nil)))

		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			TicketID:  logger.Ptr(int64(42)),
			EventType: logger.Ptr("ticket-updated"),
			Action:    logger.Ptr("closure_enriched"),
			Component: "pulse.service.dispatcher",
		})
		log.InfoContext(ctx, "dispatched")

		out := buf.String()
		Expect(out).To(ContainSubstring(`"ticket_id":42`))
		Expect(out).To(ContainSubstring(`"event_type":"ticket-updated"`))
		Expect(out).To(ContainSubstring(`"action":"closure_enriched"`))
		Expect(out).To(ContainSubstring(`"component":"pulse.service.dispatcher"`))
		Expect(out).NotTo(ContainSubstring("trace_id"))
	})
})
