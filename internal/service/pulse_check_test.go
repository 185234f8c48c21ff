package service_test

import (
	"context"
	"errors"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"supportpulse.app/pulse/internal/model"
	"supportpulse.app/pulse/internal/service"
)

var _ = Describe("PulseCheckService", func() {
	var (
		ctx context.Context
		db  *memDB
		svc service.PulseCheckService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newMemDB()
		svc = service.NewPulseCheckService(db.PulseChecks(), &memTxRunner{db: db}, nil)
	})

	Describe("Seed", func() {
		It("inserts the three weekly snapshots into an empty table", func() {
			result, err := svc.Seed(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Message).To(Equal("Seeded successfully"))
			Expect(result.Count).To(Equal(3))

			Expect(db.pulses).To(HaveLen(3))
			Expect(db.pulses[0].TicketCount).To(Equal(142))
			Expect(db.pulses[1].UnassignedPct).To(Equal(41.8))
			Expect(db.pulses[2].Workload).To(HaveKeyWithValue("Alex", 8))
			for _, p := range db.pulses {
				Expect(p.ID).NotTo(Equal(uuid.Nil))
				Expect(p.TopQuestions).To(HaveLen(6))
			}
		})

		It("does nothing once data exists", func() {
			_, err := svc.Seed(ctx)
			Expect(err).NotTo(HaveOccurred())

			result, err := svc.Seed(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Message).To(Equal("Data already exists"))
			Expect(result.Count).To(Equal(1))
			Expect(db.pulses).To(HaveLen(3))
		})

		It("surfaces store errors", func() {
			db.pulseAnyErr = errors.New("timeout")
			_, err := svc.Seed(ctx)
			Expect(err).To(MatchError(ContainSubstring("timeout")))
		})
	})

	Describe("List", func() {
		BeforeEach(func() {
			_, err := svc.Seed(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns newest first", func() {
			checks, err := svc.List(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(checks).To(HaveLen(3))
			Expect(checks[0].TicketCount).To(Equal(138))
		})

		DescribeTable("clamps the limit",
			func(in, want int32) {
				_, err := svc.List(ctx, in)
				Expect(err).NotTo(HaveOccurred())
				Expect(db.lastLimit).To(Equal(want))
			},
			Entry("default", int32(0), int32(service.DefaultPulseCheckLimit)),
			Entry("negative", int32(-4), int32(service.DefaultPulseCheckLimit)),
			Entry("in range", int32(5), int32(5)),
			Entry("too large", int32(1000), int32(service.MaxPulseCheckLimit)),
		)
	})

	Describe("Get", func() {
		It("finds a seeded check", func() {
			_, err := svc.Seed(ctx)
			Expect(err).NotTo(HaveOccurred())

			got, err := svc.Get(ctx, db.pulses[1].ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.TicketCount).To(Equal(156))
		})

		It("maps a missing row to ErrPulseCheckNotFound", func() {
			_, err := svc.Get(ctx, uuid.New())
			Expect(errors.Is(err, service.ErrPulseCheckNotFound)).To(BeTrue())
		})
	})

	It("stores distinct ids per check", func() {
		_, err := svc.Seed(ctx)
		Expect(err).NotTo(HaveOccurred())
		ids := map[uuid.UUID]model.PulseCheck{}
		for _, p := range db.pulses {
			ids[p.ID] = p
		}
		Expect(ids).To(HaveLen(3))
	})
})
