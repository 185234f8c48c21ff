package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"supportpulse.app/pulse/internal/http/handler"
	"supportpulse.app/pulse/internal/model"
	"supportpulse.app/pulse/internal/service"
)

var _ = Describe("PulseCheckHandler", func() {
	var (
		router *gin.Engine
		svc    *mockPulseCheckService
	)

	do := func(method, target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockPulseCheckService{}
		h := handler.NewPulseCheckHandler(svc)
		router.GET("/pulse-checks", h.List)
		router.GET("/pulse-checks/:id", h.Get)
		router.POST("/seed", h.Seed)
	})

	Describe("List", func() {
		It("passes the limit through and wraps the rows", func() {
			var gotLimit int32
			svc.listFn = func(_ context.Context, limit int32) ([]model.PulseCheck, error) {
				gotLimit = limit
				return []model.PulseCheck{{TicketCount: 142}}, nil
			}

			w := do(http.MethodGet, "/pulse-checks?limit=5")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotLimit).To(Equal(int32(5)))
			var resp struct {
				Data  []model.PulseCheck `json:"data"`
				Count int                `json:"count"`
			}
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Count).To(Equal(1))
			Expect(resp.Data[0].TicketCount).To(Equal(142))
		})

		It("returns an empty array rather than null", func() {
			w := do(http.MethodGet, "/pulse-checks")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"data":[],"count":0}`))
		})

		It("rejects a malformed limit", func() {
			Expect(do(http.MethodGet, "/pulse-checks?limit=abc").Code).To(Equal(http.StatusBadRequest))
			Expect(do(http.MethodGet, "/pulse-checks?limit=-1").Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 500 on service failure", func() {
			svc.listFn = func(context.Context, int32) ([]model.PulseCheck, error) {
				return nil, errors.New("boom")
			}
			Expect(do(http.MethodGet, "/pulse-checks").Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("Get", func() {
		It("returns the check", func() {
			id := uuid.New()
			svc.getFn = func(_ context.Context, got uuid.UUID) (*model.PulseCheck, error) {
				Expect(got).To(Equal(id))
				return &model.PulseCheck{ID: id, TicketCount: 7}, nil
			}

			w := do(http.MethodGet, "/pulse-checks/"+id.String())
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring(`"ticket_count":7`))
		})

		It("returns 404 for an unknown id", func() {
			Expect(do(http.MethodGet, "/pulse-checks/"+uuid.NewString()).Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a malformed id", func() {
			Expect(do(http.MethodGet, "/pulse-checks/not-a-uuid").Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Seed", func() {
		It("reports the seed result", func() {
			w := do(http.MethodPost, "/seed")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"message":"Seeded successfully","count":3}`))
		})

		It("reports existing data", func() {
			svc.seedFn = func(context.Context) (*service.SeedResult, error) {
				return &service.SeedResult{Message: "Data already exists", Count: 1}, nil
			}
			w := do(http.MethodPost, "/seed")
			Expect(w.Body.String()).To(MatchJSON(`{"message":"Data already exists","count":1}`))
		})

		It("returns the store error with 500", func() {
			svc.seedFn = func(context.Context) (*service.SeedResult, error) {
				return nil, errors.New("relation pulse_checks does not exist")
			}
			w := do(http.MethodPost, "/seed")
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"relation pulse_checks does not exist"}`))
		})
	})
})
