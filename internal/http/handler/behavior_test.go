package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"supportpulse.app/pulse/internal/http/handler"
	"supportpulse.app/pulse/internal/model"
)

var _ = Describe("BehaviorHandler", func() {
	var (
		router *gin.Engine
		svc    *mockBehaviorService
	)

	get := func(target string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockBehaviorService{}
		h := handler.NewBehaviorHandler(svc)
		router.GET("/agent-behavior", h.List)
		router.GET("/agent-behavior/stats", h.Stats)
	})

	It("lists recent events", func() {
		name := "Ana"
		svc.listFn = func(_ context.Context, limit int32) ([]model.BehaviorEvent, error) {
			Expect(limit).To(BeZero())
			return []model.BehaviorEvent{{EventType: model.BehaviorEventReply, TicketID: 500, AgentName: &name}}, nil
		}

		w := get("/agent-behavior")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"agent_name":"Ana"`))
		Expect(w.Body.String()).To(ContainSubstring(`"count":1`))
		Expect(w.Body.String()).NotTo(ContainSubstring("raw_payload"))
	})

	It("returns the agent summary", func() {
		svc.summaryFn = func(_ context.Context, limit int32) (*model.BehaviorSummary, error) {
			Expect(limit).To(Equal(int32(50)))
			return &model.BehaviorSummary{
				Agents:       []model.AgentStats{{Name: "Ana", Replies: 3, MacroRate: 33}},
				TotalReplies: 3,
				ActiveAgents: 1,
			}, nil
		}

		w := get("/agent-behavior/stats?limit=50")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"total_replies":3`))
		Expect(w.Body.String()).To(ContainSubstring(`"macro_rate":33`))
	})

	It("returns 500 when the summary fails", func() {
		svc.summaryFn = func(context.Context, int32) (*model.BehaviorSummary, error) {
			return nil, errors.New("boom")
		}
		Expect(get("/agent-behavior/stats").Code).To(Equal(http.StatusInternalServerError))
	})
})
