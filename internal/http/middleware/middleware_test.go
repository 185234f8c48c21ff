package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"supportpulse.app/pulse/internal/http/middleware"
)

var _ = Describe("middleware", func() {
	var logs *bytes.Buffer

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		logs = &bytes.Buffer{}
		slog.SetDefault(slog.New(slog.NewJSONHandler(logs, nil)))
	})

	serve := func(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	Describe("RequireAdminAPIKey", func() {
		newRouter := func(key string) *gin.Engine {
			r := gin.New()
			r.POST("/seed", middleware.RequireAdminAPIKey(key), func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{"ok": true})
			})
			return r
		}

		It("is open when no key is configured", func() {
			w := serve(newRouter(""), httptest.NewRequest(http.MethodPost, "/seed", nil))
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("accepts the header", func() {
			req := httptest.NewRequest(http.MethodPost, "/seed", nil)
			req.Header.Set(middleware.AdminAPIKeyHeader, "k")
			Expect(serve(newRouter("k"), req).Code).To(Equal(http.StatusOK))
		})

		It("accepts a bearer token", func() {
			req := httptest.NewRequest(http.MethodPost, "/seed", nil)
			req.Header.Set("Authorization", "Bearer k")
			Expect(serve(newRouter("k"), req).Code).To(Equal(http.StatusOK))
		})

		It("rejects a missing or wrong key", func() {
			Expect(serve(newRouter("k"), httptest.NewRequest(http.MethodPost, "/seed", nil)).Code).To(Equal(http.StatusUnauthorized))

			req := httptest.NewRequest(http.MethodPost, "/seed", nil)
			req.Header.Set(middleware.AdminAPIKeyHeader, "nope")
			Expect(serve(newRouter("k"), req).Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Recovery", func() {
		It("turns a panic into a 500", func() {
			r := gin.New()
			r.Use(middleware.Recovery())
			r.GET("/boom", func(*gin.Context) { panic("kaboom") })

			w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).To(MatchJSON(`{"error":"internal server error"}`))
			Expect(logs.String()).To(ContainSubstring("panic recovered"))
		})
	})

	Describe("Logger", func() {
		It("logs requests without the query string", func() {
			r := gin.New()
			r.Use(middleware.Logger())
			r.POST("/hook", func(c *gin.Context) { c.Status(http.StatusOK) })

			serve(r, httptest.NewRequest(http.MethodPost, "/hook?secret=hunter2", nil))
			Expect(logs.String()).To(ContainSubstring(`"path":"/hook"`))
			Expect(logs.String()).NotTo(ContainSubstring("hunter2"))
		})
	})
})
