package webhook

import (
	"crypto/subtle"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"supportpulse.app/pulse/common/logger"
	"supportpulse.app/pulse/internal/gorgias"
	"supportpulse.app/pulse/internal/http/dto"
	"supportpulse.app/pulse/internal/service"
)

type GorgiasWebhookHandler struct {
	dispatcher   service.Dispatcher
	secret       string
	maxBodyBytes int64
}

func NewGorgiasWebhookHandler(dispatcher service.Dispatcher, secret string, maxBodyBytes int64) *GorgiasWebhookHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = 1 << 20
	}
	return &GorgiasWebhookHandler{
		dispatcher:   dispatcher,
		secret:       secret,
		maxBodyBytes: maxBodyBytes,
	}
}

// HandleEvent answers 401 for a bad secret and 200 {"success":true} for
// everything else, including bodies it cannot parse and failed writes.
func (h *GorgiasWebhookHandler) HandleEvent(c *gin.Context) {
	ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{Component: "pulse.http.webhook"})

	if !h.authorized(c.Query("secret")) {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes))
	if err != nil {
		slog.WarnContext(ctx, "failed to read gorgias webhook body", "error", err)
		c.JSON(http.StatusOK, dto.WebhookAck{Success: true})
		return
	}

	payload, err := gorgias.Parse(body)
	if err != nil {
		slog.WarnContext(ctx, "failed to parse gorgias webhook body", "error", err, "body_bytes", len(body))
		c.JSON(http.StatusOK, dto.WebhookAck{Success: true})
		return
	}

	result, err := h.dispatcher.Dispatch(ctx, body, payload)
	if err != nil {
		slog.ErrorContext(ctx, "failed to process gorgias event", "error", err, "event_type", payload.EventType)
		c.JSON(http.StatusOK, dto.WebhookAck{Success: true})
		return
	}

	slog.DebugContext(ctx, "gorgias webhook handled",
		"event_type", payload.EventType,
		"action", result.Action,
		"duplicated", result.Duplicated,
	)
	c.JSON(http.StatusOK, dto.WebhookAck{Success: true})
}

func (h *GorgiasWebhookHandler) authorized(secret string) bool {
	if h.secret == "" || secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(h.secret)) == 1
}
