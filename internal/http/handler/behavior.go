package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"supportpulse.app/pulse/internal/http/dto"
	"supportpulse.app/pulse/internal/model"
	"supportpulse.app/pulse/internal/service"
)

type BehaviorHandler struct {
	service service.BehaviorService
}

func NewBehaviorHandler(service service.BehaviorService) *BehaviorHandler {
	return &BehaviorHandler{service: service}
}

func (h *BehaviorHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	events, err := h.service.ListRecent(ctx, query.Limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list behavior events", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to list behavior events"})
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse[model.BehaviorEvent](events))
}

func (h *BehaviorHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := h.service.Summary(ctx, query.Limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to compute agent stats", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to compute agent stats"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
