package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"supportpulse.app/pulse/internal/http/dto"
	"supportpulse.app/pulse/internal/model"
	"supportpulse.app/pulse/internal/service"
)

type PulseCheckHandler struct {
	service service.PulseCheckService
}

func NewPulseCheckHandler(service service.PulseCheckService) *PulseCheckHandler {
	return &PulseCheckHandler{service: service}
}

func (h *PulseCheckHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	checks, err := h.service.List(ctx, query.Limit)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list pulse checks", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to list pulse checks"})
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse[model.PulseCheck](checks))
}

func (h *PulseCheckHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pulse check id"})
		return
	}

	check, err := h.service.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrPulseCheckNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "pulse check not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to get pulse check", "error", err, "pulse_check_id", id)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to get pulse check"})
		return
	}

	c.JSON(http.StatusOK, check)
}

func (h *PulseCheckHandler) Seed(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.service.Seed(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to seed pulse checks", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
