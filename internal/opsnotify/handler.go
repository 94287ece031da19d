package opsnotify

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	v1 "github.com/municipio-lab/muni-backend/internal/api/v1"
	httperr "github.com/municipio-lab/muni-backend/internal/core/errors"
	"github.com/municipio-lab/muni-backend/internal/server"

	"github.com/gin-gonic/gin"
)

const maxOpsBodyBytes = 64 * 1024

// Ingester is the part of Pipeline the HTTP layer depends on.
type Ingester interface {
	IngestExternalEvent(ctx context.Context, raw RawEvent, nctx *NotificationContext) NormalizedEvent
}

// Handler exposes the pipeline over HTTP.
type Handler struct {
	ingester Ingester
}

func NewHandler(ingester Ingester) *Handler {
	if ingester == nil {
		panic("opsnotify: ingester must not be nil")
	}
	return &Handler{ingester: ingester}
}

// RegisterRoutes registers the ops event routes.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/v1/ops/events", h.IngestHandler)
}

// IngestHandler handles POST /v1/ops/events. It answers 202 once the event
// is accepted; delivery outcome is never reported back.
func (h *Handler) IngestHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxOpsBodyBytes)

	var evt v1.OpsEvent
	if err := c.ShouldBindJSON(&evt); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			slog.Warn("[OpsNotify] Request body exceeds maximum size", "max", tooLarge.Limit)
			c.JSON(http.StatusRequestEntityTooLarge, httperr.ErrorResponse{
				ErrorType: httperr.HttpInvalidJsonError,
				Message:   "Request body exceeds maximum allowed size",
				Details: map[string]interface{}{
					"max_size_bytes": tooLarge.Limit,
				},
			})
			return
		}
		slog.Warn("[OpsNotify] Invalid JSON body received", "error", err)
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidJsonError,
			Message:   "Invalid JSON body",
		})
		return
	}

	if err := evt.Validate(); err != nil {
		slog.Warn("[OpsNotify] Event validation failed", "error", err, "source", evt.Source, "type", evt.Type)
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidRequestError,
			Message:   err.Error(),
		})
		return
	}

	normalized := h.ingester.IngestExternalEvent(c.Request.Context(), RawEvent{
		Source:      evt.Source,
		Type:        evt.Type,
		Severity:    evt.Severity,
		Title:       evt.Title,
		Message:     evt.Message,
		Fingerprint: evt.Fingerprint,
		OccurredAt:  evt.OccurredAt,
		Metadata:    evt.Metadata,
	}, notificationContextFrom(c))

	c.JSON(http.StatusAccepted, gin.H{
		"status":      "accepted",
		"fingerprint": normalized.Fingerprint,
	})
}

func notificationContextFrom(c *gin.Context) *NotificationContext {
	return &NotificationContext{
		RequestID: server.RequestIDFrom(c),
		ClientIP:  c.ClientIP(),
	}
}
