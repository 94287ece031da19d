//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	v1 "github.com/municipio-lab/muni-backend/internal/api/v1"

	"github.com/stretchr/testify/require"
)

func TestOpsEvents_DeliveredAndThrottled(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	event := v1.OpsEvent{
		Source:   "whatsapp-bot",
		Type:     "webhook_failure",
		Severity: "critical",
		Title:    "Bot sin respuesta",
		Message:  "timeout calling provider",
		Metadata: map[string]any{"token": "abc123", "attempt": 3},
	}

	var fingerprint string
	for i := 0; i < 2; i++ {
		status, body := doJSON(t, h.client, http.MethodPost, h.baseURL+"/v1/ops/events", testOpsKey, event)
		require.Equal(t, http.StatusAccepted, status, string(body))

		var resp struct {
			Status      string `json:"status"`
			Fingerprint string `json:"fingerprint"`
		}
		require.NoError(t, json.Unmarshal(body, &resp))
		require.Equal(t, "accepted", resp.Status)
		fingerprint = resp.Fingerprint
	}
	require.Len(t, fingerprint, 32)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, h.pipeline.Drain(ctx))

	messages := h.webhook.received()
	require.Len(t, messages, 1)
	require.Contains(t, messages[0], "Bot sin respuesta")
	require.Contains(t, messages[0], "[REDACTED]")
	require.False(t, strings.Contains(messages[0], "abc123"))
}

func TestOpsEvents_BelowMinSeverityIsNotDelivered(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	status, body := doJSON(t, h.client, http.MethodPost, h.baseURL+"/v1/ops/events", testOpsKey, v1.OpsEvent{
		Source:   "whatsapp-bot",
		Type:     "heartbeat",
		Severity: "info",
		Title:    "Heartbeat",
	})
	require.Equal(t, http.StatusAccepted, status, string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, h.pipeline.Drain(ctx))

	require.Empty(t, h.webhook.received())
}

func TestOpsEvents_ServerErrorsAreReported(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	// Hiding the table makes every reclamo query fail with a 500.
	_, err := h.db.Exec(`ALTER TABLE reclamos RENAME TO reclamos_hidden`)
	require.NoError(t, err)
	defer func() {
		_, err := h.db.Exec(`ALTER TABLE reclamos_hidden RENAME TO reclamos`)
		require.NoError(t, err)
	}()

	status, body := doJSON(t, h.client, http.MethodGet, h.baseURL+"/v1/reclamos?limit=5", testReclamoKey, nil)
	require.Equal(t, http.StatusInternalServerError, status, string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, h.pipeline.Drain(ctx))

	messages := h.webhook.received()
	require.Len(t, messages, 1)
	require.Contains(t, messages[0], "http_5xx")
}

func TestOpsEvents_RequiresKey(t *testing.T) {
	h := startHarness(t)
	defer h.close(t)

	status, body := doJSON(t, h.client, http.MethodPost, h.baseURL+"/v1/ops/events", "", v1.OpsEvent{
		Source: "whatsapp-bot",
		Type:   "webhook_failure",
	})
	require.Equal(t, http.StatusUnauthorized, status, string(body))
}
