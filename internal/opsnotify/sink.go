package opsnotify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultSinkTimeout = 3 * time.Second
	maxMetadataLen     = 1500
)

var (
	// ErrWebhookNotConfigured is returned when no webhook URL is set.
	ErrWebhookNotConfigured = errors.New("webhook url not configured")
	// ErrUnexpectedStatus is returned for non-2xx webhook responses.
	ErrUnexpectedStatus = errors.New("unexpected webhook status")
)

// Sink delivers a normalized event to an external channel.
type Sink interface {
	Send(ctx context.Context, evt NormalizedEvent, nctx *NotificationContext) error
}

// SlackSink posts events to a Slack-compatible incoming webhook.
// Delivery is best effort: one attempt, no retry.
type SlackSink struct {
	webhookURL  string
	environment string
	timeout     time.Duration
	client      *http.Client
}

func NewSlackSink(webhookURL, environment string, timeout time.Duration) *SlackSink {
	if timeout <= 0 {
		timeout = defaultSinkTimeout
	}
	return &SlackSink{
		webhookURL:  strings.TrimSpace(webhookURL),
		environment: environment,
		timeout:     timeout,
		client:      &http.Client{},
	}
}

type slackPayload struct {
	Text string `json:"text"`
}

func (s *SlackSink) Send(ctx context.Context, evt NormalizedEvent, nctx *NotificationContext) error {
	if s.webhookURL == "" {
		return ErrWebhookNotConfigured
	}

	body, err := json.Marshal(slackPayload{Text: FormatMessage(evt, nctx, s.environment)})
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return nil
}

// FormatMessage renders the text body of an alert. Metadata is redacted
// before rendering.
func FormatMessage(evt NormalizedEvent, nctx *NotificationContext, environment string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s.%s\n", strings.ToUpper(evt.Severity.String()), evt.Source, evt.Type)
	fmt.Fprintf(&b, "*%s*\n", evt.Title)
	b.WriteString(evt.Message)
	b.WriteString("\n")
	if environment != "" {
		fmt.Fprintf(&b, "env: %s\n", environment)
	}
	fmt.Fprintf(&b, "at: %s\n", evt.OccurredAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "fingerprint: %s", evt.Fingerprint)

	if nctx != nil {
		if nctx.RequestID != "" {
			fmt.Fprintf(&b, "\nrequest_id: %s", nctx.RequestID)
		}
		if nctx.ClientIP != "" {
			fmt.Fprintf(&b, "\nclient_ip: %s", nctx.ClientIP)
		}
	}

	if len(evt.Metadata) > 0 {
		if meta, err := json.Marshal(RedactMetadata(evt.Metadata)); err == nil {
			fmt.Fprintf(&b, "\nmetadata: %s", truncateRunes(string(meta), maxMetadataLen))
		}
	}
	return b.String()
}
