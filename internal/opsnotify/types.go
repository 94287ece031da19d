package opsnotify

import "time"

// RawEvent is an inbound operational event before normalization.
// Every field is optional from the pipeline's point of view.
type RawEvent struct {
	Source      string
	Type        string
	Severity    string
	Title       string
	Message     string
	Fingerprint string
	OccurredAt  string // RFC3339
	Metadata    map[string]any
}

// NormalizedEvent is the canonical, sanitized form of a RawEvent.
type NormalizedEvent struct {
	Source      string
	Type        string
	Severity    Severity
	Title       string
	Message     string
	Fingerprint string
	OccurredAt  time.Time
	Metadata    map[string]any
}

// NotificationContext carries request correlation data into the delivered message.
type NotificationContext struct {
	RequestID string
	ClientIP  string
}

// EventOutcome is the pipeline stage an event terminated in.
type EventOutcome string

const (
	OutcomeAccepted        EventOutcome = "accepted"
	OutcomeSkippedDisabled EventOutcome = "skipped_disabled"
	OutcomeSkippedSeverity EventOutcome = "skipped_severity"
	OutcomeThrottled       EventOutcome = "throttled"
	OutcomeFailed          EventOutcome = "failed"
	OutcomeSent            EventOutcome = "sent"
)

// SinkOutcome is the delivery-level result of an event.
type SinkOutcome string

const (
	SinkSent      SinkOutcome = "sent"
	SinkFailed    SinkOutcome = "failed"
	SinkThrottled SinkOutcome = "throttled"
	SinkSkipped   SinkOutcome = "skipped"
)
