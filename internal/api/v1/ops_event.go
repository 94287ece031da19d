package v1

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxOpsTitleLen       = 200
	maxOpsMessageLen     = 2000
	maxOpsFingerprintLen = 200
)

var opsTokenPattern = regexp.MustCompile(`^[a-z0-9._-]{1,64}$`)

var opsSeverities = map[string]bool{
	"info":     true,
	"warn":     true,
	"error":    true,
	"critical": true,
}

// OpsEvent is the body of POST /v1/ops/events.
type OpsEvent struct {
	// Source names the reporting system, e.g. "bot" or "agenda".
	Source string `json:"source"`

	// Type names the kind of problem, e.g. "provider_failure".
	Type string `json:"type"`

	// Severity is one of info, warn, error, critical. Defaults to error.
	Severity string `json:"severity,omitempty"`

	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`

	// Fingerprint groups repeated reports of the same problem.
	// Derived from source, type, severity and message when empty.
	Fingerprint string `json:"fingerprint,omitempty"`

	// OccurredAt is an RFC3339 timestamp; ingestion time when empty.
	OccurredAt string `json:"occurredAt,omitempty"`

	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Validate checks the event against the ingestion contract.
func (e *OpsEvent) Validate() error {
	if !opsTokenPattern.MatchString(e.Source) {
		return fmt.Errorf("source must match %s", opsTokenPattern.String())
	}
	if !opsTokenPattern.MatchString(e.Type) {
		return fmt.Errorf("type must match %s", opsTokenPattern.String())
	}
	if e.Severity != "" && !opsSeverities[strings.ToLower(strings.TrimSpace(e.Severity))] {
		return fmt.Errorf("severity must be one of info, warn, error, critical")
	}
	if utf8.RuneCountInString(e.Title) > maxOpsTitleLen {
		return fmt.Errorf("title exceeds %d characters", maxOpsTitleLen)
	}
	if utf8.RuneCountInString(e.Message) > maxOpsMessageLen {
		return fmt.Errorf("message exceeds %d characters", maxOpsMessageLen)
	}
	if utf8.RuneCountInString(e.Fingerprint) > maxOpsFingerprintLen {
		return fmt.Errorf("fingerprint exceeds %d characters", maxOpsFingerprintLen)
	}
	if e.OccurredAt != "" {
		if _, err := time.Parse(time.RFC3339, e.OccurredAt); err != nil {
			return fmt.Errorf("occurredAt must be RFC3339: %w", err)
		}
	}
	return nil
}
