package opsnotify

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

const (
	maxTokenLen       = 64
	maxTitleLen       = 120
	maxMessageLen     = 400
	maxFingerprintLen = 120
	fingerprintHexLen = 32

	fallbackSource  = "unknown"
	fallbackType    = "event"
	fallbackMessage = "Sin detalle"
)

// Normalize converts a raw event into its canonical shape. It never fails:
// missing fields are replaced by defaults and oversized text is truncated.
func Normalize(raw RawEvent, now time.Time) NormalizedEvent {
	source := sanitizeToken(raw.Source, fallbackSource)
	eventType := sanitizeToken(raw.Type, fallbackType)
	severity := ParseSeverity(raw.Severity, DefaultSeverity)

	title := sanitizeText(raw.Title, maxTitleLen)
	if title == "" {
		title = eventType
	}
	message := sanitizeText(raw.Message, maxMessageLen)
	if message == "" {
		message = fallbackMessage
	}

	fingerprint := sanitizeText(raw.Fingerprint, maxFingerprintLen)
	if fingerprint == "" {
		fingerprint = deriveFingerprint(source, eventType, severity, message)
	}

	return NormalizedEvent{
		Source:      source,
		Type:        eventType,
		Severity:    severity,
		Title:       title,
		Message:     message,
		Fingerprint: fingerprint,
		OccurredAt:  parseOccurredAt(raw.OccurredAt, now),
		Metadata:    raw.Metadata,
	}
}

// deriveFingerprint hashes source:type:severity:lower(message) and keeps the
// first 32 hex characters (128 bits).
func deriveFingerprint(source, eventType string, severity Severity, message string) string {
	sum := sha256.Sum256([]byte(source + ":" + eventType + ":" + string(severity) + ":" + strings.ToLower(message)))
	return hex.EncodeToString(sum[:])[:fingerprintHexLen]
}

func parseOccurredAt(raw string, now time.Time) time.Time {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t.UTC()
		}
	}
	return now.UTC()
}

// sanitizeText collapses whitespace runs, trims and truncates to max runes.
func sanitizeText(s string, max int) string {
	return truncateRunes(strings.Join(strings.Fields(s), " "), max)
}

// sanitizeToken lowercases and replaces anything outside [a-z0-9._-] with '_'.
func sanitizeToken(s, fallback string) string {
	s = strings.ToLower(sanitizeText(s, maxTokenLen))
	if s == "" {
		return fallback
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
}

func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
