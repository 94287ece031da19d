package opsnotify

import "strings"

// Severity is the alert level of an operational event.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarn     Severity = "warn"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// DefaultSeverity is used when an event carries no severity, or an unknown one.
const DefaultSeverity = SeverityError

var severityRanks = map[Severity]int{
	SeverityInfo:     10,
	SeverityWarn:     20,
	SeverityError:    30,
	SeverityCritical: 40,
}

// ParseSeverity resolves a raw token, case-insensitively and ignoring
// surrounding whitespace. Unknown tokens resolve to fallback.
func ParseSeverity(raw string, fallback Severity) Severity {
	s := Severity(strings.ToLower(strings.TrimSpace(raw)))
	if s.Valid() {
		return s
	}
	return fallback
}

// Valid reports whether s is one of the four known levels.
func (s Severity) Valid() bool {
	_, ok := severityRanks[s]
	return ok
}

// Rank returns the position of s in the total order, 0 for unknown levels.
func (s Severity) Rank() int {
	return severityRanks[s]
}

// AtLeast reports whether s is eligible under the floor min.
func (s Severity) AtLeast(min Severity) bool {
	return s.Rank() >= min.Rank()
}

func (s Severity) String() string {
	return string(s)
}
