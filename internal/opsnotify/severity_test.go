package opsnotify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		raw  string
		want Severity
	}{
		{"info", SeverityInfo},
		{" WARN ", SeverityWarn},
		{"Error", SeverityError},
		{"CRITICAL\n", SeverityCritical},
		{"", SeverityError},
		{"fatal", SeverityError},
		{"warning", SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			require.Equal(t, tt.want, ParseSeverity(tt.raw, DefaultSeverity))
		})
	}
}

func TestSeverity_TotalOrder(t *testing.T) {
	ordered := []Severity{SeverityInfo, SeverityWarn, SeverityError, SeverityCritical}
	for i := 1; i < len(ordered); i++ {
		require.Less(t, ordered[i-1].Rank(), ordered[i].Rank())
	}

	require.True(t, SeverityError.AtLeast(SeverityWarn))
	require.True(t, SeverityWarn.AtLeast(SeverityWarn))
	require.False(t, SeverityInfo.AtLeast(SeverityWarn))
	require.False(t, Severity("bogus").Valid())
}
