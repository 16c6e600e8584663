package utils_test

import (
	"testing"
	"time"

	"networth/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodKeyFor(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "UTC timestamp keeps its date",
			input:    time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC),
			expected: "2026-08-30",
		},
		{
			name:     "late evening behind UTC rolls forward",
			input:    time.Date(2026, 8, 30, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*3600)),
			expected: "2026-08-31",
		},
		{
			name:     "early morning ahead of UTC rolls back",
			input:    time.Date(2026, 8, 30, 1, 0, 0, 0, time.FixedZone("UTC+10", 10*3600)),
			expected: "2026-08-29",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.PeriodKeyFor(tt.input))
		})
	}
}

func TestParsePeriodKey(t *testing.T) {
	t.Run("round trips through PeriodKeyFor", func(t *testing.T) {
		parsed, err := utils.ParsePeriodKey("2026-08-30")
		require.NoError(t, err)
		assert.Equal(t, "2026-08-30", utils.PeriodKeyFor(parsed))
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, key := range []string{"08/30/2026", "2026-8-30", "20260830", "", "2026-13-01"} {
			_, err := utils.ParsePeriodKey(key)
			assert.Error(t, err, "key %q", key)
		}
	})
}
