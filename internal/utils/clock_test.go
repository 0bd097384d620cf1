package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in       string
		hour, mi int
	}{
		{"00:00", 0, 0},
		{"09:05", 9, 5},
		{"16:00", 16, 0},
		{"23:59", 23, 59},
		{" 16:00 ", 16, 0}, // surrounding whitespace tolerated
	}
	for _, tc := range cases {
		h, m, err := ParseClock(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.hour, h, tc.in)
		assert.Equal(t, tc.mi, m, tc.in)
	}

	for _, bad := range []string{"", "16", "16:00:00", "4pm", "24:00", "12:60", "aa:bb", "-1:30"} {
		_, _, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestCombineDateClock(t *testing.T) {
	date := time.Date(2026, time.June, 10, 13, 22, 31, 99, time.UTC)
	got, err := CombineDateClock(date, "16:05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.June, 10, 16, 5, 0, 0, time.UTC), got)

	_, err = CombineDateClock(date, "half past four")
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:05", FormatClock(time.Date(2026, time.June, 10, 9, 5, 0, 0, time.UTC)))
	assert.Equal(t, "22:40", FormatClock(time.Date(2026, time.June, 10, 22, 40, 59, 0, time.UTC)))
}
