package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferMinutes(t *testing.T) {
	showDate := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name      string
		onSite    string
		arrival   time.Time
		transport int
		want      int
	}{
		{
			name:      "comfortable morning arrival",
			onSite:    "16:00",
			arrival:   time.Date(2026, time.June, 10, 9, 30, 0, 0, time.UTC),
			transport: 45,
			want:      345,
		},
		{
			name:      "exactly at the deadline",
			onSite:    "16:00",
			arrival:   time.Date(2026, time.June, 10, 15, 15, 0, 0, time.UTC),
			transport: 45,
			want:      0,
		},
		{
			name:      "lands too late is negative",
			onSite:    "16:00",
			arrival:   time.Date(2026, time.June, 10, 16, 30, 0, 0, time.UTC),
			transport: 30,
			want:      -60,
		},
		{
			name:      "deadline anchored to the show date, not the arrival date",
			onSite:    "16:00",
			arrival:   time.Date(2026, time.June, 9, 23, 0, 0, 0, time.UTC),
			transport: 60,
			want:      16 * 60, // midnight to 16:00
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := BufferMinutes(tc.onSite, showDate, tc.arrival, tc.transport)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBufferMinutesTruncatesTowardZero(t *testing.T) {
	showDate := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

	// 90 seconds past the deadline rounds to -1, not -2; 90 seconds
	// clear rounds to 1.
	late := time.Date(2026, time.June, 10, 16, 1, 30, 0, time.UTC)
	got, err := BufferMinutes("16:00", showDate, late, 0)
	require.NoError(t, err)
	assert.Equal(t, -1, got)

	early := time.Date(2026, time.June, 10, 15, 58, 30, 0, time.UTC)
	got, err = BufferMinutes("16:00", showDate, early, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestBufferMinutesRejectsMalformedClock(t *testing.T) {
	showDate := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	arrival := time.Date(2026, time.June, 10, 9, 0, 0, 0, time.UTC)

	for _, bad := range []string{"", "16", "4pm", "25:00", "16:60", "16:00:00"} {
		_, err := BufferMinutes(bad, showDate, arrival, 45)
		assert.Error(t, err, "clock %q should be rejected", bad)
	}
}

func TestTransportMinutes(t *testing.T) {
	n := func(v int) *int { return &v }

	assert.Equal(t, DefaultTransportMinutes, TransportMinutes(nil))
	assert.Equal(t, DefaultTransportMinutes, TransportMinutes(n(0)))
	assert.Equal(t, DefaultTransportMinutes, TransportMinutes(n(-10)))
	assert.Equal(t, 25, TransportMinutes(n(25)))
}
