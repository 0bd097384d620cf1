package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsInternational(t *testing.T) {
	cases := []struct {
		origin, destination string
		want                bool
	}{
		{"JFK", "LAX", false}, // both listed: domestic
		{"JFK", "LHR", true},  // one listed: international
		{"LHR", "JFK", true},  // symmetric over endpoints
		{"jfk", "lhr", true},  // codes compared upper-case
		{"LHR", "CDG", false}, // neither listed: classified domestic by the allow-list
		{"MSY", "ATL", true},  // MSY is hurricane-listed but not in the domestic set
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsInternational(tc.origin, tc.destination),
			"%s-%s", tc.origin, tc.destination)
	}
}

func TestIsWeatherProne(t *testing.T) {
	t.Run("winter months flag northern hubs", func(t *testing.T) {
		for _, m := range []time.Month{time.December, time.January, time.February, time.March} {
			assert.True(t, IsWeatherProne("ORD", "BNA", m), "ORD in %s", m)
			assert.True(t, IsWeatherProne("BNA", "BUF", m), "BUF as destination in %s", m)
		}
		assert.False(t, IsWeatherProne("ORD", "BNA", time.April))
		assert.False(t, IsWeatherProne("ORD", "BNA", time.November))
	})

	t.Run("hurricane season flags gulf and southeast hubs", func(t *testing.T) {
		for _, m := range []time.Month{time.August, time.September, time.October} {
			assert.True(t, IsWeatherProne("MIA", "JFK", m), "MIA in %s", m)
			assert.True(t, IsWeatherProne("JFK", "MSY", m), "MSY as destination in %s", m)
		}
		assert.False(t, IsWeatherProne("MIA", "JFK", time.July))
		assert.False(t, IsWeatherProne("MIA", "JFK", time.November))
	})

	t.Run("unlisted routes are never weather-prone", func(t *testing.T) {
		for m := time.January; m <= time.December; m++ {
			assert.False(t, IsWeatherProne("LAX", "SAN", m), "LAX-SAN in %s", m)
		}
	})
}
