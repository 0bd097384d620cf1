package risk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourops/tour-logistics/internal/model"
)

func ts(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

func tsp(year int, month time.Month, day, hour, min int) *time.Time {
	t := ts(year, month, day, hour, min)
	return &t
}

// baseShow returns a confirmed show on 2026-06-10 that must be on site
// by 16:00.
func baseShow() *model.Show {
	return &model.Show{
		ID:                 1,
		City:               "San Diego",
		VenueName:          "The Observatory",
		ShowDate:           ts(2026, time.June, 10, 0, 0),
		RequiredOnSiteTime: "16:00",
		OverallStatus:      model.OverallInProgress,
		VenueStatus:        model.VenueConfirmed,
	}
}

// primaryFlight returns a domestic primary option arriving the morning
// of the show.
func primaryFlight(arrival *time.Time) model.Flight {
	return model.Flight{
		ID:                 10,
		OriginAirport:      "LAX",
		DestinationAirport: "SAN",
		OptionNumber:       1,
		DepartureDatetime:  tsp(2026, time.June, 10, 8, 0),
		ArrivalDatetime:    arrival,
		IsPrimary:          true,
	}
}

func transportWith(minutes int) *model.GroundTransport {
	return &model.GroundTransport{ShowID: 1, AirportToVenueMinutes: &minutes, Status: model.BookingBooked}
}

func TestEvaluateNoViablePrimary(t *testing.T) {
	show := baseShow()

	t.Run("no flights at all", func(t *testing.T) {
		level, err := Evaluate(show, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, LevelRed, level)
	})

	t.Run("flights exist but none primary", func(t *testing.T) {
		f := primaryFlight(tsp(2026, time.June, 10, 9, 30))
		f.IsPrimary = false
		level, err := Evaluate(show, []model.Flight{f}, nil)
		require.NoError(t, err)
		assert.Equal(t, LevelRed, level)
	})

	t.Run("primary missing arrival time", func(t *testing.T) {
		level, err := Evaluate(show, []model.Flight{primaryFlight(nil)}, nil)
		require.NoError(t, err)
		assert.Equal(t, LevelRed, level)
	})
}

func TestEvaluateBufferFloor(t *testing.T) {
	show := baseShow()

	// Arrives 13:45, +45 min transport -> 14:30, 90 minutes before the
	// 16:00 deadline.  Under the 120 minute floor regardless of
	// anything else.
	flights := []model.Flight{primaryFlight(tsp(2026, time.June, 10, 13, 45))}
	level, err := Evaluate(show, flights, nil)
	require.NoError(t, err)
	assert.Equal(t, LevelRed, level)

	// Even with redundancy and a confirmed venue the floor wins.
	backup := primaryFlight(tsp(2026, time.June, 10, 7, 0))
	backup.IsPrimary = false
	backup.IsBackup = true
	backup.OptionNumber = 2
	level, err = Evaluate(show, append(flights, backup), nil)
	require.NoError(t, err)
	assert.Equal(t, LevelRed, level)
}

func TestEvaluateVenueUnconfirmed(t *testing.T) {
	flights := []model.Flight{primaryFlight(tsp(2026, time.June, 10, 9, 30))}

	show := baseShow()
	show.VenueStatus = model.VenueUnconfirmed
	level, err := Evaluate(show, flights, nil)
	require.NoError(t, err)
	assert.Equal(t, LevelRed, level)

	// A completed show with an unconfirmed venue is history, not risk;
	// evaluation falls through to the later rules.
	show.OverallStatus = model.OverallCompleted
	level, err = Evaluate(show, flights, nil)
	require.NoError(t, err)
	assert.Equal(t, LevelYellow, level) // single option, no backup
}

func TestEvaluateRequiredBuffer(t *testing.T) {
	t.Run("domestic below 180 is yellow", func(t *testing.T) {
		show := baseShow()
		// 13:15 + 45 -> 14:00, buffer 120: at the floor but under 180.
		flights := []model.Flight{primaryFlight(tsp(2026, time.June, 10, 13, 15))}
		level, err := Evaluate(show, flights, nil)
		require.NoError(t, err)
		assert.Equal(t, LevelYellow, level)
	})

	t.Run("international below 300 is yellow", func(t *testing.T) {
		show := baseShow()
		f := primaryFlight(tsp(2026, time.June, 10, 11, 5))
		f.OriginAirport = "JFK"
		f.DestinationAirport = "LHR"
		second := f
		second.IsPrimary = false
		second.OptionNumber = 2
		// 11:05 + 45 -> 11:50, buffer 250 >= 180 but < 300.
		level, err := Evaluate(show, []model.Flight{f, second}, nil)
		require.NoError(t, err)
		assert.Equal(t, LevelYellow, level)
	})
}

func TestEvaluateRedundancy(t *testing.T) {
	show := baseShow()
	// 09:30 + 45 -> 10:15, buffer 345: clear of every buffer rule.
	only := primaryFlight(tsp(2026, time.June, 10, 9, 30))

	t.Run("single option no backup is yellow", func(t *testing.T) {
		level, err := Evaluate(show, []model.Flight{only}, nil)
		require.NoError(t, err)
		assert.Equal(t, LevelYellow, level)
	})

	t.Run("second option satisfies redundancy", func(t *testing.T) {
		second := only
		second.IsPrimary = false
		second.OptionNumber = 2
		level, err := Evaluate(show, []model.Flight{only, second}, nil)
		require.NoError(t, err)
		assert.Equal(t, LevelGreen, level)
	})

	t.Run("backup flagged satisfies redundancy", func(t *testing.T) {
		backup := only
		backup.IsPrimary = false
		backup.IsBackup = true
		backup.OptionNumber = 2
		level, err := Evaluate(show, []model.Flight{only, backup}, nil)
		require.NoError(t, err)
		assert.Equal(t, LevelGreen, level)
	})
}

func TestEvaluateWeatherProne(t *testing.T) {
	show := baseShow()
	show.ShowDate = ts(2026, time.January, 15, 0, 0)

	f := primaryFlight(tsp(2026, time.January, 15, 9, 30))
	f.OriginAirport = "ORD"
	f.DestinationAirport = "BNA"
	second := f
	second.IsPrimary = false
	second.OptionNumber = 2

	level, err := Evaluate(show, []model.Flight{f, second}, nil)
	require.NoError(t, err)
	assert.Equal(t, LevelYellow, level)

	// Same route in June is fine.
	show.ShowDate = ts(2026, time.June, 15, 0, 0)
	f.ArrivalDatetime = tsp(2026, time.June, 15, 9, 30)
	second.ArrivalDatetime = f.ArrivalDatetime
	level, err = Evaluate(show, []model.Flight{f, second}, nil)
	require.NoError(t, err)
	assert.Equal(t, LevelGreen, level)
}

func TestEvaluateOvernight(t *testing.T) {
	show := baseShow()

	mk := func(dep, arr *time.Time) []model.Flight {
		f := primaryFlight(arr)
		f.DepartureDatetime = dep
		second := f
		second.IsPrimary = false
		second.OptionNumber = 2
		return []model.Flight{f, second}
	}

	t.Run("late departure is yellow", func(t *testing.T) {
		level, err := Evaluate(show, mk(tsp(2026, time.June, 9, 22, 30), tsp(2026, time.June, 10, 8, 0)), nil)
		require.NoError(t, err)
		assert.Equal(t, LevelYellow, level)
	})

	t.Run("pre-dawn arrival is yellow", func(t *testing.T) {
		level, err := Evaluate(show, mk(tsp(2026, time.June, 10, 2, 0), tsp(2026, time.June, 10, 5, 30)), nil)
		require.NoError(t, err)
		assert.Equal(t, LevelYellow, level)
	})

	t.Run("unknown departure never counts as overnight", func(t *testing.T) {
		level, err := Evaluate(show, mk(nil, tsp(2026, time.June, 10, 5, 30)), nil)
		require.NoError(t, err)
		assert.Equal(t, LevelGreen, level)
	})
}

func TestEvaluateScenarioGrid(t *testing.T) {
	// The end-to-end scenarios from the risk rating's acceptance
	// checklist.
	show := baseShow()

	t.Run("one flight, big buffer, domestic", func(t *testing.T) {
		f := primaryFlight(tsp(2026, time.June, 10, 9, 30))
		f.OriginAirport = "JFK"
		f.DestinationAirport = "LAX"
		level, err := Evaluate(show, []model.Flight{f}, transportWith(45))
		require.NoError(t, err)
		assert.Equal(t, LevelYellow, level) // no redundancy
	})

	t.Run("green with redundancy and backup", func(t *testing.T) {
		// 11:55 + 45 -> 12:40, buffer 200.
		f := primaryFlight(tsp(2026, time.June, 10, 11, 55))
		backup := f
		backup.IsPrimary = false
		backup.IsBackup = true
		backup.OptionNumber = 2
		level, err := Evaluate(show, []model.Flight{f, backup}, transportWith(45))
		require.NoError(t, err)
		assert.Equal(t, LevelGreen, level)
	})
}

func TestEvaluateDefaultTransport(t *testing.T) {
	show := baseShow()
	// 14:10 without transport: default 45 min -> 14:55, buffer 65 -> Red.
	// With a 10 minute drive the buffer is 100 -> still Red.
	// With a real 10 minute drive and an earlier arrival it clears.
	flights := []model.Flight{primaryFlight(tsp(2026, time.June, 10, 14, 10))}

	level, err := Evaluate(show, flights, nil)
	require.NoError(t, err)
	assert.Equal(t, LevelRed, level)

	// Zero stored minutes means "unknown" and falls back to the default.
	level, err = Evaluate(show, flights, transportWith(0))
	require.NoError(t, err)
	assert.Equal(t, LevelRed, level)
}

func TestEvaluateMonotonicTransport(t *testing.T) {
	// Increasing the drive time never moves a show toward Green.
	rank := map[Level]int{LevelGreen: 0, LevelYellow: 1, LevelRed: 2}
	show := baseShow()
	f := primaryFlight(tsp(2026, time.June, 10, 11, 0))
	second := f
	second.IsPrimary = false
	second.OptionNumber = 2
	flights := []model.Flight{f, second}

	prev := LevelGreen
	for minutes := 15; minutes <= 240; minutes += 15 {
		level, err := Evaluate(show, flights, transportWith(minutes))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rank[level], rank[prev],
			"risk should not improve as drive time grows (at %d minutes)", minutes)
		prev = level
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	show := baseShow()
	flights := []model.Flight{primaryFlight(tsp(2026, time.June, 10, 9, 30))}
	tr := transportWith(30)

	first, err := Evaluate(show, flights, tr)
	require.NoError(t, err)
	second, err := Evaluate(show, flights, tr)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEvaluatePreconditions(t *testing.T) {
	flights := []model.Flight{primaryFlight(tsp(2026, time.June, 10, 9, 30))}

	t.Run("nil show", func(t *testing.T) {
		_, err := Evaluate(nil, flights, nil)
		assert.ErrorIs(t, err, ErrInvalidShow)
	})

	t.Run("zero show date", func(t *testing.T) {
		show := baseShow()
		show.ShowDate = time.Time{}
		_, err := Evaluate(show, flights, nil)
		assert.ErrorIs(t, err, ErrInvalidShow)
	})

	t.Run("malformed on-site time", func(t *testing.T) {
		show := baseShow()
		show.RequiredOnSiteTime = "4pm"
		_, err := Evaluate(show, flights, nil)
		assert.ErrorIs(t, err, ErrInvalidShow)
	})

	t.Run("malformed time without a primary flight is still red", func(t *testing.T) {
		// The no-primary rule fires before the deadline is ever parsed.
		show := baseShow()
		show.RequiredOnSiteTime = "4pm"
		level, err := Evaluate(show, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, LevelRed, level)
	})
}
