// Package risk rates the logistical safety margin of a show as Green,
// Yellow or Red from its travel records.  The whole package is pure:
// Evaluate reads the snapshot it is handed and returns a level, so it
// can be called after every flight, transport or show mutation without
// coordination.
package risk

import (
	"errors"
	"fmt"

	"github.com/tourops/tour-logistics/internal/model"
)

// Level is the advisory risk rating attached to a show.
type Level string

// Risk levels, ordered from safe to critical.
const (
	LevelGreen  Level = "Green"
	LevelYellow Level = "Yellow"
	LevelRed    Level = "Red"
)

// Buffer thresholds in minutes.  Below the floor a show is Red no
// matter what; between the floor and the required buffer it is Yellow.
// International routes demand a larger buffer than domestic ones.
const (
	redBufferFloor        = 120
	domesticBuffer        = 180
	internationalBuffer   = 300
	overnightDepartureHr  = 22
	overnightArrivalHr    = 6
)

// ErrInvalidShow wraps precondition violations: a show without a date
// or with a malformed required-on-site time.  Upstream validation is
// supposed to make these impossible, so Evaluate refuses to guess and
// reports the violation instead.
var ErrInvalidShow = errors.New("risk: invalid show")

// Evaluate rates a show from its flight options and the transport
// record designated as primary (callers pass the show's first
// transport, or nil).  Rules are checked in a fixed order and the
// first match wins:
//
//	Red    – no primary flight, or the primary has no arrival time
//	Red    – arrival buffer under 120 minutes
//	Red    – venue unconfirmed and show not completed
//	Yellow – buffer under the required 180/300 minute threshold
//	Yellow – a single flight option and no backup flagged
//	Yellow – weather-prone route for the show's month
//	Yellow – overnight travel (departs >= 22:00 or arrives < 06:00)
//	Green  – otherwise
//
// Later rules are only reached when every earlier rule declined to
// fire, so reordering them changes behavior.
func Evaluate(show *model.Show, flights []model.Flight, transport *model.GroundTransport) (Level, error) {
	if show == nil {
		return "", fmt.Errorf("%w: nil show", ErrInvalidShow)
	}
	if show.ShowDate.IsZero() {
		return "", fmt.Errorf("%w: show %d has no date", ErrInvalidShow, show.ID)
	}

	var primary *model.Flight
	backupFlagged := false
	for i := range flights {
		if flights[i].IsPrimary && primary == nil {
			primary = &flights[i]
		}
		if flights[i].IsBackup {
			backupFlagged = true
		}
	}

	// Without a committed flight and a known arrival there is no way
	// to bound the risk.
	if primary == nil || primary.ArrivalDatetime == nil {
		return LevelRed, nil
	}

	var transportMinutes *int
	if transport != nil {
		transportMinutes = transport.AirportToVenueMinutes
	}
	buffer, err := BufferMinutes(
		show.RequiredOnSiteTime,
		show.ShowDate,
		*primary.ArrivalDatetime,
		TransportMinutes(transportMinutes),
	)
	if err != nil {
		return "", fmt.Errorf("%w: show %d: %v", ErrInvalidShow, show.ID, err)
	}

	if buffer < redBufferFloor {
		return LevelRed, nil
	}
	if show.VenueStatus == model.VenueUnconfirmed && show.OverallStatus != model.OverallCompleted {
		return LevelRed, nil
	}

	required := domesticBuffer
	if IsInternational(primary.OriginAirport, primary.DestinationAirport) {
		required = internationalBuffer
	}
	if buffer < required {
		return LevelYellow, nil
	}

	// Redundancy: a single booked option with nothing flagged as a
	// backup leaves no fallback if it cancels.
	options := 0
	for i := range flights {
		if !flights[i].IsBackup {
			options++
		}
	}
	if options == 1 && !backupFlagged {
		return LevelYellow, nil
	}

	if IsWeatherProne(primary.OriginAirport, primary.DestinationAirport, show.ShowDate.Month()) {
		return LevelYellow, nil
	}
	if isOvernight(primary) {
		return LevelYellow, nil
	}
	return LevelGreen, nil
}

// isOvernight reports whether the flight departs late or lands before
// dawn.  Both timestamps must be present; an option with an unknown
// departure never counts as overnight, matching the reference
// behavior.
func isOvernight(f *model.Flight) bool {
	if f.DepartureDatetime == nil || f.ArrivalDatetime == nil {
		return false
	}
	return f.DepartureDatetime.Hour() >= overnightDepartureHr ||
		f.ArrivalDatetime.Hour() < overnightArrivalHr
}
