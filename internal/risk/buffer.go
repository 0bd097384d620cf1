package risk

import (
	"time"

	"github.com/tourops/tour-logistics/internal/utils"
)

// DefaultTransportMinutes is substituted when a show has no ground
// transport record, or the record carries no positive drive time.
const DefaultTransportMinutes = 45

// BufferMinutes returns the signed number of minutes between the
// estimated venue arrival (flight arrival plus transport drive time)
// and the on-site deadline.  The deadline is the onSiteTime clock
// string anchored onto referenceDate's calendar day with seconds
// zeroed.  Negative means the flight lands too late.
//
// All timestamps are treated as already being in the show's local
// frame; no timezone conversion happens here.  The minute difference
// truncates toward zero, matching the reference calculator.
func BufferMinutes(onSiteTime string, referenceDate, arrival time.Time, transportMinutes int) (int, error) {
	deadline, err := utils.CombineDateClock(referenceDate, onSiteTime)
	if err != nil {
		return 0, err
	}
	arrivalWithTravel := arrival.Add(time.Duration(transportMinutes) * time.Minute)
	return int(deadline.Sub(arrivalWithTravel).Minutes()), nil
}

// TransportMinutes extracts the drive time to use for a transport
// record, falling back to the default when the record is absent or its
// drive time is missing or non-positive.  The zero fallback mirrors
// the booking flow, which stores 0 for "unknown".
func TransportMinutes(minutes *int) int {
	if minutes == nil || *minutes <= 0 {
		return DefaultTransportMinutes
	}
	return *minutes
}
