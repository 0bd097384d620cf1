package risk

import (
	"strings"
	"time"
)

// IsInternational reports whether the route between two airport codes
// is treated as international: exactly one endpoint is in the US
// domestic allow-list.  Codes are compared upper-case.  Two airports
// that are both absent from the list classify as domestic; that is a
// knowing simplification of the allow-list approach and callers rely
// on it staying that way.
func IsInternational(origin, destination string) bool {
	_, originUS := domesticAirports[strings.ToUpper(origin)]
	_, destUS := domesticAirports[strings.ToUpper(destination)]
	return originUS != destUS
}

// IsWeatherProne reports whether a route touches a snow-exposed hub
// during winter (Dec, Jan, Feb, Mar) or a hurricane-exposed hub during
// hurricane season (Aug, Sep, Oct).  Airport codes are matched as
// stored; flights persist codes upper-case.
func IsWeatherProne(origin, destination string, month time.Month) bool {
	switch month {
	case time.December, time.January, time.February, time.March:
		if inSet(northernAirports, origin) || inSet(northernAirports, destination) {
			return true
		}
	}
	switch month {
	case time.August, time.September, time.October:
		if inSet(hurricaneAirports, origin) || inSet(hurricaneAirports, destination) {
			return true
		}
	}
	return false
}

func inSet(set map[string]struct{}, code string) bool {
	_, ok := set[code]
	return ok
}
