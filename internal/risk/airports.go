package risk

// Static airport reference tables.  These are deliberately simple
// allow-lists, not a geographic database: routing is approximated by
// membership checks against fixed sets of US airport codes.  The
// tables are constants for the life of the process and are never
// loaded from configuration.

// domesticAirports lists the major US airports used to approximate
// international-vs-domestic routing.  A route is classified
// international when exactly one endpoint is in this set; two
// unlisted airports classify as domestic.  That asymmetry is part of
// the contract and must not be "fixed" here.
var domesticAirports = map[string]struct{}{
	"JFK": {}, "LAX": {}, "ORD": {}, "DFW": {}, "DEN": {}, "SFO": {},
	"SEA": {}, "ATL": {}, "MIA": {}, "BOS": {}, "LAS": {}, "PHX": {},
	"IAH": {}, "MSP": {}, "DTW": {}, "PHL": {}, "LGA": {}, "EWR": {},
	"SAN": {}, "TPA": {}, "PDX": {}, "STL": {}, "BNA": {}, "AUS": {},
	"RDU": {}, "CLE": {}, "SMF": {}, "SJC": {}, "OAK": {}, "MCI": {},
	"IND": {}, "CMH": {}, "SNA": {}, "SAT": {}, "PIT": {}, "CVG": {},
	"MKE": {}, "JAX": {}, "OMA": {}, "ABQ": {}, "BDL": {}, "BUF": {},
	"OKC": {}, "ONT": {}, "RIC": {}, "TUL": {}, "SDF": {},
}

// northernAirports are snow-exposed hubs that make a route
// weather-prone during the winter months (Dec-Mar).
var northernAirports = map[string]struct{}{
	"ORD": {}, "DEN": {}, "MSP": {}, "DTW": {}, "CLE": {},
	"BOS": {}, "BUF": {}, "MKE": {}, "PIT": {},
}

// hurricaneAirports are hurricane-exposed hubs that make a route
// weather-prone during late summer and fall (Aug-Oct).
var hurricaneAirports = map[string]struct{}{
	"MIA": {}, "TPA": {}, "JAX": {}, "IAH": {}, "MSY": {}, "ATL": {},
}
