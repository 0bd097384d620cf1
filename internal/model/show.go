package model

import "time"

// Overall statuses a show moves through while it is being advanced.
const (
	OverallNotStarted = "Not Started"
	OverallInProgress = "In Progress"
	OverallConfirmed  = "Confirmed"
	OverallCompleted  = "Completed"
)

// Venue confirmation statuses.  Unconfirmed is a hard warning state: a
// show with an unconfirmed venue is rated Red until it is resolved or
// the show is marked completed.
const (
	VenuePending     = "Pending"
	VenueConfirmed   = "Confirmed"
	VenueUnconfirmed = "Unconfirmed"
)

// Show is one date on a tour.  It bundles the venue, the day-of timing
// grid, the deal terms and the contact list for that date.  Travel
// records (flights, hotels, ground transport) hang off the show.
//
// RequiredOnSiteTime is the hard deadline the risk engine measures
// against; it is mandatory and stored as a "HH:MM" clock string in the
// show's local frame.  RiskLevel is the last persisted rating; the
// freshly computed value is returned to clients as
// calculated_risk_level alongside it.
type Show struct {
	ID                        uint64     `json:"id"`
	TourID                    uint64     `json:"tour_id"`
	ShowNumber                int        `json:"show_number"`
	City                      string     `json:"city"`
	StateCountry              *string    `json:"state_country,omitempty"`
	VenueName                 string     `json:"venue_name"`
	VenueAddress              *string    `json:"venue_address,omitempty"`
	ShowDate                  time.Time  `json:"show_date"`
	OnStageTime               *string    `json:"on_stage_time,omitempty"`
	SetLengthMinutes          *int       `json:"set_length_minutes,omitempty"`
	DoorsTime                 *string    `json:"doors_time,omitempty"`
	CurfewTime                *string    `json:"curfew_time,omitempty"`
	RequiredOnSiteTime        string     `json:"required_on_site_time"`
	SoundcheckTime            *string    `json:"soundcheck_time,omitempty"`
	SoundcheckDurationMinutes *int       `json:"soundcheck_duration_minutes,omitempty"`
	LoadInTime                *string    `json:"load_in_time,omitempty"`
	VenueContactName          *string    `json:"venue_contact_name,omitempty"`
	VenueContactEmail         *string    `json:"venue_contact_email,omitempty"`
	VenueContactPhone         *string    `json:"venue_contact_phone,omitempty"`
	DayOfContactName          *string    `json:"day_of_contact_name,omitempty"`
	DayOfContactPhone         *string    `json:"day_of_contact_phone,omitempty"`
	ProductionContactName     *string    `json:"production_contact_name,omitempty"`
	ProductionContactPhone    *string    `json:"production_contact_phone,omitempty"`
	ParkingInstructions       *string    `json:"parking_instructions,omitempty"`
	CredentialsProcess        *string    `json:"credentials_process,omitempty"`
	GreenRoomInfo             *string    `json:"green_room_info,omitempty"`
	CateringInfo              *string    `json:"catering_info,omitempty"`
	WifiInfo                  *string    `json:"wifi_info,omitempty"`
	VenueCapacity             *int       `json:"venue_capacity,omitempty"`
	AgeRestriction            *string    `json:"age_restriction,omitempty"`
	Guarantee                 *float64   `json:"guarantee,omitempty"`
	DoorSplit                 *string    `json:"door_split,omitempty"`
	MerchSplit                *string    `json:"merch_split,omitempty"`
	SettlementTime            *string    `json:"settlement_time,omitempty"`
	DepositReceived           bool       `json:"deposit_received"`
	DepositAmount             *float64   `json:"deposit_amount,omitempty"`
	OverallStatus             string     `json:"overall_status"`
	VenueStatus               string     `json:"venue_status"`
	RiskLevel                 string     `json:"risk_level"`
	RiskNotes                 *string    `json:"risk_notes,omitempty"`
	BackupPlan                *string    `json:"backup_plan,omitempty"`
	SpecialNotes              *string    `json:"special_notes,omitempty"`
	PostShowNotes             *string    `json:"post_show_notes,omitempty"`
	CreatedAt                 time.Time  `json:"created_at"`
	UpdatedAt                 time.Time  `json:"updated_at"`
}

// ShowStatusSummary is the slim projection used for tour dashboards:
// just enough to count shows per status and per risk level.
type ShowStatusSummary struct {
	ID            uint64 `json:"id"`
	OverallStatus string `json:"overall_status"`
	RiskLevel     string `json:"risk_level"`
}
