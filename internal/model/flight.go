package model

import "time"

// Booking statuses shared by flights, hotels and ground transport.
const (
	BookingNotBooked = "Not Booked"
	BookingBooked    = "Booked"
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
)

// Flight is one flight option researched for a show.  A show keeps up
// to three options (OptionNumber 1..3).  At most one option should be
// flagged primary; the flight handlers clear the flag on siblings when
// a new primary is set.  IsBackup marks an option held as a fallback.
//
// Airport codes are stored upper-case, 3 or 4 letters.  Departure and
// arrival datetimes are optional while an option is still being
// researched; the risk engine treats a primary flight without an
// arrival time as an immediate Red.
type Flight struct {
	ID                 uint64     `json:"id"`
	ShowID             uint64     `json:"show_id"`
	OriginAirport      string     `json:"origin_airport"`
	DestinationAirport string     `json:"destination_airport"`
	OptionNumber       int        `json:"option_number"`
	Airline            *string    `json:"airline,omitempty"`
	FlightNumber       *string    `json:"flight_number,omitempty"`
	DepartureDatetime  *time.Time `json:"departure_datetime,omitempty"`
	ArrivalDatetime    *time.Time `json:"arrival_datetime,omitempty"`
	IsPrimary          bool       `json:"is_primary"`
	IsBackup           bool       `json:"is_backup"`
	ConfirmationNumber *string    `json:"confirmation_number,omitempty"`
	AirlinePhone       *string    `json:"airline_phone,omitempty"`
	Price              *float64   `json:"price,omitempty"`
	Status             string     `json:"status"`
	Notes              *string    `json:"notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
