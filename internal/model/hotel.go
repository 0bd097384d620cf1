package model

import "time"

// Hotel is a lodging record for a show.  Distance fields are drive
// times in minutes and feed the hotel convenience score; the
// early-checkin and late-checkout flags do as well.
type Hotel struct {
	ID                       uint64     `json:"id"`
	ShowID                   uint64     `json:"show_id"`
	HotelName                string     `json:"hotel_name"`
	HotelAddress             *string    `json:"hotel_address,omitempty"`
	HotelPhone               *string    `json:"hotel_phone,omitempty"`
	ConfirmationNumber       *string    `json:"confirmation_number,omitempty"`
	CheckInDate              *time.Time `json:"check_in_date,omitempty"`
	CheckInTime              *string    `json:"check_in_time,omitempty"`
	CheckOutDate             *time.Time `json:"check_out_date,omitempty"`
	CheckOutTime             *string    `json:"check_out_time,omitempty"`
	RoomType                 *string    `json:"room_type,omitempty"`
	DistanceToVenueMinutes   *int       `json:"distance_to_venue_minutes,omitempty"`
	DistanceToAirportMinutes *int       `json:"distance_to_airport_minutes,omitempty"`
	PricePerNight            *float64   `json:"price_per_night,omitempty"`
	EarlyCheckinAvailable    bool       `json:"early_checkin_available"`
	LateCheckoutAvailable    bool       `json:"late_checkout_available"`
	Notes                    *string    `json:"notes,omitempty"`
	Status                   string     `json:"status"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}
