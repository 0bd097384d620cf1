package model

import "time"

// GroundTransport is the airport-to-venue leg for a show.  The first
// transport on a show is treated as "the" transport when computing
// risk; AirportToVenueMinutes is the drive time added on top of the
// flight arrival.  When it is missing (or zero, which the booking UI
// uses as "unknown") the risk engine substitutes a 45 minute default.
type GroundTransport struct {
	ID                    uint64     `json:"id"`
	ShowID                uint64     `json:"show_id"`
	TransportType         *string    `json:"transport_type,omitempty"`
	DriverName            *string    `json:"driver_name,omitempty"`
	DriverPhone           *string    `json:"driver_phone,omitempty"`
	DriverCompany         *string    `json:"driver_company,omitempty"`
	ConfirmationNumber    *string    `json:"confirmation_number,omitempty"`
	PickupLocation        *string    `json:"pickup_location,omitempty"`
	PickupDatetime        *time.Time `json:"pickup_datetime,omitempty"`
	VehicleType           *string    `json:"vehicle_type,omitempty"`
	AirportToVenueMinutes *int       `json:"airport_to_venue_minutes,omitempty"`
	Price                 *float64   `json:"price,omitempty"`
	Notes                 *string    `json:"notes,omitempty"`
	Status                string     `json:"status"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}
