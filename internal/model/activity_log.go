package model

import "time"

// Action types recorded in the activity log.
const (
	ActionTourCreated      = "TOUR_CREATED"
	ActionTourUpdated      = "TOUR_UPDATED"
	ActionShowCreated      = "SHOW_CREATED"
	ActionShowUpdated      = "SHOW_UPDATED"
	ActionStatusUpdated    = "STATUS_UPDATED"
	ActionRiskChanged      = "RISK_CHANGED"
	ActionFlightChanged    = "FLIGHT_CHANGED"
	ActionTransportChanged = "TRANSPORT_CHANGED"
)

// ActivityLog is one entry in a tour's audit trail.  Entries arrive
// through the activity queue rather than being written inline by the
// request handlers, so the trail is eventually consistent with the
// mutation that produced it.
type ActivityLog struct {
	ID          uint64    `json:"id"`
	TourID      uint64    `json:"tour_id"`
	ShowID      *uint64   `json:"show_id,omitempty"`
	ActionType  string    `json:"action_type"`
	Description string    `json:"description"`
	CreatedBy   *string   `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
