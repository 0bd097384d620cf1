package model

import "time"

// Tour is the top-level record for a run of shows by one artist.  It
// carries the key people around the tour (manager, production, agent,
// management) so that exports and the contact sheet can be assembled
// without joining a separate contacts table.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – tour name, e.g. "Fall 2026 North America".
//  ArtistName – the touring artist or act.
//  StartDate  – first day of the tour (calendar date).
//  EndDate    – last day of the tour (calendar date).
//  Notes      – free-form notes, optional.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Tour struct {
	ID                     uint64     `json:"id"`
	Name                   string     `json:"name"`
	ArtistName             string     `json:"artist_name"`
	StartDate              time.Time  `json:"start_date"`
	EndDate                time.Time  `json:"end_date"`
	TourManagerName        *string    `json:"tour_manager_name,omitempty"`
	TourManagerPhone       *string    `json:"tour_manager_phone,omitempty"`
	TourManagerEmail       *string    `json:"tour_manager_email,omitempty"`
	ProductionContactName  *string    `json:"production_contact_name,omitempty"`
	ProductionContactPhone *string    `json:"production_contact_phone,omitempty"`
	AgentName              *string    `json:"agent_name,omitempty"`
	AgentPhone             *string    `json:"agent_phone,omitempty"`
	ManagementName         *string    `json:"management_name,omitempty"`
	ManagementPhone        *string    `json:"management_phone,omitempty"`
	Notes                  *string    `json:"notes,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
}

// TeamMember is a crew or touring-party member attached to a tour.
// Emergency contact fields are kept alongside the member so the
// contact-sheet export needs no extra lookups.
type TeamMember struct {
	ID                    uint64    `json:"id"`
	TourID                uint64    `json:"tour_id"`
	Name                  string    `json:"name"`
	Role                  *string   `json:"role,omitempty"`
	Email                 *string   `json:"email,omitempty"`
	Phone                 *string   `json:"phone,omitempty"`
	EmergencyContactName  *string   `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string   `json:"emergency_contact_phone,omitempty"`
	Notes                 *string   `json:"notes,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
}
