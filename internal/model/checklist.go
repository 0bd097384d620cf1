package model

import "time"

// ChecklistItem is one line inside a checklist.  Items live as a JSON
// array on both templates and instances; the ID is stable within a
// checklist so individual items can be toggled.
type ChecklistItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// ChecklistTemplate is a reusable list of advance tasks grouped by
// category (e.g. "Advance", "Day Of", "Settlement").
type ChecklistTemplate struct {
	ID        uint64          `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Items     []ChecklistItem `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// ChecklistInstance is a template stamped onto a show.  Items start
// uncompleted regardless of the template state; CompletedCount and
// TotalCount are denormalized so list views avoid unpacking the JSON.
type ChecklistInstance struct {
	ID             uint64             `json:"id"`
	ShowID         uint64             `json:"show_id"`
	TemplateID     uint64             `json:"template_id"`
	Items          []ChecklistItem    `json:"items"`
	CompletedCount int                `json:"completed_count"`
	TotalCount     int                `json:"total_count"`
	Template       *ChecklistTemplate `json:"template,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}
