package model

import "time"

// Lease status values. Transitions out of "ativo" are manual-only; there
// is no scheduled expiry job.
const (
	LeaseStatusActive     = "ativo"
	LeaseStatusExpired    = "vencido"
	LeaseStatusTerminated = "rescindido"
)

type Lease struct {
	ID             string    `json:"id"`
	Code           string    `json:"code"`
	PropertyID     string    `json:"property_id"`
	StartDate      time.Time `json:"start_date"`
	DurationMonths int       `json:"duration_months"`
	RentValue      float64   `json:"rent_value"`
	DueDay         int       `json:"due_day"`
	Status         string    `json:"status"`
	CreatedBy      string    `json:"created_by,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Joined property summary, populated on list reads only.
	PropertyCode string `json:"property_code,omitempty"`
	PropertyName string `json:"property_name,omitempty"`
}
