package model

import "time"

// Property availability states. Values are kept in the domain language
// used by the backing data set.
const (
	AvailabilityAvailable   = "disponivel"
	AvailabilityLeased      = "locado"
	AvailabilityUnavailable = "indisponivel"
)

// ValidAvailability reports whether s is a known availability state.
func ValidAvailability(s string) bool {
	switch s {
	case AvailabilityAvailable, AvailabilityLeased, AvailabilityUnavailable:
		return true
	}
	return false
}

type Property struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Purpose       string    `json:"purpose,omitempty"`
	Availability  string    `json:"availability"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	ZipCode       string    `json:"zip_code,omitempty"`
	Neighborhood  string    `json:"neighborhood,omitempty"`
	Street        string    `json:"street,omitempty"`
	Number        string    `json:"number,omitempty"`
	Complement    string    `json:"complement,omitempty"`
	Bedrooms      int       `json:"bedrooms"`
	Bathrooms     int       `json:"bathrooms"`
	ParkingSpaces int       `json:"parking_spaces"`
	BuiltArea     float64   `json:"built_area,omitempty"`
	RentValue     float64   `json:"rent_value,omitempty"`
	SaleValue     float64   `json:"sale_value,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PropertyOption is the compact shape used to populate selection lists
// of available properties (e.g. when creating a lease).
type PropertyOption struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Street string `json:"street,omitempty"`
	Number string `json:"number,omitempty"`
	City   string `json:"city,omitempty"`
}
