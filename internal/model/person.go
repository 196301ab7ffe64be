package model

import "time"

// Person types.
const (
	PersonTypeTenant = "inquilino"
	PersonTypeOwner  = "proprietario"
	PersonTypeOther  = "outro"
)

// ValidPersonType reports whether s is a known person type.
func ValidPersonType(s string) bool {
	switch s {
	case PersonTypeTenant, PersonTypeOwner, PersonTypeOther:
		return true
	}
	return false
}

type Person struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Type      string    `json:"type"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
