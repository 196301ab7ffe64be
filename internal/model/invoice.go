package model

import "time"

// Invoice status values.
const (
	InvoiceStatusOpen      = "em_aberto"
	InvoiceStatusPaid      = "pago"
	InvoiceStatusOverdue   = "vencido"
	InvoiceStatusCancelled = "cancelado"
)

// ValidInvoiceStatus reports whether s is a known invoice status.
func ValidInvoiceStatus(s string) bool {
	switch s {
	case InvoiceStatusOpen, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

type Invoice struct {
	ID          string     `json:"id"`
	LeaseID     *string    `json:"lease_id,omitempty"`
	Number      string     `json:"number"`
	Period      string     `json:"period,omitempty"`
	DueDate     time.Time  `json:"due_date"`
	TotalValue  float64    `json:"total_value"`
	Status      string     `json:"status"`
	PaymentDate *time.Time `json:"payment_date,omitempty"`
	CreatedBy   string     `json:"created_by,omitempty"`
	UpdatedBy   *string    `json:"updated_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Joined lease/property summary, populated on list reads only.
	LeaseCode    string `json:"lease_code,omitempty"`
	PropertyName string `json:"property_name,omitempty"`
}
