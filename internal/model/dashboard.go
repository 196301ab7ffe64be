package model

type PropertyStats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Leased    int `json:"leased"`
}

type LeaseStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

type InvoiceStats struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
}

// DashboardStats is assembled from independent count queries; each block
// reflects the table state at its own query time, there is no snapshot
// across the three.
type DashboardStats struct {
	Properties PropertyStats `json:"properties"`
	Leases     LeaseStats    `json:"leases"`
	Invoices   InvoiceStats  `json:"invoices"`
}
