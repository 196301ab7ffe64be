package model

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ListQuery carries the common pagination parameters; Search is only
// honored by resources that support it.
type ListQuery struct {
	Search string
	Limit  int
	Offset int
}

type CreatePropertyRequest struct {
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Purpose       string  `json:"purpose"`
	Availability  string  `json:"availability"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	ZipCode       string  `json:"zip_code"`
	Neighborhood  string  `json:"neighborhood"`
	Street        string  `json:"street"`
	Number        string  `json:"number"`
	Complement    string  `json:"complement"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	ParkingSpaces int     `json:"parking_spaces"`
	BuiltArea     float64 `json:"built_area"`
	RentValue     float64 `json:"rent_value"`
	SaleValue     float64 `json:"sale_value"`
	Notes         string  `json:"notes"`
}

type CreateLeaseRequest struct {
	PropertyID     string  `json:"property_id"`
	StartDate      string  `json:"start_date"`
	DurationMonths int     `json:"duration_months"`
	RentValue      float64 `json:"rent_value"`
	DueDay         int     `json:"due_day"`
}

type CreateInvoiceRequest struct {
	LeaseID    *string `json:"lease_id"`
	Number     string  `json:"number"`
	Period     string  `json:"period"`
	DueDate    string  `json:"due_date"`
	TotalValue float64 `json:"total_value"`
}

type SettleInvoiceRequest struct {
	Status      string `json:"status"`
	PaymentDate string `json:"payment_date"`
}

type CreatePersonRequest struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Type    string `json:"type"`
	Notes   string `json:"notes"`
}
