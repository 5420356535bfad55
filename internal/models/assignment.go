package models

import "time"

type Assignment struct {
	ID              int       `json:"id"`
	UnitID          int       `json:"unit_id"`
	TenantID        int       `json:"tenant_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	MonthlyRent     float64   `json:"monthly_rent"`
	SecurityDeposit float64   `json:"security_deposit"`
	PaymentDueDay   int       `json:"payment_due_day"` // Day of month, 1-31
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Joined display fields for list views
	TenantName   string `json:"tenant_name,omitempty"`
	UnitNumber   string `json:"unit_number,omitempty"`
	PropertyName string `json:"property_name,omitempty"`
}

// CreateAssignmentRequest represents the request body for assigning a tenant to a unit
type CreateAssignmentRequest struct {
	TenantID        int     `json:"tenant_id"`
	StartDate       string  `json:"start_date"` // YYYY-MM-DD
	EndDate         string  `json:"end_date"`   // YYYY-MM-DD
	MonthlyRent     float64 `json:"monthly_rent"`
	SecurityDeposit float64 `json:"security_deposit"`
	PaymentDueDay   int     `json:"payment_due_day"`
}
