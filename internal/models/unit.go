package models

import "time"

// Unit status values
const (
	UnitVacant      = "vacant"
	UnitOccupied    = "occupied"
	UnitMaintenance = "maintenance"
)

type Unit struct {
	ID          int       `json:"id"`
	UnitNumber  string    `json:"unit_number"`
	Floor       string    `json:"floor"`
	Bedrooms    int       `json:"bedrooms"`
	Bathrooms   float64   `json:"bathrooms"`
	SquareFeet  int       `json:"square_feet"`
	MonthlyRent float64   `json:"monthly_rent"`
	Status      string    `json:"status"`
	PropertyID  int       `json:"property_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	CurrentTenant string `json:"current_tenant,omitempty"` // Joined from the active assignment
}

// ValidUnitStatus reports whether status is a known unit status
func ValidUnitStatus(status string) bool {
	return status == UnitVacant || status == UnitOccupied || status == UnitMaintenance
}

// CreateUnitRequest represents the request body for creating a unit
type CreateUnitRequest struct {
	UnitNumber  string  `json:"unit_number"`
	Floor       string  `json:"floor"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   float64 `json:"bathrooms"`
	SquareFeet  int     `json:"square_feet"`
	MonthlyRent float64 `json:"monthly_rent"`
}
