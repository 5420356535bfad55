package models

import "time"

type Property struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	County      string    `json:"county"`
	Description string    `json:"description"`
	LandlordID  int       `json:"landlord_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Aggregates computed at query time, never persisted
	UnitsCount    int `json:"units_count"`
	OccupiedUnits int `json:"occupied_units"`
}

// CreatePropertyRequest represents the request body for creating a property
type CreatePropertyRequest struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	County      string `json:"county"`
	Description string `json:"description"`
}

// UpdatePropertyRequest represents the request body for updating a property.
// Nil fields are left unchanged.
type UpdatePropertyRequest struct {
	Name        *string `json:"name,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	County      *string `json:"county,omitempty"`
	Description *string `json:"description,omitempty"`
}
