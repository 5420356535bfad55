package models

import "time"

// Maintenance request status values
const (
	MaintenancePending    = "pending"
	MaintenanceInProgress = "in_progress"
	MaintenanceCompleted  = "completed"
	MaintenanceDeclined   = "declined"
)

// Maintenance priorities
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type MaintenanceRequest struct {
	ID          int        `json:"id"`
	UnitID      int        `json:"unit_id"`
	TenantID    int        `json:"tenant_id"`
	IssueType   string     `json:"issue_type"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	ResolvedAt  *time.Time `json:"resolved_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Joined display fields for list views
	TenantName   string `json:"tenant_name,omitempty"`
	UnitNumber   string `json:"unit_number,omitempty"`
	PropertyName string `json:"property_name,omitempty"`
}

// ValidMaintenanceStatus reports whether status is a known maintenance status
func ValidMaintenanceStatus(status string) bool {
	switch status {
	case MaintenancePending, MaintenanceInProgress, MaintenanceCompleted, MaintenanceDeclined:
		return true
	}
	return false
}

// ValidPriority reports whether p is a known maintenance priority
func ValidPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// CreateMaintenanceRequest represents the request body for filing a maintenance request
type CreateMaintenanceRequest struct {
	UnitID      int    `json:"unit_id"`
	IssueType   string `json:"issue_type"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// UpdateMaintenanceStatusRequest represents the request body for a status update
type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status"`
}
