package models

import "time"

// Payment status values
const (
	PaymentPending       = "pending"
	PaymentPaid          = "paid"
	PaymentOverdue       = "overdue"
	PaymentPartiallyPaid = "partially_paid"
)

type Payment struct {
	ID             int        `json:"id"`
	AssignmentID   int        `json:"assignment_id"`
	TenantID       int        `json:"tenant_id"`
	Amount         float64    `json:"amount"`
	ForMonth       string     `json:"for_month"` // Format: "YYYY-MM"
	ForYear        int        `json:"for_year"`
	Status         string     `json:"status"`
	PaymentDate    *time.Time `json:"payment_date"`
	MpesaReference string     `json:"mpesa_reference"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Joined display fields for list views
	TenantName string `json:"tenant_name,omitempty"`
	UnitNumber string `json:"unit_number,omitempty"`
}

// ValidPaymentStatus reports whether status is a known payment status
func ValidPaymentStatus(status string) bool {
	switch status {
	case PaymentPending, PaymentPaid, PaymentOverdue, PaymentPartiallyPaid:
		return true
	}
	return false
}

// CreatePaymentRequest represents the request body for recording a payment
type CreatePaymentRequest struct {
	AssignmentID   int     `json:"assignment_id"`
	Amount         float64 `json:"amount"`
	ForMonth       string  `json:"for_month"`
	ForYear        int     `json:"for_year"`
	MpesaReference string  `json:"mpesa_reference"`
	Notes          string  `json:"notes"`
}

// UpdatePaymentStatusRequest represents the request body for a status update
type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}
