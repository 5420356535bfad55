package receipts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentezi-backend/internal/models"
)

func TestRender(t *testing.T) {
	paid := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	payment := &models.Payment{
		ID:             17,
		Amount:         15000,
		ForMonth:       "2026-03",
		Status:         models.PaymentPaid,
		PaymentDate:    &paid,
		MpesaReference: "SBK72Q91XX",
		TenantName:     "Wanjiru Kamau",
		UnitNumber:     "A1",
	}

	pdf, err := Render(payment)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}

func TestRender_NoPaymentDate(t *testing.T) {
	payment := &models.Payment{
		ID:         18,
		Amount:     7500,
		ForMonth:   "2026-04",
		Status:     models.PaymentPending,
		TenantName: "Wanjiru Kamau",
		UnitNumber: "A1",
	}

	pdf, err := Render(payment)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
