package receipts

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"rentezi-backend/internal/models"
	"rentezi-backend/internal/timeutil"
)

// Render produces a PDF rent receipt for a payment. The payment must be
// a decorated view carrying tenant name and unit number.
func Render(payment *models.Payment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "RentEzi - Rent Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Receipt details box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, fmt.Sprintf("Receipt #%d", payment.ID), "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Tenant: %s", payment.TenantName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Unit: %s", payment.UnitNumber), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("For Month: %s", payment.ForMonth), "LB", 0, "L", false, 0, "")
	paidOn := "-"
	if payment.PaymentDate != nil {
		paidOn = timeutil.ToEAT(*payment.PaymentDate).Format("02-Jan-2006")
	}
	pdf.CellFormat(95, 7, fmt.Sprintf("Paid On: %s", paidOn), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Amount
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Payment Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 8, fmt.Sprintf("Amount: KES %.2f", payment.Amount), "1", 0, "C", false, 0, "")
	pdf.CellFormat(95, 8, fmt.Sprintf("Status: %s", strings.ToUpper(payment.Status)), "1", 1, "C", false, 0, "")

	if payment.MpesaReference != "" {
		pdf.CellFormat(190, 8, fmt.Sprintf("M-Pesa Reference: %s", payment.MpesaReference), "1", 1, "C", false, 0, "")
	}

	if payment.Notes != "" {
		pdf.Ln(3)
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(190, 6, fmt.Sprintf("Notes: %s", payment.Notes), "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(190, 6, "This is a system generated receipt and does not require a signature.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
