package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/models"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO payments(assignment_id, tenant_id, amount, for_month, for_year, status, payment_date, mpesa_reference, notes)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
         RETURNING id, created_at, updated_at`,
		p.AssignmentID, p.TenantID, p.Amount, p.ForMonth, p.ForYear,
		p.Status, p.PaymentDate, p.MpesaReference, p.Notes,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PaymentRepository) Get(ctx context.Context, id int) (*models.Payment, error) {
	var p models.Payment
	err := r.DB.QueryRow(ctx,
		`SELECT id, assignment_id, tenant_id, amount, for_month, for_year, status, payment_date, mpesa_reference, notes, created_at, updated_at
         FROM payments WHERE id=$1`, id,
	).Scan(&p.ID, &p.AssignmentID, &p.TenantID, &p.Amount, &p.ForMonth, &p.ForYear,
		&p.Status, &p.PaymentDate, &p.MpesaReference, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("payment not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetView is the single-payment view with display fields, used for receipts
func (r *PaymentRepository) GetView(ctx context.Context, id int) (*models.Payment, error) {
	var p models.Payment
	err := r.DB.QueryRow(ctx,
		`SELECT p.id, p.assignment_id, p.tenant_id, p.amount, p.for_month, p.for_year,
		        p.status, p.payment_date, p.mpesa_reference, p.notes, p.created_at, p.updated_at,
		        COALESCE(t.first_name || ' ' || t.last_name, 'Unknown'), u.unit_number
         FROM payments p
         JOIN assignments a ON a.id = p.assignment_id
         JOIN units u ON u.id = a.unit_id
         LEFT JOIN users t ON t.id = p.tenant_id
         WHERE p.id=$1`, id,
	).Scan(&p.ID, &p.AssignmentID, &p.TenantID, &p.Amount, &p.ForMonth, &p.ForYear,
		&p.Status, &p.PaymentDate, &p.MpesaReference, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		&p.TenantName, &p.UnitNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("payment not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateStatus overwrites the payment status. The payment date is
// first-stamp-wins: an existing date is never overwritten, so two racing
// paid confirmations cannot move it.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int, status string, paymentDate *time.Time) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE payments SET status=$1,
		        payment_date = COALESCE(payment_date, $2),
		        updated_at=NOW()
         WHERE id=$3`, status, paymentDate, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("payment not found")
	}
	return nil
}

const paymentViewColumns = `p.id, p.assignment_id, p.tenant_id, p.amount, p.for_month, p.for_year,
	p.status, p.payment_date, p.mpesa_reference, p.notes, p.created_at, p.updated_at,
	COALESCE(t.first_name || ' ' || t.last_name, 'Unknown'), u.unit_number`

// ListByTenant is the tenant's payment view decorated with display fields
func (r *PaymentRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+paymentViewColumns+`
         FROM payments p
         JOIN assignments a ON a.id = p.assignment_id
         JOIN units u ON u.id = a.unit_id
         LEFT JOIN users t ON t.id = p.tenant_id
         WHERE p.tenant_id=$1
         ORDER BY p.created_at DESC`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPaymentRows(rows)
}

// ListByLandlord is the landlord's rent roll, scoped by property ownership
func (r *PaymentRepository) ListByLandlord(ctx context.Context, landlordID int) ([]*models.Payment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+paymentViewColumns+`
         FROM payments p
         JOIN assignments a ON a.id = p.assignment_id
         JOIN units u ON u.id = a.unit_id
         JOIN properties pr ON pr.id = u.property_id
         LEFT JOIN users t ON t.id = p.tenant_id
         WHERE pr.landlord_id=$1
         ORDER BY p.created_at DESC`, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPaymentRows(rows)
}

func scanPaymentRows(rows pgx.Rows) ([]*models.Payment, error) {
	var payments []*models.Payment
	for rows.Next() {
		var p models.Payment
		err := rows.Scan(&p.ID, &p.AssignmentID, &p.TenantID, &p.Amount, &p.ForMonth,
			&p.ForYear, &p.Status, &p.PaymentDate, &p.MpesaReference, &p.Notes,
			&p.CreatedAt, &p.UpdatedAt, &p.TenantName, &p.UnitNumber)
		if err != nil {
			return nil, err
		}
		payments = append(payments, &p)
	}
	return payments, rows.Err()
}
