package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/models"
)

type AssignmentRepository struct {
	DB *pgxpool.Pool
}

func NewAssignmentRepository(db *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{DB: db}
}

// CreateActive inserts a new active assignment for a.UnitID, superseding any
// current active assignment on that unit, and marks the unit occupied. The
// whole sequence runs in one transaction holding the unit row lock, so two
// concurrent requests for the same unit serialize; the partial unique index
// on assignments(unit_id) WHERE is_active backstops the invariant.
func (r *AssignmentRepository) CreateActive(ctx context.Context, a *models.Assignment) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Lock the unit row for the duration of the supersession
	var unitID int
	err = tx.QueryRow(ctx,
		`SELECT id FROM units WHERE id=$1 FOR UPDATE`, a.UnitID).Scan(&unitID)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("unit not found")
	}
	if err != nil {
		return fmt.Errorf("failed to lock unit: %w", err)
	}

	// Deactivate the current active assignment, if any. Supersession, not an
	// error: overlapping date ranges are not validated.
	if _, err := tx.Exec(ctx,
		`UPDATE assignments SET is_active=FALSE, updated_at=NOW()
         WHERE unit_id=$1 AND is_active`, a.UnitID); err != nil {
		return fmt.Errorf("failed to deactivate previous assignment: %w", err)
	}

	a.IsActive = true
	err = tx.QueryRow(ctx,
		`INSERT INTO assignments(unit_id, tenant_id, start_date, end_date, monthly_rent, security_deposit, payment_due_day, is_active)
         VALUES($1, $2, $3, $4, $5, $6, $7, TRUE)
         RETURNING id, created_at, updated_at`,
		a.UnitID, a.TenantID, a.StartDate, a.EndDate, a.MonthlyRent,
		a.SecurityDeposit, a.PaymentDueDay,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE units SET status=$1, updated_at=NOW() WHERE id=$2`,
		models.UnitOccupied, a.UnitID); err != nil {
		return fmt.Errorf("failed to update unit status: %w", err)
	}

	return tx.Commit(ctx)
}

// End deactivates the assignment and marks its unit vacant, atomically.
// Ending an assignment that was already superseded or ended is a no-op: the
// unit stays with whichever assignment currently holds it.
func (r *AssignmentRepository) End(ctx context.Context, id int) (*models.Assignment, error) {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var a models.Assignment
	err = tx.QueryRow(ctx,
		`UPDATE assignments SET is_active=FALSE, updated_at=NOW()
         WHERE id=$1 AND is_active
         RETURNING id, unit_id, tenant_id, start_date, end_date, monthly_rent, security_deposit, payment_due_day, is_active, created_at, updated_at`,
		id,
	).Scan(&a.ID, &a.UnitID, &a.TenantID, &a.StartDate, &a.EndDate, &a.MonthlyRent,
		&a.SecurityDeposit, &a.PaymentDueDay, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		// Either the row is missing or it is already inactive. An inactive
		// row is returned as-is without touching the unit.
		err = tx.QueryRow(ctx,
			`SELECT id, unit_id, tenant_id, start_date, end_date, monthly_rent, security_deposit, payment_due_day, is_active, created_at, updated_at
	         FROM assignments WHERE id=$1`, id,
		).Scan(&a.ID, &a.UnitID, &a.TenantID, &a.StartDate, &a.EndDate, &a.MonthlyRent,
			&a.SecurityDeposit, &a.PaymentDueDay, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("assignment not found")
		}
		if err != nil {
			return nil, err
		}
		return &a, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		`UPDATE units SET status=$1, updated_at=NOW() WHERE id=$2`,
		models.UnitVacant, a.UnitID); err != nil {
		return nil, fmt.Errorf("failed to update unit status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentRepository) Get(ctx context.Context, id int) (*models.Assignment, error) {
	var a models.Assignment
	err := r.DB.QueryRow(ctx,
		`SELECT id, unit_id, tenant_id, start_date, end_date, monthly_rent, security_deposit, payment_due_day, is_active, created_at, updated_at
         FROM assignments WHERE id=$1`, id,
	).Scan(&a.ID, &a.UnitID, &a.TenantID, &a.StartDate, &a.EndDate, &a.MonthlyRent,
		&a.SecurityDeposit, &a.PaymentDueDay, &a.IsActive, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("assignment not found")
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// TenantHasActiveOnUnit reports whether the tenant currently holds the active
// assignment for the unit
func (r *AssignmentRepository) TenantHasActiveOnUnit(ctx context.Context, tenantID, unitID int) (bool, error) {
	var count int
	err := r.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM assignments
         WHERE tenant_id=$1 AND unit_id=$2 AND is_active`, tenantID, unitID).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

const assignmentViewColumns = `a.id, a.unit_id, a.tenant_id, a.start_date, a.end_date,
	a.monthly_rent, a.security_deposit, a.payment_due_day, a.is_active,
	a.created_at, a.updated_at,
	COALESCE(t.first_name || ' ' || t.last_name, 'Unknown'),
	u.unit_number, p.name`

// ListByTenant is the tenant's assignment view, decorated with unit and
// property display fields
func (r *AssignmentRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.Assignment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+assignmentViewColumns+`
         FROM assignments a
         JOIN units u ON u.id = a.unit_id
         JOIN properties p ON p.id = u.property_id
         LEFT JOIN users t ON t.id = a.tenant_id
         WHERE a.tenant_id=$1
         ORDER BY a.created_at DESC`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignmentRows(rows)
}

// ListByLandlord is the landlord's assignment view, scoped by property
// ownership
func (r *AssignmentRepository) ListByLandlord(ctx context.Context, landlordID int) ([]*models.Assignment, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+assignmentViewColumns+`
         FROM assignments a
         JOIN units u ON u.id = a.unit_id
         JOIN properties p ON p.id = u.property_id
         LEFT JOIN users t ON t.id = a.tenant_id
         WHERE p.landlord_id=$1
         ORDER BY a.created_at DESC`, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignmentRows(rows)
}

func scanAssignmentRows(rows pgx.Rows) ([]*models.Assignment, error) {
	var assignments []*models.Assignment
	for rows.Next() {
		var a models.Assignment
		err := rows.Scan(&a.ID, &a.UnitID, &a.TenantID, &a.StartDate, &a.EndDate,
			&a.MonthlyRent, &a.SecurityDeposit, &a.PaymentDueDay, &a.IsActive,
			&a.CreatedAt, &a.UpdatedAt, &a.TenantName, &a.UnitNumber, &a.PropertyName)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, &a)
	}
	return assignments, rows.Err()
}
