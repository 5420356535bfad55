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

type MaintenanceRepository struct {
	DB *pgxpool.Pool
}

func NewMaintenanceRepository(db *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{DB: db}
}

func (r *MaintenanceRepository) Create(ctx context.Context, m *models.MaintenanceRequest) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO maintenance_requests(unit_id, tenant_id, issue_type, description, priority, status)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		m.UnitID, m.TenantID, m.IssueType, m.Description, m.Priority, m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *MaintenanceRepository) Get(ctx context.Context, id int) (*models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	err := r.DB.QueryRow(ctx,
		`SELECT id, unit_id, tenant_id, issue_type, description, priority, status, resolved_at, created_at, updated_at
         FROM maintenance_requests WHERE id=$1`, id,
	).Scan(&m.ID, &m.UnitID, &m.TenantID, &m.IssueType, &m.Description, &m.Priority,
		&m.Status, &m.ResolvedAt, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("maintenance request not found")
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateStatus overwrites the request status. resolvedAt is written as given,
// including overwriting an existing stamp when non-nil.
func (r *MaintenanceRepository) UpdateStatus(ctx context.Context, id int, status string, resolvedAt *time.Time) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE maintenance_requests SET status=$1,
		        resolved_at = CASE WHEN $2::timestamptz IS NULL THEN resolved_at ELSE $2 END,
		        updated_at=NOW()
         WHERE id=$3`, status, resolvedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("maintenance request not found")
	}
	return nil
}

const maintenanceViewColumns = `m.id, m.unit_id, m.tenant_id, m.issue_type, m.description,
	m.priority, m.status, m.resolved_at, m.created_at, m.updated_at,
	COALESCE(t.first_name || ' ' || t.last_name, 'Unknown'), u.unit_number, p.name`

// ListByTenant is the tenant's maintenance view decorated with display fields
func (r *MaintenanceRepository) ListByTenant(ctx context.Context, tenantID int) ([]*models.MaintenanceRequest, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+maintenanceViewColumns+`
         FROM maintenance_requests m
         JOIN units u ON u.id = m.unit_id
         JOIN properties p ON p.id = u.property_id
         LEFT JOIN users t ON t.id = m.tenant_id
         WHERE m.tenant_id=$1
         ORDER BY m.created_at DESC`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMaintenanceRows(rows)
}

// ListByLandlord is the landlord's work-order view, scoped by property
// ownership
func (r *MaintenanceRepository) ListByLandlord(ctx context.Context, landlordID int) ([]*models.MaintenanceRequest, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+maintenanceViewColumns+`
         FROM maintenance_requests m
         JOIN units u ON u.id = m.unit_id
         JOIN properties p ON p.id = u.property_id
         LEFT JOIN users t ON t.id = m.tenant_id
         WHERE p.landlord_id=$1
         ORDER BY m.created_at DESC`, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMaintenanceRows(rows)
}

func scanMaintenanceRows(rows pgx.Rows) ([]*models.MaintenanceRequest, error) {
	var requests []*models.MaintenanceRequest
	for rows.Next() {
		var m models.MaintenanceRequest
		err := rows.Scan(&m.ID, &m.UnitID, &m.TenantID, &m.IssueType, &m.Description,
			&m.Priority, &m.Status, &m.ResolvedAt, &m.CreatedAt, &m.UpdatedAt,
			&m.TenantName, &m.UnitNumber, &m.PropertyName)
		if err != nil {
			return nil, err
		}
		requests = append(requests, &m)
	}
	return requests, rows.Err()
}
