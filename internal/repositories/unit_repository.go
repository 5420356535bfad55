package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/models"
)

type UnitRepository struct {
	DB *pgxpool.Pool
}

func NewUnitRepository(db *pgxpool.Pool) *UnitRepository {
	return &UnitRepository{DB: db}
}

func (r *UnitRepository) Create(ctx context.Context, u *models.Unit) error {
	if u.Status == "" {
		u.Status = models.UnitVacant
	}
	return r.DB.QueryRow(ctx,
		`INSERT INTO units(unit_number, floor, bedrooms, bathrooms, square_feet, monthly_rent, status, property_id)
         VALUES($1, $2, $3, $4, $5, $6, $7, $8)
         RETURNING id, created_at, updated_at`,
		u.UnitNumber, u.Floor, u.Bedrooms, u.Bathrooms, u.SquareFeet,
		u.MonthlyRent, u.Status, u.PropertyID,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UnitRepository) Get(ctx context.Context, id int) (*models.Unit, error) {
	var u models.Unit
	err := r.DB.QueryRow(ctx,
		`SELECT id, unit_number, floor, bedrooms, bathrooms, square_feet, monthly_rent, status, property_id, created_at, updated_at
         FROM units WHERE id=$1`, id,
	).Scan(&u.ID, &u.UnitNumber, &u.Floor, &u.Bedrooms, &u.Bathrooms, &u.SquareFeet,
		&u.MonthlyRent, &u.Status, &u.PropertyID, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("unit not found")
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// OwnerLandlordID returns the landlord id of the property the unit belongs to
func (r *UnitRepository) OwnerLandlordID(ctx context.Context, unitID int) (int, error) {
	var landlordID int
	err := r.DB.QueryRow(ctx,
		`SELECT p.landlord_id FROM units u
         JOIN properties p ON p.id = u.property_id
         WHERE u.id=$1`, unitID,
	).Scan(&landlordID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, apperr.NotFound("unit not found")
	}
	if err != nil {
		return 0, err
	}
	return landlordID, nil
}

// ListByProperty is the unit list view for a property, each row decorated with
// the current tenant's name from the active assignment, if any.
func (r *UnitRepository) ListByProperty(ctx context.Context, propertyID int) ([]*models.Unit, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT u.id, u.unit_number, u.floor, u.bedrooms, u.bathrooms, u.square_feet,
		        u.monthly_rent, u.status, u.property_id, u.created_at, u.updated_at,
		        COALESCE(t.first_name || ' ' || t.last_name, '')
         FROM units u
         LEFT JOIN assignments a ON a.unit_id = u.id AND a.is_active
         LEFT JOIN users t ON t.id = a.tenant_id
         WHERE u.property_id=$1
         ORDER BY u.unit_number`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUnitRows(rows)
}

// ListVacant returns vacant units, optionally scoped to one property
// (propertyID 0 means all properties)
func (r *UnitRepository) ListVacant(ctx context.Context, propertyID int) ([]*models.Unit, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT u.id, u.unit_number, u.floor, u.bedrooms, u.bathrooms, u.square_feet,
		        u.monthly_rent, u.status, u.property_id, u.created_at, u.updated_at, ''
         FROM units u
         WHERE u.status = 'vacant' AND ($1 = 0 OR u.property_id = $1)
         ORDER BY u.property_id, u.unit_number`, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanUnitRows(rows)
}

func scanUnitRows(rows pgx.Rows) ([]*models.Unit, error) {
	var units []*models.Unit
	for rows.Next() {
		var u models.Unit
		err := rows.Scan(&u.ID, &u.UnitNumber, &u.Floor, &u.Bedrooms, &u.Bathrooms,
			&u.SquareFeet, &u.MonthlyRent, &u.Status, &u.PropertyID,
			&u.CreatedAt, &u.UpdatedAt, &u.CurrentTenant)
		if err != nil {
			return nil, err
		}
		units = append(units, &u)
	}
	return units, rows.Err()
}
