package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/models"
)

type PropertyRepository struct {
	DB *pgxpool.Pool
}

func NewPropertyRepository(db *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

func (r *PropertyRepository) Create(ctx context.Context, p *models.Property) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO properties(name, address, city, county, description, landlord_id)
         VALUES($1, $2, $3, $4, $5, $6)
         RETURNING id, created_at, updated_at`,
		p.Name, p.Address, p.City, p.County, p.Description, p.LandlordID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PropertyRepository) Get(ctx context.Context, id int) (*models.Property, error) {
	var p models.Property
	err := r.DB.QueryRow(ctx,
		`SELECT id, name, address, city, county, description, landlord_id, created_at, updated_at
         FROM properties WHERE id=$1`, id,
	).Scan(&p.ID, &p.Name, &p.Address, &p.City, &p.County, &p.Description,
		&p.LandlordID, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("property not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetWithStats is the property detail view: the property decorated with
// unit counts scoped to it.
func (r *PropertyRepository) GetWithStats(ctx context.Context, id int) (*models.Property, error) {
	var p models.Property
	err := r.DB.QueryRow(ctx,
		`SELECT p.id, p.name, p.address, p.city, p.county, p.description, p.landlord_id,
		        p.created_at, p.updated_at,
		        COUNT(u.id), COUNT(u.id) FILTER (WHERE u.status = 'occupied')
         FROM properties p
         LEFT JOIN units u ON u.property_id = p.id
         WHERE p.id=$1
         GROUP BY p.id`, id,
	).Scan(&p.ID, &p.Name, &p.Address, &p.City, &p.County, &p.Description,
		&p.LandlordID, &p.CreatedAt, &p.UpdatedAt, &p.UnitsCount, &p.OccupiedUnits)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("property not found")
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListByLandlord is the property list view for a landlord, each row decorated
// with unit counts.
func (r *PropertyRepository) ListByLandlord(ctx context.Context, landlordID int) ([]*models.Property, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT p.id, p.name, p.address, p.city, p.county, p.description, p.landlord_id,
		        p.created_at, p.updated_at,
		        COUNT(u.id), COUNT(u.id) FILTER (WHERE u.status = 'occupied')
         FROM properties p
         LEFT JOIN units u ON u.property_id = p.id
         WHERE p.landlord_id=$1
         GROUP BY p.id
         ORDER BY p.created_at DESC`, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		var p models.Property
		err := rows.Scan(&p.ID, &p.Name, &p.Address, &p.City, &p.County, &p.Description,
			&p.LandlordID, &p.CreatedAt, &p.UpdatedAt, &p.UnitsCount, &p.OccupiedUnits)
		if err != nil {
			return nil, err
		}
		properties = append(properties, &p)
	}
	return properties, rows.Err()
}

// Update applies the non-nil fields of the request to the property
func (r *PropertyRepository) Update(ctx context.Context, id int, req *models.UpdatePropertyRequest) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE properties SET
		    name        = COALESCE($1, name),
		    address     = COALESCE($2, address),
		    city        = COALESCE($3, city),
		    county      = COALESCE($4, county),
		    description = COALESCE($5, description),
		    updated_at  = NOW()
         WHERE id=$6`,
		req.Name, req.Address, req.City, req.County, req.Description, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("property not found")
	}
	return nil
}

// Delete removes the property; its units go with it via ON DELETE CASCADE
func (r *PropertyRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("property not found")
	}
	return nil
}
