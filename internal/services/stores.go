package services

import (
	"context"
	"time"

	"rentezi-backend/internal/models"
)

// Store interfaces the services depend on. The pgx repositories satisfy
// them; tests substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	Get(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByIDNumber(ctx context.Context, idNumber string) (*models.User, error)
	ListByRole(ctx context.Context, role string) ([]*models.User, error)
}

type PropertyStore interface {
	Create(ctx context.Context, p *models.Property) error
	Get(ctx context.Context, id int) (*models.Property, error)
	GetWithStats(ctx context.Context, id int) (*models.Property, error)
	ListByLandlord(ctx context.Context, landlordID int) ([]*models.Property, error)
	Update(ctx context.Context, id int, req *models.UpdatePropertyRequest) error
	Delete(ctx context.Context, id int) error
}

type UnitStore interface {
	Create(ctx context.Context, u *models.Unit) error
	Get(ctx context.Context, id int) (*models.Unit, error)
	OwnerLandlordID(ctx context.Context, unitID int) (int, error)
	ListByProperty(ctx context.Context, propertyID int) ([]*models.Unit, error)
	ListVacant(ctx context.Context, propertyID int) ([]*models.Unit, error)
}

type AssignmentStore interface {
	CreateActive(ctx context.Context, a *models.Assignment) error
	Get(ctx context.Context, id int) (*models.Assignment, error)
	End(ctx context.Context, id int) (*models.Assignment, error)
	TenantHasActiveOnUnit(ctx context.Context, tenantID, unitID int) (bool, error)
	ListByTenant(ctx context.Context, tenantID int) ([]*models.Assignment, error)
	ListByLandlord(ctx context.Context, landlordID int) ([]*models.Assignment, error)
}

type PaymentStore interface {
	Create(ctx context.Context, p *models.Payment) error
	Get(ctx context.Context, id int) (*models.Payment, error)
	GetView(ctx context.Context, id int) (*models.Payment, error)
	UpdateStatus(ctx context.Context, id int, status string, paymentDate *time.Time) error
	ListByTenant(ctx context.Context, tenantID int) ([]*models.Payment, error)
	ListByLandlord(ctx context.Context, landlordID int) ([]*models.Payment, error)
}

type MaintenanceStore interface {
	Create(ctx context.Context, m *models.MaintenanceRequest) error
	Get(ctx context.Context, id int) (*models.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id int, status string, resolvedAt *time.Time) error
	ListByTenant(ctx context.Context, tenantID int) ([]*models.MaintenanceRequest, error)
	ListByLandlord(ctx context.Context, landlordID int) ([]*models.MaintenanceRequest, error)
}
