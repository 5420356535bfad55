package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/authz"
	"rentezi-backend/internal/models"
)

type maintenanceFixture struct {
	svc         *MaintenanceService
	repo        *fakeMaintenanceStore
	assignments *fakeAssignmentStore
	unit        *models.Unit

	landlord authz.Actor
	tenant   authz.Actor
	admin    authz.Actor
}

func newMaintenanceFixture(t *testing.T) *maintenanceFixture {
	t.Helper()
	ctx := context.Background()

	properties := newFakePropertyStore()
	units := newFakeUnitStore(properties)
	assignments := newFakeAssignmentStore(units)
	repo := newFakeMaintenanceStore()

	property := &models.Property{Name: "Sunrise Court", LandlordID: 1}
	require.NoError(t, properties.Create(ctx, property))
	unit := &models.Unit{UnitNumber: "A1", PropertyID: property.ID, Status: models.UnitVacant}
	require.NoError(t, units.Create(ctx, unit))

	return &maintenanceFixture{
		svc:         NewMaintenanceService(repo, units, assignments),
		repo:        repo,
		assignments: assignments,
		unit:        unit,
		landlord:    authz.Actor{ID: 1, Role: models.RoleLandlord},
		tenant:      authz.Actor{ID: 2, Role: models.RoleTenant},
		admin:       authz.Actor{ID: 3, Role: models.RoleAdmin},
	}
}

func (f *maintenanceFixture) assignTenant(t *testing.T) {
	t.Helper()
	a := &models.Assignment{UnitID: f.unit.ID, TenantID: f.tenant.ID}
	require.NoError(t, f.assignments.CreateActive(context.Background(), a))
}

func validMaintenanceRequest(unitID int) *models.CreateMaintenanceRequest {
	return &models.CreateMaintenanceRequest{
		UnitID:      unitID,
		IssueType:   "plumbing",
		Description: "Kitchen tap leaking",
	}
}

func TestMaintenanceCreate_TenantWithActiveAssignment(t *testing.T) {
	f := newMaintenanceFixture(t)
	f.assignTenant(t)

	m, err := f.svc.Create(context.Background(), f.tenant, validMaintenanceRequest(f.unit.ID))
	require.NoError(t, err)

	assert.Equal(t, models.MaintenancePending, m.Status)
	assert.Equal(t, models.PriorityMedium, m.Priority, "priority defaults to medium")
	assert.Equal(t, f.tenant.ID, m.TenantID)
	assert.Nil(t, m.ResolvedAt)
}

func TestMaintenanceCreate_TenantWithoutAssignmentForbidden(t *testing.T) {
	f := newMaintenanceFixture(t)

	_, err := f.svc.Create(context.Background(), f.tenant, validMaintenanceRequest(f.unit.ID))
	assert.True(t, apperr.IsForbidden(err))
}

func TestMaintenanceCreate_OwningLandlordAllowed(t *testing.T) {
	f := newMaintenanceFixture(t)

	_, err := f.svc.Create(context.Background(), f.landlord, validMaintenanceRequest(f.unit.ID))
	assert.NoError(t, err)
}

func TestMaintenanceCreate_ForeignLandlordForbidden(t *testing.T) {
	f := newMaintenanceFixture(t)

	stranger := authz.Actor{ID: 42, Role: models.RoleLandlord}
	_, err := f.svc.Create(context.Background(), stranger, validMaintenanceRequest(f.unit.ID))
	assert.True(t, apperr.IsForbidden(err))
}

func TestMaintenanceCreate_Validation(t *testing.T) {
	f := newMaintenanceFixture(t)
	ctx := context.Background()

	req := validMaintenanceRequest(f.unit.ID)
	req.Description = ""
	_, err := f.svc.Create(ctx, f.landlord, req)
	assert.True(t, apperr.IsValidation(err))

	req = validMaintenanceRequest(f.unit.ID)
	req.Priority = "urgent"
	_, err = f.svc.Create(ctx, f.landlord, req)
	assert.True(t, apperr.IsValidation(err))
}

func TestMaintenanceCreate_UnknownUnit(t *testing.T) {
	f := newMaintenanceFixture(t)

	_, err := f.svc.Create(context.Background(), f.admin, validMaintenanceRequest(999))
	assert.True(t, apperr.IsNotFound(err))
}

func TestMaintenanceUpdateStatus_CompletedOverwritesResolvedAt(t *testing.T) {
	f := newMaintenanceFixture(t)
	ctx := context.Background()

	m, err := f.svc.Create(ctx, f.landlord, validMaintenanceRequest(f.unit.ID))
	require.NoError(t, err)

	first, err := f.svc.UpdateStatus(ctx, f.landlord, m.ID, models.MaintenanceCompleted)
	require.NoError(t, err)
	require.NotNil(t, first.ResolvedAt)
	firstStamp := *first.ResolvedAt

	time.Sleep(10 * time.Millisecond)

	// Completing again refreshes the stamp, unlike the payment date.
	second, err := f.svc.UpdateStatus(ctx, f.landlord, m.ID, models.MaintenanceCompleted)
	require.NoError(t, err)
	require.NotNil(t, second.ResolvedAt)
	assert.True(t, second.ResolvedAt.After(firstStamp))
}

func TestMaintenanceUpdateStatus_NonCompletedKeepsStamp(t *testing.T) {
	f := newMaintenanceFixture(t)
	ctx := context.Background()

	m, err := f.svc.Create(ctx, f.landlord, validMaintenanceRequest(f.unit.ID))
	require.NoError(t, err)

	completed, err := f.svc.UpdateStatus(ctx, f.landlord, m.ID, models.MaintenanceCompleted)
	require.NoError(t, err)
	stamp := *completed.ResolvedAt

	reopened, err := f.svc.UpdateStatus(ctx, f.landlord, m.ID, models.MaintenanceInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.MaintenanceInProgress, reopened.Status)
	require.NotNil(t, reopened.ResolvedAt)
	assert.True(t, reopened.ResolvedAt.Equal(stamp), "reopening keeps the old stamp")
}

func TestMaintenanceUpdateStatus_TenantForbidden(t *testing.T) {
	f := newMaintenanceFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), f.tenant, 1, models.MaintenanceCompleted)
	assert.True(t, apperr.IsForbidden(err))
}

func TestMaintenanceUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	f := newMaintenanceFixture(t)

	_, err := f.svc.UpdateStatus(context.Background(), f.landlord, 1, "fixed")
	assert.True(t, apperr.IsValidation(err))
}

func TestMaintenanceList_TenantScopedToSelf(t *testing.T) {
	f := newMaintenanceFixture(t)
	f.assignTenant(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.tenant, validMaintenanceRequest(f.unit.ID))
	require.NoError(t, err)

	mine, err := f.svc.ListForTenant(ctx, f.tenant)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	none, err := f.svc.ListForTenant(ctx, authz.Actor{ID: 77, Role: models.RoleTenant})
	require.NoError(t, err)
	assert.Empty(t, none)
}
