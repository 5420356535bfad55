package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/authz"
	"rentezi-backend/internal/models"
)

var (
	landlordActor = authz.Actor{ID: 1, Role: models.RoleLandlord}
	tenantActor   = authz.Actor{ID: 2, Role: models.RoleTenant}
	adminActor    = authz.Actor{ID: 3, Role: models.RoleAdmin}
)

func validPropertyRequest() *models.CreatePropertyRequest {
	return &models.CreatePropertyRequest{
		Name:    "Sunrise Court",
		Address: "12 Komo Lane",
		City:    "Nairobi",
		County:  "Nairobi",
	}
}

func TestPropertyCreate_OwnedByActor(t *testing.T) {
	svc := NewPropertyService(newFakePropertyStore())

	p, err := svc.Create(context.Background(), landlordActor, validPropertyRequest())
	require.NoError(t, err)
	assert.Equal(t, landlordActor.ID, p.LandlordID)
}

func TestPropertyCreate_TenantForbidden(t *testing.T) {
	svc := NewPropertyService(newFakePropertyStore())

	_, err := svc.Create(context.Background(), tenantActor, validPropertyRequest())
	assert.True(t, apperr.IsForbidden(err))
}

func TestPropertyCreate_Validation(t *testing.T) {
	svc := NewPropertyService(newFakePropertyStore())

	req := validPropertyRequest()
	req.City = ""
	_, err := svc.Create(context.Background(), landlordActor, req)
	assert.True(t, apperr.IsValidation(err))
}

func TestPropertyGet_ForeignLandlordForbidden(t *testing.T) {
	svc := NewPropertyService(newFakePropertyStore())
	ctx := context.Background()

	p, err := svc.Create(ctx, landlordActor, validPropertyRequest())
	require.NoError(t, err)

	stranger := authz.Actor{ID: 42, Role: models.RoleLandlord}
	_, err = svc.Get(ctx, stranger, p.ID)
	assert.True(t, apperr.IsForbidden(err))
}

func TestPropertyGet_AdminSeesAll(t *testing.T) {
	svc := NewPropertyService(newFakePropertyStore())
	ctx := context.Background()

	p, err := svc.Create(ctx, landlordActor, validPropertyRequest())
	require.NoError(t, err)

	got, err := svc.Get(ctx, adminActor, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestPropertyGet_Unknown(t *testing.T) {
	svc := NewPropertyService(newFakePropertyStore())

	_, err := svc.Get(context.Background(), landlordActor, 404)
	assert.True(t, apperr.IsNotFound(err))
}

func TestPropertyGet_UnitCountsTrackOccupancy(t *testing.T) {
	properties := newFakePropertyStore()
	units := newFakeUnitStore(properties)
	assignments := newFakeAssignmentStore(units)
	svc := NewPropertyService(properties)
	ctx := context.Background()

	p, err := svc.Create(ctx, landlordActor, validPropertyRequest())
	require.NoError(t, err)

	got, err := svc.Get(ctx, landlordActor, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.UnitsCount)
	assert.Equal(t, 0, got.OccupiedUnits)

	unit := &models.Unit{UnitNumber: "A1", PropertyID: p.ID, Status: models.UnitVacant}
	require.NoError(t, units.Create(ctx, unit))

	got, err = svc.Get(ctx, landlordActor, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.UnitsCount)
	assert.Equal(t, 0, got.OccupiedUnits)

	require.NoError(t, assignments.CreateActive(ctx, &models.Assignment{UnitID: unit.ID, TenantID: tenantActor.ID}))

	got, err = svc.Get(ctx, landlordActor, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.UnitsCount)
	assert.Equal(t, 1, got.OccupiedUnits)
}

func TestPropertyUpdate_PartialFields(t *testing.T) {
	svc := NewPropertyService(newFakePropertyStore())
	ctx := context.Background()

	p, err := svc.Create(ctx, landlordActor, validPropertyRequest())
	require.NoError(t, err)

	newName := "Sunset Court"
	updated, err := svc.Update(ctx, landlordActor, p.ID, &models.UpdatePropertyRequest{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Sunset Court", updated.Name)
	assert.Equal(t, "12 Komo Lane", updated.Address, "omitted fields stay untouched")
}

func TestPropertyDelete_ForeignLandlordForbidden(t *testing.T) {
	store := newFakePropertyStore()
	svc := NewPropertyService(store)
	ctx := context.Background()

	p, err := svc.Create(ctx, landlordActor, validPropertyRequest())
	require.NoError(t, err)

	stranger := authz.Actor{ID: 42, Role: models.RoleLandlord}
	err = svc.Delete(ctx, stranger, p.ID)
	assert.True(t, apperr.IsForbidden(err))

	require.NoError(t, svc.Delete(ctx, landlordActor, p.ID))
	_, err = store.Get(ctx, p.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestPropertyList_ScopedToActor(t *testing.T) {
	svc := NewPropertyService(newFakePropertyStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, landlordActor, validPropertyRequest())
	require.NoError(t, err)

	mine, err := svc.List(ctx, landlordActor)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	other, err := svc.List(ctx, authz.Actor{ID: 42, Role: models.RoleLandlord})
	require.NoError(t, err)
	assert.Empty(t, other)
}
