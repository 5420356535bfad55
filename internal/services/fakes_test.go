package services

import (
	"context"
	"time"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/models"
)

// In-memory stores backing the service tests. They mirror the repository
// behavior the services rely on: NotFound errors for missing rows and the
// supersede-and-occupy transaction on assignment creation.

type fakeUserStore struct {
	users  map[int]*models.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[int]*models.User), nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return nil
}

func (f *fakeUserStore) Get(_ context.Context, id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, apperr.NotFound("user %d", id)
	}
	return u, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperr.NotFound("user with email %s", email)
}

func (f *fakeUserStore) ListByRole(_ context.Context, role string) ([]*models.User, error) {
	var out []*models.User
	for _, u := range f.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) GetByIDNumber(_ context.Context, idNumber string) (*models.User, error) {
	for _, u := range f.users {
		if u.IDNumber == idNumber {
			return u, nil
		}
	}
	return nil, apperr.NotFound("user with id number %s", idNumber)
}

type fakePropertyStore struct {
	properties map[int]*models.Property
	units      *fakeUnitStore
	nextID     int
}

func newFakePropertyStore() *fakePropertyStore {
	return &fakePropertyStore{properties: make(map[int]*models.Property), nextID: 1}
}

func (f *fakePropertyStore) Create(_ context.Context, p *models.Property) error {
	p.ID = f.nextID
	f.nextID++
	f.properties[p.ID] = p
	return nil
}

func (f *fakePropertyStore) Get(_ context.Context, id int) (*models.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, apperr.NotFound("property %d", id)
	}
	return p, nil
}

func (f *fakePropertyStore) GetWithStats(ctx context.Context, id int) (*models.Property, error) {
	p, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p.UnitsCount, p.OccupiedUnits = 0, 0
	if f.units != nil {
		for _, u := range f.units.units {
			if u.PropertyID != id {
				continue
			}
			p.UnitsCount++
			if u.Status == models.UnitOccupied {
				p.OccupiedUnits++
			}
		}
	}
	return p, nil
}

func (f *fakePropertyStore) ListByLandlord(_ context.Context, landlordID int) ([]*models.Property, error) {
	var out []*models.Property
	for _, p := range f.properties {
		if p.LandlordID == landlordID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePropertyStore) Update(_ context.Context, id int, req *models.UpdatePropertyRequest) error {
	p, ok := f.properties[id]
	if !ok {
		return apperr.NotFound("property %d", id)
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.City != nil {
		p.City = *req.City
	}
	if req.County != nil {
		p.County = *req.County
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	return nil
}

func (f *fakePropertyStore) Delete(_ context.Context, id int) error {
	if _, ok := f.properties[id]; !ok {
		return apperr.NotFound("property %d", id)
	}
	delete(f.properties, id)
	return nil
}

type fakeUnitStore struct {
	units      map[int]*models.Unit
	properties *fakePropertyStore
	nextID     int
}

func newFakeUnitStore(properties *fakePropertyStore) *fakeUnitStore {
	f := &fakeUnitStore{units: make(map[int]*models.Unit), properties: properties, nextID: 1}
	properties.units = f
	return f
}

func (f *fakeUnitStore) Create(_ context.Context, u *models.Unit) error {
	u.ID = f.nextID
	f.nextID++
	f.units[u.ID] = u
	return nil
}

func (f *fakeUnitStore) Get(_ context.Context, id int) (*models.Unit, error) {
	u, ok := f.units[id]
	if !ok {
		return nil, apperr.NotFound("unit %d", id)
	}
	return u, nil
}

func (f *fakeUnitStore) OwnerLandlordID(ctx context.Context, unitID int) (int, error) {
	u, err := f.Get(ctx, unitID)
	if err != nil {
		return 0, err
	}
	p, err := f.properties.Get(ctx, u.PropertyID)
	if err != nil {
		return 0, err
	}
	return p.LandlordID, nil
}

func (f *fakeUnitStore) ListByProperty(_ context.Context, propertyID int) ([]*models.Unit, error) {
	var out []*models.Unit
	for _, u := range f.units {
		if u.PropertyID == propertyID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUnitStore) ListVacant(_ context.Context, propertyID int) ([]*models.Unit, error) {
	var out []*models.Unit
	for _, u := range f.units {
		if u.Status != models.UnitVacant {
			continue
		}
		if propertyID != 0 && u.PropertyID != propertyID {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

type fakeAssignmentStore struct {
	assignments map[int]*models.Assignment
	units       *fakeUnitStore
	nextID      int
}

func newFakeAssignmentStore(units *fakeUnitStore) *fakeAssignmentStore {
	return &fakeAssignmentStore{assignments: make(map[int]*models.Assignment), units: units, nextID: 1}
}

func (f *fakeAssignmentStore) CreateActive(ctx context.Context, a *models.Assignment) error {
	unit, err := f.units.Get(ctx, a.UnitID)
	if err != nil {
		return err
	}
	for _, existing := range f.assignments {
		if existing.UnitID == a.UnitID && existing.IsActive {
			existing.IsActive = false
		}
	}
	a.ID = f.nextID
	f.nextID++
	a.IsActive = true
	f.assignments[a.ID] = a
	unit.Status = models.UnitOccupied
	return nil
}

func (f *fakeAssignmentStore) Get(_ context.Context, id int) (*models.Assignment, error) {
	a, ok := f.assignments[id]
	if !ok {
		return nil, apperr.NotFound("assignment %d", id)
	}
	return a, nil
}

func (f *fakeAssignmentStore) End(ctx context.Context, id int) (*models.Assignment, error) {
	a, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	// A superseded or already-ended row leaves the unit alone
	if !a.IsActive {
		return a, nil
	}
	a.IsActive = false
	if unit, err := f.units.Get(ctx, a.UnitID); err == nil {
		unit.Status = models.UnitVacant
	}
	return a, nil
}

func (f *fakeAssignmentStore) TenantHasActiveOnUnit(_ context.Context, tenantID, unitID int) (bool, error) {
	for _, a := range f.assignments {
		if a.UnitID == unitID && a.TenantID == tenantID && a.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAssignmentStore) ListByTenant(_ context.Context, tenantID int) ([]*models.Assignment, error) {
	var out []*models.Assignment
	for _, a := range f.assignments {
		if a.TenantID == tenantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentStore) ListByLandlord(ctx context.Context, landlordID int) ([]*models.Assignment, error) {
	var out []*models.Assignment
	for _, a := range f.assignments {
		owner, err := f.units.OwnerLandlordID(ctx, a.UnitID)
		if err != nil {
			continue
		}
		if owner == landlordID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakePaymentStore struct {
	payments map[int]*models.Payment
	nextID   int
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{payments: make(map[int]*models.Payment), nextID: 1}
}

func (f *fakePaymentStore) Create(_ context.Context, p *models.Payment) error {
	p.ID = f.nextID
	f.nextID++
	f.payments[p.ID] = p
	return nil
}

func (f *fakePaymentStore) Get(_ context.Context, id int) (*models.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, apperr.NotFound("payment %d", id)
	}
	return p, nil
}

func (f *fakePaymentStore) GetView(ctx context.Context, id int) (*models.Payment, error) {
	return f.Get(ctx, id)
}

func (f *fakePaymentStore) UpdateStatus(ctx context.Context, id int, status string, paymentDate *time.Time) error {
	p, err := f.Get(ctx, id)
	if err != nil {
		return err
	}
	p.Status = status
	// First stamp wins, matching COALESCE(payment_date, $2)
	if p.PaymentDate == nil {
		p.PaymentDate = paymentDate
	}
	return nil
}

func (f *fakePaymentStore) ListByTenant(_ context.Context, tenantID int) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range f.payments {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePaymentStore) ListByLandlord(_ context.Context, _ int) ([]*models.Payment, error) {
	return nil, nil
}

type fakeMaintenanceStore struct {
	requests map[int]*models.MaintenanceRequest
	nextID   int
}

func newFakeMaintenanceStore() *fakeMaintenanceStore {
	return &fakeMaintenanceStore{requests: make(map[int]*models.MaintenanceRequest), nextID: 1}
}

func (f *fakeMaintenanceStore) Create(_ context.Context, m *models.MaintenanceRequest) error {
	m.ID = f.nextID
	f.nextID++
	f.requests[m.ID] = m
	return nil
}

func (f *fakeMaintenanceStore) Get(_ context.Context, id int) (*models.MaintenanceRequest, error) {
	m, ok := f.requests[id]
	if !ok {
		return nil, apperr.NotFound("maintenance request %d", id)
	}
	return m, nil
}

func (f *fakeMaintenanceStore) UpdateStatus(ctx context.Context, id int, status string, resolvedAt *time.Time) error {
	m, err := f.Get(ctx, id)
	if err != nil {
		return err
	}
	m.Status = status
	if resolvedAt != nil {
		m.ResolvedAt = resolvedAt
	}
	return nil
}

func (f *fakeMaintenanceStore) ListByTenant(_ context.Context, tenantID int) ([]*models.MaintenanceRequest, error) {
	var out []*models.MaintenanceRequest
	for _, m := range f.requests {
		if m.TenantID == tenantID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMaintenanceStore) ListByLandlord(_ context.Context, _ int) ([]*models.MaintenanceRequest, error) {
	return nil, nil
}
