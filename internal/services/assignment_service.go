package services

import (
	"context"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/authz"
	"rentezi-backend/internal/cache"
	"rentezi-backend/internal/models"
	"rentezi-backend/internal/timeutil"
)

type AssignmentService struct {
	Repo  AssignmentStore
	Units UnitStore
	Users UserStore
}

func NewAssignmentService(repo AssignmentStore, units UnitStore, users UserStore) *AssignmentService {
	return &AssignmentService{Repo: repo, Units: units, Users: users}
}

// Create assigns a tenant to a unit. Any active assignment on the unit is
// superseded: deactivated in the same transaction that inserts the new one
// and marks the unit occupied. Date-range overlap is not validated.
func (s *AssignmentService) Create(ctx context.Context, actor authz.Actor, unitID int, req *models.CreateAssignmentRequest) (*models.Assignment, error) {
	unit, err := s.Units.Get(ctx, unitID)
	if err != nil {
		return nil, err
	}
	landlordID, err := s.Units.OwnerLandlordID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if err := authz.Decide(actor, authz.ActionAssignUnit, authz.Resource{LandlordID: landlordID}); err != nil {
		return nil, err
	}

	if req.PaymentDueDay < 1 || req.PaymentDueDay > 31 {
		return nil, apperr.Validation("payment due day must be between 1 and 31")
	}
	startDate, err := timeutil.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperr.Validation("start date must be YYYY-MM-DD")
	}
	endDate, err := timeutil.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperr.Validation("end date must be YYYY-MM-DD")
	}

	tenant, err := s.Users.Get(ctx, req.TenantID)
	if err != nil {
		return nil, err
	}
	if tenant.Role != models.RoleTenant {
		return nil, apperr.Validation("assignee must have the tenant role")
	}

	assignment := &models.Assignment{
		UnitID:          unitID,
		TenantID:        req.TenantID,
		StartDate:       startDate,
		EndDate:         endDate,
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		PaymentDueDay:   req.PaymentDueDay,
	}
	if err := s.Repo.CreateActive(ctx, assignment); err != nil {
		return nil, err
	}
	cache.InvalidatePropertyStats(ctx, unit.PropertyID)
	return assignment, nil
}

// End deactivates an assignment and marks its unit vacant
func (s *AssignmentService) End(ctx context.Context, actor authz.Actor, id int) (*models.Assignment, error) {
	assignment, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	landlordID, err := s.Units.OwnerLandlordID(ctx, assignment.UnitID)
	if err != nil {
		return nil, err
	}
	if err := authz.Decide(actor, authz.ActionEndAssignment, authz.Resource{LandlordID: landlordID}); err != nil {
		return nil, err
	}

	ended, err := s.Repo.End(ctx, id)
	if err != nil {
		return nil, err
	}
	if unit, err := s.Units.Get(ctx, ended.UnitID); err == nil {
		cache.InvalidatePropertyStats(ctx, unit.PropertyID)
	}
	return ended, nil
}

// ListForTenant returns the actor's own assignments
func (s *AssignmentService) ListForTenant(ctx context.Context, actor authz.Actor) ([]*models.Assignment, error) {
	if err := authz.Decide(actor, authz.ActionViewOwnTenancy, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.Repo.ListByTenant(ctx, actor.ID)
}

// ListForLandlord returns assignments on units in the actor's properties
func (s *AssignmentService) ListForLandlord(ctx context.Context, actor authz.Actor) ([]*models.Assignment, error) {
	if err := authz.Decide(actor, authz.ActionViewLandlordBook, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.Repo.ListByLandlord(ctx, actor.ID)
}
