package services

import (
	"context"
	"time"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/authz"
	"rentezi-backend/internal/models"
	"rentezi-backend/internal/timeutil"
)

type MaintenanceService struct {
	Repo        MaintenanceStore
	Units       UnitStore
	Assignments AssignmentStore
}

func NewMaintenanceService(repo MaintenanceStore, units UnitStore, assignments AssignmentStore) *MaintenanceService {
	return &MaintenanceService{Repo: repo, Units: units, Assignments: assignments}
}

// Create files a maintenance request for a unit on behalf of the actor.
// Tenants may only file against a unit they hold the active assignment for.
func (s *MaintenanceService) Create(ctx context.Context, actor authz.Actor, req *models.CreateMaintenanceRequest) (*models.MaintenanceRequest, error) {
	if _, err := s.Units.Get(ctx, req.UnitID); err != nil {
		return nil, err
	}
	landlordID, err := s.Units.OwnerLandlordID(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}

	res := authz.Resource{LandlordID: landlordID}
	if actor.Role == models.RoleTenant {
		hasActive, err := s.Assignments.TenantHasActiveOnUnit(ctx, actor.ID, req.UnitID)
		if err != nil {
			return nil, err
		}
		res.ActorHasActiveAssignment = hasActive
	}
	if err := authz.Decide(actor, authz.ActionCreateMaintenance, res); err != nil {
		return nil, err
	}

	if req.IssueType == "" || req.Description == "" {
		return nil, apperr.Validation("issue type and description are required")
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !models.ValidPriority(priority) {
		return nil, apperr.Validation("priority must be low, medium or high")
	}

	request := &models.MaintenanceRequest{
		UnitID:      req.UnitID,
		TenantID:    actor.ID,
		IssueType:   req.IssueType,
		Description: req.Description,
		Priority:    priority,
		Status:      models.MaintenancePending,
	}
	if err := s.Repo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// UpdateStatus overwrites a request's status. Moving to completed stamps the
// resolution time every time, overwriting any earlier stamp.
func (s *MaintenanceService) UpdateStatus(ctx context.Context, actor authz.Actor, id int, status string) (*models.MaintenanceRequest, error) {
	if err := authz.Decide(actor, authz.ActionUpdateMaintenance, authz.Resource{}); err != nil {
		return nil, err
	}
	if !models.ValidMaintenanceStatus(status) {
		return nil, apperr.Validation("invalid maintenance status %q", status)
	}

	request, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var stamp *time.Time
	if status == models.MaintenanceCompleted {
		now := timeutil.Now()
		stamp = &now
	}
	if err := s.Repo.UpdateStatus(ctx, id, status, stamp); err != nil {
		return nil, err
	}

	request.Status = status
	if stamp != nil {
		request.ResolvedAt = stamp
	}
	return request, nil
}

// ListForTenant returns the actor's own maintenance requests
func (s *MaintenanceService) ListForTenant(ctx context.Context, actor authz.Actor) ([]*models.MaintenanceRequest, error) {
	if err := authz.Decide(actor, authz.ActionViewOwnRequests, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.Repo.ListByTenant(ctx, actor.ID)
}

// ListForLandlord returns requests on units in the actor's properties
func (s *MaintenanceService) ListForLandlord(ctx context.Context, actor authz.Actor) ([]*models.MaintenanceRequest, error) {
	if err := authz.Decide(actor, authz.ActionViewWorkOrders, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.Repo.ListByLandlord(ctx, actor.ID)
}
