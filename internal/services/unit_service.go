package services

import (
	"context"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/authz"
	"rentezi-backend/internal/cache"
	"rentezi-backend/internal/models"
)

type UnitService struct {
	Repo       UnitStore
	Properties PropertyStore
}

func NewUnitService(repo UnitStore, properties PropertyStore) *UnitService {
	return &UnitService{Repo: repo, Properties: properties}
}

// Create adds a unit to a property the actor controls
func (s *UnitService) Create(ctx context.Context, actor authz.Actor, propertyID int, req *models.CreateUnitRequest) (*models.Unit, error) {
	property, err := s.Properties.Get(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if err := authz.Decide(actor, authz.ActionCreateUnit, authz.Resource{LandlordID: property.LandlordID}); err != nil {
		return nil, err
	}
	if req.UnitNumber == "" {
		return nil, apperr.Validation("unit number is required")
	}
	if req.MonthlyRent <= 0 {
		return nil, apperr.Validation("monthly rent must be positive")
	}

	unit := &models.Unit{
		UnitNumber:  req.UnitNumber,
		Floor:       req.Floor,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		SquareFeet:  req.SquareFeet,
		MonthlyRent: req.MonthlyRent,
		Status:      models.UnitVacant,
		PropertyID:  propertyID,
	}
	if err := s.Repo.Create(ctx, unit); err != nil {
		return nil, err
	}
	cache.InvalidatePropertyStats(ctx, propertyID)
	return unit, nil
}

// ListByProperty returns the units of a property, decorated with the current
// tenant where occupied
func (s *UnitService) ListByProperty(ctx context.Context, actor authz.Actor, propertyID int) ([]*models.Unit, error) {
	property, err := s.Properties.Get(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if err := authz.Decide(actor, authz.ActionListUnits, authz.Resource{LandlordID: property.LandlordID}); err != nil {
		return nil, err
	}
	return s.Repo.ListByProperty(ctx, propertyID)
}

// Get returns one unit
func (s *UnitService) Get(ctx context.Context, actor authz.Actor, id int) (*models.Unit, error) {
	unit, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	landlordID, err := s.Repo.OwnerLandlordID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Decide(actor, authz.ActionViewUnit, authz.Resource{LandlordID: landlordID}); err != nil {
		return nil, err
	}
	return unit, nil
}

// ListVacant returns vacant units, optionally scoped to one property
func (s *UnitService) ListVacant(ctx context.Context, actor authz.Actor, propertyID int) ([]*models.Unit, error) {
	if err := authz.Decide(actor, authz.ActionListVacantUnits, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.Repo.ListVacant(ctx, propertyID)
}
