package services

import (
	"context"
	"encoding/json"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/authz"
	"rentezi-backend/internal/cache"
	"rentezi-backend/internal/models"
)

type PropertyService struct {
	Repo PropertyStore
}

func NewPropertyService(repo PropertyStore) *PropertyService {
	return &PropertyService{Repo: repo}
}

// Create registers a new property owned by the acting landlord
func (s *PropertyService) Create(ctx context.Context, actor authz.Actor, req *models.CreatePropertyRequest) (*models.Property, error) {
	if err := authz.Decide(actor, authz.ActionCreateProperty, authz.Resource{}); err != nil {
		return nil, err
	}
	if req.Name == "" || req.Address == "" || req.City == "" || req.County == "" {
		return nil, apperr.Validation("name, address, city and county are required")
	}

	property := &models.Property{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		County:      req.County,
		Description: req.Description,
		LandlordID:  actor.ID,
	}
	if err := s.Repo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

// List returns the actor's own properties, decorated with unit counts
func (s *PropertyService) List(ctx context.Context, actor authz.Actor) ([]*models.Property, error) {
	if err := authz.Decide(actor, authz.ActionListProperties, authz.Resource{}); err != nil {
		return nil, err
	}
	return s.Repo.ListByLandlord(ctx, actor.ID)
}

// Get returns one property with its unit counts
func (s *PropertyService) Get(ctx context.Context, actor authz.Actor, id int) (*models.Property, error) {
	if data, ok := cache.GetCachedPropertyStats(ctx, id); ok {
		var p models.Property
		if json.Unmarshal(data, &p) == nil {
			if err := authz.Decide(actor, authz.ActionViewProperty, authz.Resource{LandlordID: p.LandlordID}); err != nil {
				return nil, err
			}
			return &p, nil
		}
	}

	property, err := s.Repo.GetWithStats(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Decide(actor, authz.ActionViewProperty, authz.Resource{LandlordID: property.LandlordID}); err != nil {
		return nil, err
	}

	if data, err := json.Marshal(property); err == nil {
		cache.CachePropertyStats(ctx, id, data)
	}
	return property, nil
}

// Update applies a generic field update to the property
func (s *PropertyService) Update(ctx context.Context, actor authz.Actor, id int, req *models.UpdatePropertyRequest) (*models.Property, error) {
	property, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.Decide(actor, authz.ActionUpdateProperty, authz.Resource{LandlordID: property.LandlordID}); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, id, req); err != nil {
		return nil, err
	}
	cache.InvalidatePropertyStats(ctx, id)
	return s.Repo.GetWithStats(ctx, id)
}

// Delete removes the property and, by cascade, its units
func (s *PropertyService) Delete(ctx context.Context, actor authz.Actor, id int) error {
	property, err := s.Repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.Decide(actor, authz.ActionDeleteProperty, authz.Resource{LandlordID: property.LandlordID}); err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.InvalidatePropertyStats(ctx, id)
	return nil
}
