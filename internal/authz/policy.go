// Package authz is the authorization policy: a pure decision table keyed by
// (role, action, ownership), with no HTTP or database dependencies. Callers
// fetch the ownership facts and pass them in on the Resource.
package authz

import (
	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/models"
)

// Actor is the authenticated identity performing an action.
type Actor struct {
	ID   int
	Role string
}

// Action names a domain operation subject to authorization.
type Action string

const (
	ActionCreateProperty    Action = "property.create"
	ActionListProperties    Action = "property.list"
	ActionViewProperty      Action = "property.view"
	ActionUpdateProperty    Action = "property.update"
	ActionDeleteProperty    Action = "property.delete"
	ActionListTenants       Action = "user.list_tenants"
	ActionCreateUnit        Action = "unit.create"
	ActionListUnits         Action = "unit.list"
	ActionListVacantUnits   Action = "unit.list_vacant"
	ActionViewUnit          Action = "unit.view"
	ActionAssignUnit        Action = "assignment.create"
	ActionEndAssignment     Action = "assignment.end"
	ActionViewOwnTenancy    Action = "assignment.list_tenant"
	ActionViewLandlordBook  Action = "assignment.list_landlord"
	ActionCreatePayment     Action = "payment.create"
	ActionViewOwnPayments   Action = "payment.list_tenant"
	ActionViewRentRoll      Action = "payment.list_landlord"
	ActionUpdatePayment     Action = "payment.update_status"
	ActionViewReceipt       Action = "payment.receipt"
	ActionCreateMaintenance Action = "maintenance.create"
	ActionViewOwnRequests   Action = "maintenance.list_tenant"
	ActionViewWorkOrders    Action = "maintenance.list_landlord"
	ActionUpdateMaintenance Action = "maintenance.update_status"
)

// Resource carries the ownership facts a decision may need. Zero values mean
// "not applicable"; the caller is responsible for populating the fields the
// action's rule consults.
type Resource struct {
	// LandlordID is the owning landlord of the property the target belongs to.
	LandlordID int
	// TenantID is the tenant on the target assignment or payment.
	TenantID int
	// ActorHasActiveAssignment is true when the actor holds an active
	// assignment to the target unit.
	ActorHasActiveAssignment bool
}

// Decide returns nil when actor may perform action on res, or a Forbidden
// error otherwise. The result is distinguishable from NotFound by kind.
func Decide(actor Actor, action Action, res Resource) error {
	switch action {
	case ActionCreateProperty, ActionListProperties, ActionListVacantUnits,
		ActionListTenants, ActionViewLandlordBook, ActionViewRentRoll,
		ActionViewWorkOrders, ActionUpdatePayment, ActionUpdateMaintenance:
		if actor.Role == models.RoleLandlord || actor.Role == models.RoleAdmin {
			return nil
		}
		return apperr.Forbidden("role %s may not perform %s", actor.Role, action)

	case ActionViewProperty, ActionUpdateProperty, ActionDeleteProperty,
		ActionCreateUnit, ActionListUnits, ActionAssignUnit, ActionEndAssignment:
		if actor.Role == models.RoleAdmin {
			return nil
		}
		if actor.Role == models.RoleLandlord && res.LandlordID == actor.ID {
			return nil
		}
		return apperr.Forbidden("not authorized for this property")

	case ActionViewUnit:
		// Landlords are scoped to their own properties; other roles pass.
		if actor.Role == models.RoleLandlord && res.LandlordID != actor.ID {
			return apperr.Forbidden("not authorized to view this unit")
		}
		return nil

	case ActionViewOwnTenancy, ActionViewOwnPayments, ActionViewOwnRequests:
		if actor.Role == models.RoleTenant {
			return nil
		}
		return apperr.Forbidden("only tenants can access this endpoint")

	case ActionCreatePayment, ActionViewReceipt:
		if actor.Role == models.RoleLandlord || actor.Role == models.RoleAdmin {
			return nil
		}
		if actor.Role == models.RoleTenant && res.TenantID == actor.ID {
			return nil
		}
		return apperr.Forbidden("not authorized for this assignment")

	case ActionCreateMaintenance:
		switch actor.Role {
		case models.RoleAdmin:
			return nil
		case models.RoleLandlord:
			if res.LandlordID == actor.ID {
				return nil
			}
		case models.RoleTenant:
			if res.ActorHasActiveAssignment {
				return nil
			}
		}
		return apperr.Forbidden("not authorized to create maintenance request for this unit")
	}

	return apperr.Forbidden("unknown action %s", action)
}
