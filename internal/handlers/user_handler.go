package handlers

import (
	"net/http"

	"rentezi-backend/internal/services"
)

type UserHandler struct {
	Service *services.UserService
}

func NewUserHandler(s *services.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

// ListTenants returns all tenant accounts so a landlord can pick the
// assignee when placing someone on a unit
func (h *UserHandler) ListTenants(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	tenants, err := h.Service.ListTenants(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tenants)
}
