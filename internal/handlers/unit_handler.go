package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rentezi-backend/internal/models"
	"rentezi-backend/internal/services"
)

type UnitHandler struct {
	Service *services.UnitService
}

func NewUnitHandler(s *services.UnitService) *UnitHandler {
	return &UnitHandler{Service: s}
}

// Create adds a unit to a property
func (h *UnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	propertyID, err := strconv.Atoi(mux.Vars(r)["propertyId"])
	if err != nil {
		http.Error(w, "Invalid property ID", http.StatusBadRequest)
		return
	}

	var req models.CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	unit, err := h.Service.Create(r.Context(), actor, propertyID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, unit)
}

// ListByProperty returns a property's units with current tenant names
func (h *UnitHandler) ListByProperty(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	propertyID, err := strconv.Atoi(mux.Vars(r)["propertyId"])
	if err != nil {
		http.Error(w, "Invalid property ID", http.StatusBadRequest)
		return
	}

	units, err := h.Service.ListByProperty(r.Context(), actor, propertyID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, units)
}

// Get returns a single unit
func (h *UnitHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid unit ID", http.StatusBadRequest)
		return
	}

	unit, err := h.Service.Get(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, unit)
}

// ListVacant returns vacant units, optionally scoped to one property
// via the ?property_id= query parameter.
func (h *UnitHandler) ListVacant(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	propertyID := 0
	if raw := r.URL.Query().Get("property_id"); raw != "" {
		var err error
		propertyID, err = strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid property ID", http.StatusBadRequest)
			return
		}
	}

	units, err := h.Service.ListVacant(r.Context(), actor, propertyID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, units)
}
