package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rentezi-backend/internal/metrics"
	"rentezi-backend/internal/models"
	"rentezi-backend/internal/services"
)

type AssignmentHandler struct {
	Service *services.AssignmentService
}

func NewAssignmentHandler(s *services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{Service: s}
}

// Assign places a tenant on a unit, superseding any active assignment
func (h *AssignmentHandler) Assign(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	unitID, err := strconv.Atoi(mux.Vars(r)["unitId"])
	if err != nil {
		http.Error(w, "Invalid unit ID", http.StatusBadRequest)
		return
	}

	var req models.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	assignment, err := h.Service.Create(r.Context(), actor, unitID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.AssignmentsCreated.Inc()
	writeJSON(w, http.StatusCreated, assignment)
}

// End deactivates an assignment and frees its unit
func (h *AssignmentHandler) End(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid assignment ID", http.StatusBadRequest)
		return
	}

	assignment, err := h.Service.End(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assignment)
}

// ListMine returns the acting tenant's assignments
func (h *AssignmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	assignments, err := h.Service.ListForTenant(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assignments)
}

// List returns assignments across the acting landlord's properties
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}

	assignments, err := h.Service.ListForLandlord(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assignments)
}
