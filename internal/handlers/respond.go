package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/authz"
	"rentezi-backend/internal/middleware"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("write response: %v", err)
		}
	}
}

// writeError maps domain errors onto HTTP status codes. Anything not in
// the known taxonomy is a 500 and gets logged with its real cause.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case apperr.IsNotFound(err):
		http.Error(w, err.Error(), http.StatusNotFound)
	case apperr.IsForbidden(err):
		http.Error(w, err.Error(), http.StatusForbidden)
	case apperr.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("internal error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// actorFromContext builds the authorization actor from the values the
// auth middleware stored on the request context.
func actorFromContext(r *http.Request) (authz.Actor, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return authz.Actor{}, false
	}
	role, ok := middleware.GetRoleFromContext(r.Context())
	if !ok {
		return authz.Actor{}, false
	}
	return authz.Actor{ID: userID, Role: role}, true
}

func requireActor(w http.ResponseWriter, r *http.Request) (authz.Actor, bool) {
	actor, ok := actorFromContext(r)
	if !ok {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
	}
	return actor, ok
}
