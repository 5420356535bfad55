package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"rentezi-backend/internal/apperr"
	"rentezi-backend/internal/models"
	"rentezi-backend/internal/repositories"
	"rentezi-backend/internal/services"
)

type AuthHandler struct {
	Service      *services.UserService
	LoginLogRepo *repositories.LoginLogRepository
}

func NewAuthHandler(s *services.UserService, loginLogRepo *repositories.LoginLogRepository) *AuthHandler {
	return &AuthHandler{
		Service:      s,
		LoginLogRepo: loginLogRepo,
	}
}

// Signup handles user registration
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	authResp, err := h.Service.Signup(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResp)
}

// Login handles user authentication
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	authResp, err := h.Service.Login(r.Context(), &req)
	if err != nil {
		// Credential failures stay 401 regardless of the underlying cause.
		if apperr.IsForbidden(err) || apperr.IsNotFound(err) {
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		writeError(w, err)
		return
	}

	// Record the successful login; a logging failure must not block auth.
	if _, err := h.LoginLogRepo.Create(r.Context(), authResp.User.ID, getIPAddress(r), r.UserAgent()); err != nil {
		log.Printf("record login for user %d: %v", authResp.User.ID, err)
	}

	writeJSON(w, http.StatusOK, authResp)
}

// getIPAddress extracts the real IP address from the request
func getIPAddress(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	// Fall back to the remote address, stripping the port if present
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}
