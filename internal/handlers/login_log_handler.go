package handlers

import (
	"net/http"
	"strconv"

	"rentezi-backend/internal/repositories"
)

const defaultLoginLogLimit = 100

type LoginLogHandler struct {
	Repo *repositories.LoginLogRepository
}

func NewLoginLogHandler(repo *repositories.LoginLogRepository) *LoginLogHandler {
	return &LoginLogHandler{Repo: repo}
}

// ListRecent returns the latest logins, newest first. Admin only; the
// ?limit= query parameter caps the page size.
func (h *LoginLogHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := defaultLoginLogLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		if n < limit {
			limit = n
		}
	}

	logs, err := h.Repo.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}
