package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"rentezi-backend/internal/apperr"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", apperr.NotFound("unit 7"), http.StatusNotFound},
		{"forbidden", apperr.Forbidden("not your property"), http.StatusForbidden},
		{"validation", apperr.Validation("bad due day"), http.StatusBadRequest},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, tt.err)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestWriteError_HidesInternalCause(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, errors.New("pq: password authentication failed"))
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestGetIPAddress(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.8:51234"
	assert.Equal(t, "10.0.0.8", getIPAddress(r))

	r.Header.Set("X-Real-IP", "41.90.64.12")
	assert.Equal(t, "41.90.64.12", getIPAddress(r))

	r.Header.Set("X-Forwarded-For", "197.232.1.5, 10.0.0.1")
	assert.Equal(t, "197.232.1.5", getIPAddress(r))
}
