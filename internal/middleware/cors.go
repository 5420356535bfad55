package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"rentezi-backend/internal/config"
)

// NewCORS builds the CORS handler from configuration.
func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CorsAllowedOrigins,
		AllowedMethods:   cfg.Server.CorsAllowedMethods,
		AllowedHeaders:   cfg.Server.CorsAllowedHeaders,
		AllowCredentials: true,
		MaxAge:           300,
	})
	return c.Handler
}
