package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps the router. With allowAll every origin is accepted, which the
// hosted deployment relies on.
func CORS(handler http.Handler, origins []string, allowAll bool) http.Handler {
	if allowAll {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{RequestIDHeader, "X-Itinerary-Fallback", "X-Insight-Degraded"},
		AllowCredentials: true,
	}).Handler(handler)
}
