package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows browser clients from the configured origins. A "*" entry
// allows any origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Accept-Language", "X-Locale", "X-Request-ID"},
		ExposedHeaders: []string{"X-Advisor-Source", "X-Request-ID"},
		MaxAge:         600,
	})
	return c.Handler
}
