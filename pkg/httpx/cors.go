package httpx

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows browser calls from the given origins with credentials.
func CORS(origins ...string) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
