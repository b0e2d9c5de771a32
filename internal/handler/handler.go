package handler

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/portfolio/backend/internal/repository"
)

// Handler serves the endpoints that are not tied to one collection: health
// and CORS.
type Handler struct {
	db   repository.DB
	cors func(http.Handler) http.Handler
}

// New creates a Handler. allowedOrigins are the browser origins permitted to
// call the API.
func New(db repository.DB, allowedOrigins []string) *Handler {
	return &Handler{
		db: db,
		cors: cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
			ExposedHeaders: []string{requestIDHeader},
			MaxAge:         300,
		}),
	}
}

// CORS answers preflight requests and sets Access-Control headers for
// allowed origins.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return h.cors(next)
}
