package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes groups the handlers mounted by NewRouter.
type Routes struct {
	Base      *Handler
	Contacts  *ContactHandler
	Community *CommunityHandler
	Feedback  *FeedbackHandler
}

// NewRouter builds the HTTP API.
func NewRouter(rt Routes) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(Recoverer)
	r.Use(rt.Base.CORS)
	r.Use(SecurityHeaders)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed")
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", rt.Base.Health)

		r.Get("/community/messages", rt.Community.List)
		r.Post("/community/messages", rt.Community.Create)

		r.Get("/feedback", rt.Feedback.List)
		r.Post("/feedback", rt.Feedback.Create)

		r.Get("/contacts", rt.Contacts.List)
		r.Post("/contacts", rt.Contacts.Create)
		r.Get("/contacts/{id}", rt.Contacts.Get)
	})
	return r
}
