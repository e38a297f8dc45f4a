package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the Chi router
func NewRouter(h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(Logger)
	r.Use(CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/suburbs", h.ListSuburbs)
		r.Get("/suburbs/{key}", h.GetSuburb)
		r.Get("/recommend", h.Recommend)
		r.Get("/affordability", h.Affordability)
		r.Get("/amenities", h.Amenities)
		r.Get("/commute", h.Commute)
		r.Get("/directions", h.Directions)
		r.Get("/isochrone", h.Isochrone)
		r.Post("/overpass-poi", h.OverpassPOI)
		r.Post("/chat", h.Chat)
	})

	return r
}
