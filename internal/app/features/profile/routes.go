package profile

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for the current-user endpoints,
// mounted under /api/user behind the auth middleware.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/profile", h.ServeProfile)
	r.Post("/request-tier-upgrade", h.ServeRequestUpgrade)
	return r
}
