package authapi

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for the open auth endpoints,
// mounted under /api/auth.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/register", h.ServeRegister)
	r.Post("/login", h.ServeLogin)
	return r
}
