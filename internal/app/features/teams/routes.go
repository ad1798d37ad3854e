package teams

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for team endpoints,
// mounted under /api/teams behind the auth middleware.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/create", h.ServeCreate)
	r.Get("/my-team", h.ServeMyTeam)
	return r
}
