package scrims

import "github.com/go-chi/chi/v5"

// Routes returns the subrouter for scrim endpoints,
// mounted under /api/scrims behind the auth middleware.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/create", h.ServeCreate)
	r.Get("/", h.ServeList)
	r.Post("/{scrimID}/apply", h.ServeApply)
	return r
}
