package tieradmin

import (
	"github.com/dalemusser/scrimhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter for tier administration, mounted under
// /api/admin/tier-requests. Every endpoint requires the admin flag.
func Routes(h *Handler, verifier *auth.Verifier) chi.Router {
	r := chi.NewRouter()
	r.Use(verifier.RequireAdmin)
	r.Get("/", h.ServeList)
	r.Post("/{requestID}/approve", h.ServeApprove)
	r.Post("/{requestID}/reject", h.ServeReject)
	return r
}
