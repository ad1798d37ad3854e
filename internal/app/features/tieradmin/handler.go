package tieradmin

import (
	"context"
	"net/http"

	"github.com/dalemusser/scrimhub/internal/app/store/tierrequests"
	"github.com/dalemusser/scrimhub/internal/app/system/httpjson"
	"github.com/dalemusser/scrimhub/internal/app/system/timeouts"
	"github.com/dalemusser/scrimhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves the admin view of tier upgrade requests. Admin gating is
// done by the RequireAdmin middleware in routes.go.
type Handler struct {
	requests *tierrequeststore.Store
	log      *zap.Logger
}

// NewHandler creates the tier administration handler.
func NewHandler(requests *tierrequeststore.Store, logger *zap.Logger) *Handler {
	return &Handler{requests: requests, log: logger}
}

// ServeList handles GET /api/admin/tier-requests: all pending requests.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	reqs, err := h.requests.ListPending(ctx)
	if err != nil {
		h.log.Error("list tier requests failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load requests")
		return
	}
	if reqs == nil {
		reqs = []models.TierUpgradeRequest{}
	}

	httpjson.Respond(w, http.StatusOK, reqs)
}

// ServeApprove handles POST /api/admin/tier-requests/{requestID}/approve.
// Approving a missing or already-consumed request id mutates nothing and
// still returns success.
func (h *Handler) ServeApprove(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.requests.Approve(ctx, requestID); err != nil {
		h.log.Error("approve tier request failed",
			zap.String("request_id", requestID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to approve request")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{
		"message": "Tier request approved",
	})
}

// ServeReject handles POST /api/admin/tier-requests/{requestID}/reject.
// Same no-op contract as approve for a missing id.
func (h *Handler) ServeReject(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "requestID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.requests.Reject(ctx, requestID); err != nil {
		h.log.Error("reject tier request failed",
			zap.String("request_id", requestID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to reject request")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{
		"message": "Tier request rejected",
	})
}
