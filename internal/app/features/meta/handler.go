package meta

import (
	"net/http"

	"github.com/dalemusser/scrimhub/internal/app/policy/tierpolicy"
	"github.com/dalemusser/scrimhub/internal/app/system/auth"
	"github.com/dalemusser/scrimhub/internal/app/system/httpjson"
	"github.com/dalemusser/scrimhub/internal/domain/valorant"
)

// Handler serves the fixed game vocabularies.
type Handler struct{}

// NewHandler creates the meta handler.
func NewHandler() *Handler {
	return &Handler{}
}

// ServeMaps handles GET /api/maps. Open endpoint.
func (h *Handler) ServeMaps(w http.ResponseWriter, r *http.Request) {
	httpjson.Respond(w, http.StatusOK, map[string][]string{"maps": valorant.Maps})
}

// ServeRanks handles GET /api/ranks. The ladder depends on the viewer's
// tier: the full public ladder for public users, the upper bracket for
// restricted tiers.
func (h *Handler) ServeRanks(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	ranks := tierpolicy.RankVocabularyFor(tierpolicy.Parse(user.Tier))
	httpjson.Respond(w, http.StatusOK, map[string][]string{"ranks": ranks})
}
