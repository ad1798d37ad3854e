package profile

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dalemusser/scrimhub/internal/app/store/teams"
	"github.com/dalemusser/scrimhub/internal/app/store/tierrequests"
	"github.com/dalemusser/scrimhub/internal/app/system/auth"
	"github.com/dalemusser/scrimhub/internal/app/system/httpjson"
	"github.com/dalemusser/scrimhub/internal/app/system/timeouts"
	"github.com/dalemusser/scrimhub/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves the current user's profile and tier upgrade requests.
type Handler struct {
	teams    *teamstore.Store
	requests *tierrequeststore.Store
	log      *zap.Logger
}

// NewHandler creates the profile handler.
func NewHandler(teams *teamstore.Store, requests *tierrequeststore.Store, logger *zap.Logger) *Handler {
	return &Handler{teams: teams, requests: requests, log: logger}
}

type profileResponse struct {
	UserID           string       `json:"user_id"`
	Username         string       `json:"username"`
	Email            string       `json:"email"`
	Tier             string       `json:"tier"`
	Rank             string       `json:"rank"`
	ValorantUsername string       `json:"valorant_username"`
	ValorantTag      string       `json:"valorant_tag"`
	Team             *models.Team `json:"team"`
	IsAdmin          bool         `json:"is_admin"`
}

// ServeProfile handles GET /api/user/profile. The team is resolved when
// the user has one; a dangling team reference yields a null team rather
// than an error.
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	var team *models.Team
	if user.TeamID != nil {
		t, err := h.teams.GetByTeamID(ctx, *user.TeamID)
		if err != nil && err != teamstore.ErrNotFound {
			h.log.Error("profile: team lookup failed", zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "Failed to load profile")
			return
		}
		team = t
	}

	httpjson.Respond(w, http.StatusOK, profileResponse{
		UserID:           user.UserID,
		Username:         user.Username,
		Email:            user.Email,
		Tier:             user.Tier,
		Rank:             user.Rank,
		ValorantUsername: user.ValorantUsername,
		ValorantTag:      user.ValorantTag,
		Team:             team,
		IsAdmin:          user.IsAdmin,
	})
}

type upgradeRequest struct {
	RequestedTier int `json:"requested_tier"`
}

// ServeRequestUpgrade handles POST /api/user/request-tier-upgrade.
//
// Only public-tier users may request an upgrade, the target must be in
// 1..3, and a user can hold at most one pending request.
func (h *Handler) ServeRequestUpgrade(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req upgradeRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	if req.RequestedTier < 1 || req.RequestedTier > 3 {
		httpjson.Error(w, http.StatusBadRequest, "Tier must be between 1 and 3")
		return
	}
	// Raw string match, not tierpolicy.Parse: Parse folds unknown stored
	// tiers into public, but only a literal "public" user is eligible here.
	if user.Tier != "public" {
		httpjson.Error(w, http.StatusBadRequest, "Only public users can request tier upgrades")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	_, err := h.requests.Create(ctx, models.TierUpgradeRequest{
		RequestID:     uuid.NewString(),
		UserID:        user.UserID,
		Username:      user.Username,
		CurrentTier:   user.Tier,
		RequestedTier: fmt.Sprintf("tier_%d", req.RequestedTier),
	})
	switch err {
	case nil:
	case tierrequeststore.ErrPendingExists:
		httpjson.Error(w, http.StatusBadRequest, "You already have a pending tier upgrade request")
		return
	default:
		h.log.Error("tier upgrade request failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to submit request")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{
		"message": "Tier upgrade request submitted successfully",
	})
}
