package teams

import (
	"context"
	"net/http"

	"github.com/dalemusser/scrimhub/internal/app/policy/tierpolicy"
	"github.com/dalemusser/scrimhub/internal/app/store/teams"
	"github.com/dalemusser/scrimhub/internal/app/store/users"
	"github.com/dalemusser/scrimhub/internal/app/system/auth"
	"github.com/dalemusser/scrimhub/internal/app/system/httpjson"
	"github.com/dalemusser/scrimhub/internal/app/system/sanitize"
	"github.com/dalemusser/scrimhub/internal/app/system/timeouts"
	"github.com/dalemusser/scrimhub/internal/domain/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultMaxMembers = 5

// Handler serves team creation and the caller's team view.
type Handler struct {
	teams *teamstore.Store
	users *userstore.Store
	log   *zap.Logger
}

// NewHandler creates the teams handler.
func NewHandler(teams *teamstore.Store, users *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{teams: teams, users: users, log: logger}
}

type createRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	MaxMembers  int    `json:"max_members"`
}

// ServeCreate handles POST /api/teams/create.
//
// Tier 1 and tier 2 users are barred from self-service creation (403), a
// user already on a team cannot create another (400), and team names are
// unique (400). The team's tier and average rank are snapshotted from the
// owner at this instant and never refreshed.
//
// The owner's team_id is set after the team insert; the two writes are not
// transactional, so a crash in between leaves a team whose owner does not
// point back at it.
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req createRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	if !tierpolicy.CanCreateTeam(tierpolicy.Parse(user.Tier)) {
		httpjson.Error(w, http.StatusForbidden, "Tier 1 and Tier 2 users cannot create teams")
		return
	}
	if user.TeamID != nil {
		httpjson.Error(w, http.StatusBadRequest, "You are already in a team")
		return
	}
	if req.Name == "" {
		httpjson.Error(w, http.StatusBadRequest, "Team name is required")
		return
	}
	if req.MaxMembers <= 0 {
		req.MaxMembers = defaultMaxMembers
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	team, err := h.teams.Create(ctx, models.Team{
		TeamID:      uuid.NewString(),
		Name:        req.Name,
		Description: sanitize.Text(req.Description),
		OwnerID:     user.UserID,
		Members:     []string{user.UserID},
		MaxMembers:  req.MaxMembers,
		Tier:        user.Tier,
		AverageRank: user.Rank,
	})
	switch err {
	case nil:
	case teamstore.ErrDuplicateName:
		httpjson.Error(w, http.StatusBadRequest, "Team name already exists")
		return
	default:
		h.log.Error("create team failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create team")
		return
	}

	if err := h.users.SetTeamID(ctx, user.UserID, team.TeamID); err != nil {
		h.log.Error("create team: setting owner team_id failed",
			zap.String("team_id", team.TeamID),
			zap.String("user_id", user.UserID),
			zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create team")
		return
	}

	h.log.Info("team created",
		zap.String("team_id", team.TeamID),
		zap.String("owner_id", user.UserID))

	httpjson.Respond(w, http.StatusOK, map[string]string{
		"message": "Team created successfully",
		"team_id": team.TeamID,
	})
}

type teamResponse struct {
	models.Team
	MembersDetails []models.User `json:"members_details"`
}

// ServeMyTeam handles GET /api/teams/my-team.
//
// 404 covers both "no team" and "team record missing"; the two cases are
// indistinguishable to the caller. Member profiles come back without
// password hashes.
func (h *Handler) ServeMyTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if user.TeamID == nil {
		httpjson.Error(w, http.StatusNotFound, "You are not in a team")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	team, err := h.teams.GetByTeamID(ctx, *user.TeamID)
	if err != nil {
		if err == teamstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Team not found")
			return
		}
		h.log.Error("my-team: team lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load team")
		return
	}

	members, err := h.users.GetManyByUserIDs(ctx, team.Members)
	if err != nil {
		h.log.Error("my-team: member lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load team")
		return
	}
	if members == nil {
		members = []models.User{}
	}

	httpjson.Respond(w, http.StatusOK, teamResponse{
		Team:           *team,
		MembersDetails: members,
	})
}
