package scrims

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/scrimhub/internal/app/policy/tierpolicy"
	"github.com/dalemusser/scrimhub/internal/app/store/scrims"
	"github.com/dalemusser/scrimhub/internal/app/store/teams"
	"github.com/dalemusser/scrimhub/internal/app/system/auth"
	"github.com/dalemusser/scrimhub/internal/app/system/httpjson"
	"github.com/dalemusser/scrimhub/internal/app/system/sanitize"
	"github.com/dalemusser/scrimhub/internal/app/system/timeouts"
	"github.com/dalemusser/scrimhub/internal/domain/models"
	"github.com/dalemusser/scrimhub/internal/domain/valorant"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler serves scrim posting, listing, and applications.
type Handler struct {
	scrims *scrimstore.Store
	teams  *teamstore.Store
	log    *zap.Logger
}

// NewHandler creates the scrims handler.
func NewHandler(scrims *scrimstore.Store, teams *teamstore.Store, logger *zap.Logger) *Handler {
	return &Handler{scrims: scrims, teams: teams, log: logger}
}

type createRequest struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Maps            []string  `json:"maps"`
	MaxRounds       int       `json:"max_rounds"` // 13 or 24
	NumGames        int       `json:"num_games"`
	ScheduledTime   time.Time `json:"scheduled_time"`
	MaxParticipants int       `json:"max_participants"`
}

// ServeCreate handles POST /api/scrims/create.
//
// Only the owner of a team may post. Map validation reports every unknown
// map in the request, not just the first. The team's name and tier are
// snapshotted onto the scrim.
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

	if user.TeamID == nil {
		httpjson.Error(w, http.StatusBadRequest, "You must be in a team to create scrims")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	team, err := h.teams.GetByTeamID(ctx, *user.TeamID)
	if err != nil {
		if err == teamstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Team not found")
			return
		}
		h.log.Error("create scrim: team lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create scrim")
		return
	}
	if team.OwnerID != user.UserID {
		httpjson.Error(w, http.StatusForbidden, "Only team owners can create scrims")
		return
	}

	if bad := valorant.InvalidMaps(req.Maps); len(bad) > 0 {
		httpjson.Error(w, http.StatusBadRequest, "Invalid maps: "+strings.Join(bad, ", "))
		return
	}
	if req.MaxRounds != 13 && req.MaxRounds != 24 {
		httpjson.Error(w, http.StatusBadRequest, "max_rounds must be 13 or 24")
		return
	}

	if req.MaxParticipants <= 0 {
		req.MaxParticipants = 2
	}

	scrim, err := h.scrims.Create(ctx, models.Scrim{
		ScrimID:         uuid.NewString(),
		TeamID:          team.TeamID,
		TeamName:        team.Name,
		Title:           req.Title,
		Description:     sanitize.Text(req.Description),
		Maps:            req.Maps,
		MaxRounds:       req.MaxRounds,
		NumGames:        req.NumGames,
		ScheduledTime:   req.ScheduledTime,
		MaxParticipants: req.MaxParticipants,
		Status:          "open",
		Tier:            team.Tier,
	})
	if err != nil {
		h.log.Error("create scrim failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to create scrim")
		return
	}

	h.log.Info("scrim created",
		zap.String("scrim_id", scrim.ScrimID),
		zap.String("team_id", team.TeamID))

	httpjson.Respond(w, http.StatusOK, map[string]string{
		"message":  "Scrim created successfully",
		"scrim_id": scrim.ScrimID,
	})
}

// ServeList handles GET /api/scrims: every open scrim the viewer's tier is
// allowed to see, in store-native order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	open, err := h.scrims.ListOpen(ctx)
	if err != nil {
		h.log.Error("list scrims failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to load scrims")
		return
	}

	viewerTier := tierpolicy.Parse(user.Tier)
	visible := []models.Scrim{}
	for _, sc := range open {
		if tierpolicy.CanSeeTier(viewerTier, tierpolicy.Parse(sc.Tier)) {
			visible = append(visible, sc)
		}
	}

	httpjson.Respond(w, http.StatusOK, visible)
}

type applyRequest struct {
	SelectedMaps    []string `json:"selected_maps"`
	PreferredRounds int      `json:"preferred_rounds"`
	PreferredGames  int      `json:"preferred_games"`
	Message         string   `json:"message"`
}

// ServeApply handles POST /api/scrims/{scrimID}/apply.
//
// A team cannot apply to its own scrim, and gets at most one application
// per scrim. The duplicate check is a scan over the embedded applications
// by team id, with the store's guarded push backing it up under races.
func (h *Handler) ServeApply(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	scrimID := chi.URLParam(r, "scrimID")

	var req applyRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	if user.TeamID == nil {
		httpjson.Error(w, http.StatusBadRequest, "You must be in a team to apply to scrims")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	scrim, err := h.scrims.GetByScrimID(ctx, scrimID)
	if err != nil {
		if err == scrimstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Scrim not found")
			return
		}
		h.log.Error("apply: scrim lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to apply")
		return
	}

	if scrim.TeamID == *user.TeamID {
		httpjson.Error(w, http.StatusBadRequest, "Cannot apply to your own scrim")
		return
	}
	for _, app := range scrim.Applications {
		if app.TeamID == *user.TeamID {
			httpjson.Error(w, http.StatusBadRequest, "Already applied to this scrim")
			return
		}
	}

	team, err := h.teams.GetByTeamID(ctx, *user.TeamID)
	if err != nil {
		if err == teamstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Team not found")
			return
		}
		h.log.Error("apply: team lookup failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to apply")
		return
	}

	err = h.scrims.AppendApplication(ctx, scrimID, models.Application{
		ApplicationID:   uuid.NewString(),
		TeamID:          team.TeamID,
		TeamName:        team.Name,
		SelectedMaps:    req.SelectedMaps,
		PreferredRounds: req.PreferredRounds,
		PreferredGames:  req.PreferredGames,
		Message:         sanitize.Text(req.Message),
		Status:          "pending",
		AppliedAt:       time.Now().UTC(),
	})
	switch err {
	case nil:
	case scrimstore.ErrAlreadyApplied:
		httpjson.Error(w, http.StatusBadRequest, "Already applied to this scrim")
		return
	case scrimstore.ErrNotFound:
		httpjson.Error(w, http.StatusNotFound, "Scrim not found")
		return
	default:
		h.log.Error("apply: append failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Failed to apply")
		return
	}

	httpjson.Respond(w, http.StatusOK, map[string]string{
		"message": "Application submitted successfully",
	})
}
