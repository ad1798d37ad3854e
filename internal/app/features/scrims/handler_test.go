package scrims_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	scrimsfeature "github.com/dalemusser/scrimhub/internal/app/features/scrims"
	scrimstore "github.com/dalemusser/scrimhub/internal/app/store/scrims"
	teamstore "github.com/dalemusser/scrimhub/internal/app/store/teams"
	"github.com/dalemusser/scrimhub/internal/domain/models"
	"github.com/dalemusser/scrimhub/internal/testutil"
	"go.uber.org/zap"
)

type env struct {
	handler *scrimsfeature.Handler
	scrims  *scrimstore.Store
	fix     *testutil.Fixtures
}

func newEnv(t *testing.T) env {
	t.Helper()
	db := testutil.SetupTestDB(t)
	scrims := scrimstore.New(db)
	teams := teamstore.New(db)
	return env{
		handler: scrimsfeature.NewHandler(scrims, teams, zap.NewNop()),
		scrims:  scrims,
		fix:     testutil.NewFixtures(t, db),
	}
}

func createBody(maps []string) map[string]any {
	return map[string]any{
		"title":          "Evening block",
		"description":    "two games",
		"maps":           maps,
		"max_rounds":     13,
		"num_games":      2,
		"scheduled_time": time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339),
	}
}

func TestCreateScrim(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := e.fix.CreateUser(ctx, "jett", "jett@example.com", "tier_2")
	team := e.fix.CreateTeam(ctx, "Phantom Five", &owner)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/create", createBody([]string{"Ascent", "Bind"}))
	rec := httptest.NewRecorder()
	e.handler.ServeCreate(rec, testutil.WithUser(req, &owner))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ScrimID string `json:"scrim_id"`
	}
	testutil.DecodeBody(t, rec, &resp)

	sc, err := e.scrims.GetByScrimID(ctx, resp.ScrimID)
	if err != nil {
		t.Fatalf("GetByScrimID failed: %v", err)
	}
	if sc.Status != "open" {
		t.Errorf("expected status open, got %q", sc.Status)
	}
	if sc.Tier != team.Tier || sc.TeamName != team.Name {
		t.Errorf("expected team snapshot %q/%q, got %q/%q", team.Tier, team.Name, sc.Tier, sc.TeamName)
	}
	if sc.MaxParticipants != 2 {
		t.Errorf("expected default max_participants 2, got %d", sc.MaxParticipants)
	}
}

func TestCreateScrimRequiresTeamAndOwnership(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// No team at all.
	loner := e.fix.CreateUser(ctx, "sova", "sova@example.com", "public")
	req := testutil.NewJSONRequest(t, http.MethodPost, "/create", createBody([]string{"Ascent"}))
	rec := httptest.NewRecorder()
	e.handler.ServeCreate(rec, testutil.WithUser(req, &loner))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for teamless user, got %d", rec.Code)
	}
	if got := testutil.ErrorDetail(t, rec); got != "You must be in a team to create scrims" {
		t.Errorf("wrong detail %q", got)
	}

	// A member who is not the owner.
	owner := e.fix.CreateUser(ctx, "omen", "omen@example.com", "public")
	team := e.fix.CreateTeam(ctx, "Smokes", &owner)
	member := e.fix.CreateUser(ctx, "raze", "raze@example.com", "public")
	member.TeamID = &team.TeamID

	req = testutil.NewJSONRequest(t, http.MethodPost, "/create", createBody([]string{"Ascent"}))
	rec = httptest.NewRecorder()
	e.handler.ServeCreate(rec, testutil.WithUser(req, &member))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", rec.Code)
	}
	if got := testutil.ErrorDetail(t, rec); got != "Only team owners can create scrims" {
		t.Errorf("wrong detail %q", got)
	}
}

func TestCreateScrimValidation(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := e.fix.CreateUser(ctx, "viper", "viper@example.com", "public")
	e.fix.CreateTeam(ctx, "Toxin", &owner)

	// Every unknown map is reported, in request order.
	req := testutil.NewJSONRequest(t, http.MethodPost, "/create", createBody([]string{"Ascent", "Nuke", "Dust2"}))
	rec := httptest.NewRecorder()
	e.handler.ServeCreate(rec, testutil.WithUser(req, &owner))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := testutil.ErrorDetail(t, rec); got != "Invalid maps: Nuke, Dust2" {
		t.Errorf("wrong detail %q", got)
	}

	// Rounds outside {13, 24}.
	body := createBody([]string{"Ascent"})
	body["max_rounds"] = 16
	req = testutil.NewJSONRequest(t, http.MethodPost, "/create", body)
	rec = httptest.NewRecorder()
	e.handler.ServeCreate(rec, testutil.WithUser(req, &owner))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := testutil.ErrorDetail(t, rec); got != "max_rounds must be 13 or 24" {
		t.Errorf("wrong detail %q", got)
	}
}

func TestListScrimsTierVisibility(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, tier := range []string{"public", "tier_3", "tier_2", "tier_1"} {
		owner := e.fix.CreateUser(ctx, "owner-"+tier, tier+"@example.com", tier)
		team := e.fix.CreateTeam(ctx, "Team "+tier, &owner)
		e.fix.CreateScrim(ctx, team, []string{"Ascent"})
	}

	cases := []struct {
		viewerTier string
		want       int
	}{
		{"public", 1},
		{"tier_3", 2},
		{"tier_2", 3},
		{"tier_1", 4},
	}
	for _, tc := range cases {
		t.Run(tc.viewerTier, func(t *testing.T) {
			viewer := e.fix.CreateUser(ctx, "viewer-"+tc.viewerTier, "viewer-"+tc.viewerTier+"@example.com", tc.viewerTier)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			e.handler.ServeList(rec, testutil.WithUser(req, &viewer))

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			var scrims []models.Scrim
			testutil.DecodeBody(t, rec, &scrims)
			if len(scrims) != tc.want {
				t.Errorf("viewer %s: expected %d visible scrims, got %d", tc.viewerTier, tc.want, len(scrims))
			}
		})
	}
}

func TestApply(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	poster := e.fix.CreateUser(ctx, "jett", "jett@example.com", "public")
	posterTeam := e.fix.CreateTeam(ctx, "Posters", &poster)
	scrim := e.fix.CreateScrim(ctx, posterTeam, []string{"Ascent", "Bind"})

	applicant := e.fix.CreateUser(ctx, "sova", "sova@example.com", "public")
	e.fix.CreateTeam(ctx, "Applicants", &applicant)

	apply := func(u *models.User) *httptest.ResponseRecorder {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/"+scrim.ScrimID+"/apply", map[string]any{
			"selected_maps":    []string{"Ascent"},
			"preferred_rounds": 13,
			"preferred_games":  1,
			"message":          "gg only",
		})
		req = testutil.WithChiURLParam(req, "scrimID", scrim.ScrimID)
		rec := httptest.NewRecorder()
		e.handler.ServeApply(rec, testutil.WithUser(req, u))
		return rec
	}

	rec := apply(&applicant)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	got, err := e.scrims.GetByScrimID(ctx, scrim.ScrimID)
	if err != nil {
		t.Fatalf("GetByScrimID failed: %v", err)
	}
	if len(got.Applications) != 1 {
		t.Fatalf("expected 1 application, got %d", len(got.Applications))
	}
	if got.Applications[0].Status != "pending" {
		t.Errorf("expected pending application, got %q", got.Applications[0].Status)
	}

	// Second application from the same team.
	rec = apply(&applicant)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate apply, got %d", rec.Code)
	}
	if gotDetail := testutil.ErrorDetail(t, rec); gotDetail != "Already applied to this scrim" {
		t.Errorf("wrong detail %q", gotDetail)
	}

	// The posting team cannot apply to itself.
	rec = apply(&poster)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for self apply, got %d", rec.Code)
	}
	if gotDetail := testutil.ErrorDetail(t, rec); gotDetail != "Cannot apply to your own scrim" {
		t.Errorf("wrong detail %q", gotDetail)
	}
}

func TestApplyMissingScrim(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	applicant := e.fix.CreateUser(ctx, "omen", "omen@example.com", "public")
	e.fix.CreateTeam(ctx, "Smokes", &applicant)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/missing/apply", map[string]any{})
	req = testutil.WithChiURLParam(req, "scrimID", "missing")
	rec := httptest.NewRecorder()
	e.handler.ServeApply(rec, testutil.WithUser(req, &applicant))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := testutil.ErrorDetail(t, rec); got != "Scrim not found" {
		t.Errorf("wrong detail %q", got)
	}
}
