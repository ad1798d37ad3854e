package scrimstore_test

import (
	"errors"
	"testing"
	"time"

	scrimstore "github.com/dalemusser/scrimhub/internal/app/store/scrims"
	"github.com/dalemusser/scrimhub/internal/domain/models"
	"github.com/dalemusser/scrimhub/internal/testutil"
	"github.com/google/uuid"
)

func newScrim(teamID, status string) models.Scrim {
	return models.Scrim{
		ScrimID:         uuid.NewString(),
		TeamID:          teamID,
		TeamName:        "Team " + teamID,
		Title:           "Evening block",
		Maps:            []string{"Ascent", "Bind"},
		MaxRounds:       13,
		NumGames:        2,
		ScheduledTime:   time.Now().UTC().Add(48 * time.Hour),
		MaxParticipants: 2,
		Status:          status,
		Tier:            "public",
	}
}

func newApplication(teamID string) models.Application {
	return models.Application{
		ApplicationID:   uuid.NewString(),
		TeamID:          teamID,
		TeamName:        "Team " + teamID,
		SelectedMaps:    []string{"Ascent"},
		PreferredRounds: 13,
		PreferredGames:  1,
		Status:          "pending",
		AppliedAt:       time.Now().UTC(),
	}
}

func TestCreateDefaultsApplications(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := scrimstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, newScrim("team-a", "open"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetByScrimID(ctx, created.ScrimID)
	if err != nil {
		t.Fatalf("GetByScrimID failed: %v", err)
	}
	if got.Applications == nil {
		t.Errorf("expected applications to decode as empty slice")
	}
	if len(got.Applications) != 0 {
		t.Errorf("expected no applications, got %d", len(got.Applications))
	}
}

func TestListOpenFiltersStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := scrimstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	open, err := store.Create(ctx, newScrim("team-a", "open"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, newScrim("team-b", "closed")); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	scrims, err := store.ListOpen(ctx)
	if err != nil {
		t.Fatalf("ListOpen failed: %v", err)
	}
	if len(scrims) != 1 {
		t.Fatalf("expected 1 open scrim, got %d", len(scrims))
	}
	if scrims[0].ScrimID != open.ScrimID {
		t.Errorf("wrong scrim returned")
	}
}

func TestAppendApplicationDedup(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := scrimstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	sc, err := store.Create(ctx, newScrim("team-a", "open"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.AppendApplication(ctx, sc.ScrimID, newApplication("team-b")); err != nil {
		t.Fatalf("first AppendApplication failed: %v", err)
	}

	// A second application from the same team is rejected even with a
	// fresh application id.
	err = store.AppendApplication(ctx, sc.ScrimID, newApplication("team-b"))
	if !errors.Is(err, scrimstore.ErrAlreadyApplied) {
		t.Errorf("expected ErrAlreadyApplied, got %v", err)
	}

	// A different team can still apply.
	if err := store.AppendApplication(ctx, sc.ScrimID, newApplication("team-c")); err != nil {
		t.Fatalf("AppendApplication from second team failed: %v", err)
	}

	got, err := store.GetByScrimID(ctx, sc.ScrimID)
	if err != nil {
		t.Fatalf("GetByScrimID failed: %v", err)
	}
	if len(got.Applications) != 2 {
		t.Errorf("expected 2 applications, got %d", len(got.Applications))
	}
}

func TestAppendApplicationMissingScrim(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := scrimstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.AppendApplication(ctx, "missing", newApplication("team-b"))
	if !errors.Is(err, scrimstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
