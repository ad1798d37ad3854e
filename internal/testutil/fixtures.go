package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/scrimhub/internal/domain/models"
	"github.com/dalemusser/scrimhub/internal/domain/valorant"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plaintext behind every fixture user's hash.
const TestPassword = "secret123"

// testPasswordHash is computed once; bcrypt at test-friendly cost.
var testPasswordHash = func() string {
	h, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}()

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user at the given tier with no team.
func (f *Fixtures) CreateUser(ctx context.Context, username, email, tier string) models.User {
	f.t.Helper()

	user := models.User{
		UserID:           uuid.NewString(),
		Username:         username,
		Email:            email,
		PasswordHash:     testPasswordHash,
		ValorantUsername: username,
		ValorantTag:      "TST",
		Tier:             tier,
		Rank:             valorant.DefaultRank(),
		CreatedAt:        time.Now().UTC(),
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateAdmin creates a test user with the admin flag set.
func (f *Fixtures) CreateAdmin(ctx context.Context, username, email string) models.User {
	f.t.Helper()

	user := f.CreateUser(ctx, username, email, "public")
	if _, err := f.db.Collection("users").UpdateOne(ctx,
		bson.M{"user_id": user.UserID},
		bson.M{"$set": bson.M{"is_admin": true}}); err != nil {
		f.t.Fatalf("failed to promote test admin: %v", err)
	}
	user.IsAdmin = true
	return user
}

// CreateTeam creates a test team owned by owner and points the owner's
// team_id at it. The returned owner copy carries the new team id.
func (f *Fixtures) CreateTeam(ctx context.Context, name string, owner *models.User) models.Team {
	f.t.Helper()

	team := models.Team{
		TeamID:      uuid.NewString(),
		Name:        name,
		Description: "Test team",
		OwnerID:     owner.UserID,
		Members:     []string{owner.UserID},
		MaxMembers:  5,
		Tier:        owner.Tier,
		AverageRank: owner.Rank,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := f.db.Collection("teams").InsertOne(ctx, team); err != nil {
		f.t.Fatalf("failed to create test team: %v", err)
	}

	if _, err := f.db.Collection("users").UpdateOne(ctx,
		bson.M{"user_id": owner.UserID},
		bson.M{"$set": bson.M{"team_id": team.TeamID}}); err != nil {
		f.t.Fatalf("failed to set owner team_id: %v", err)
	}
	owner.TeamID = &team.TeamID

	return team
}

// CreateScrim creates an open test scrim posted by the given team.
func (f *Fixtures) CreateScrim(ctx context.Context, team models.Team, maps []string) models.Scrim {
	f.t.Helper()

	scrim := models.Scrim{
		ScrimID:         uuid.NewString(),
		TeamID:          team.TeamID,
		TeamName:        team.Name,
		Title:           "Practice block",
		Description:     "Test scrim",
		Maps:            maps,
		MaxRounds:       13,
		NumGames:        2,
		ScheduledTime:   time.Now().UTC().Add(24 * time.Hour),
		MaxParticipants: 2,
		Applications:    []models.Application{},
		Status:          "open",
		Tier:            team.Tier,
		CreatedAt:       time.Now().UTC(),
	}

	if _, err := f.db.Collection("scrims").InsertOne(ctx, scrim); err != nil {
		f.t.Fatalf("failed to create test scrim: %v", err)
	}
	return scrim
}

// CreateTierRequest creates a pending upgrade request for the user.
func (f *Fixtures) CreateTierRequest(ctx context.Context, user models.User, requestedTier string) models.TierUpgradeRequest {
	f.t.Helper()

	req := models.TierUpgradeRequest{
		RequestID:     uuid.NewString(),
		UserID:        user.UserID,
		Username:      user.Username,
		CurrentTier:   user.Tier,
		RequestedTier: requestedTier,
		Status:        "pending",
		CreatedAt:     time.Now().UTC(),
	}

	if _, err := f.db.Collection("tier_requests").InsertOne(ctx, req); err != nil {
		f.t.Fatalf("failed to create test tier request: %v", err)
	}
	return req
}
