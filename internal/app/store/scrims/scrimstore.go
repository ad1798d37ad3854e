package scrimstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/scrimhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("scrims")}
}

var (
	// ErrNotFound is returned when a lookup matches no scrim.
	ErrNotFound = errors.New("scrim not found")
	// ErrAlreadyApplied is returned when the applying team already has an
	// application on the scrim.
	ErrAlreadyApplied = errors.New("team has already applied to this scrim")
)

// Create inserts a new scrim posting.
func (s *Store) Create(ctx context.Context, sc models.Scrim) (models.Scrim, error) {
	sc.CreatedAt = time.Now().UTC()
	if sc.Applications == nil {
		sc.Applications = []models.Application{}
	}
	if _, err := s.c.InsertOne(ctx, sc); err != nil {
		return models.Scrim{}, err
	}
	return sc, nil
}

// GetByScrimID loads a scrim by public id. Returns ErrNotFound if absent.
func (s *Store) GetByScrimID(ctx context.Context, scrimID string) (*models.Scrim, error) {
	var sc models.Scrim
	if err := s.c.FindOne(ctx, bson.M{"scrim_id": scrimID}).Decode(&sc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &sc, nil
}

// ListOpen returns every scrim with status "open" in store-native order.
// Tier filtering is the caller's concern.
func (s *Store) ListOpen(ctx context.Context) ([]models.Scrim, error) {
	cur, err := s.c.Find(ctx, bson.M{"status": "open"})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var scrims []models.Scrim
	if err := cur.All(ctx, &scrims); err != nil {
		return nil, err
	}
	return scrims, nil
}

// AppendApplication pushes an application onto the scrim. The filter
// excludes scrims that already hold an application from the same team, so
// the dedup invariant survives concurrent applies; a zero-match update on
// an existing scrim means the team already applied.
func (s *Store) AppendApplication(ctx context.Context, scrimID string, app models.Application) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"scrim_id":             scrimID,
			"applications.team_id": bson.M{"$ne": app.TeamID},
		},
		bson.M{"$push": bson.M{"applications": app}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the scrim vanished or the team already applied.
		if err := s.c.FindOne(ctx, bson.M{"scrim_id": scrimID}).Err(); err == mongo.ErrNoDocuments {
			return ErrNotFound
		} else if err != nil {
			return err
		}
		return ErrAlreadyApplied
	}
	return nil
}
