package teamstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/scrimhub/internal/app/system/normalize"
	"github.com/dalemusser/scrimhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("teams")}
}

var (
	// ErrDuplicateName is returned when a team with the same name already exists.
	ErrDuplicateName = errors.New("a team with this name already exists")
	// ErrNotFound is returned when a lookup matches no team.
	ErrNotFound = errors.New("team not found")
)

// Create inserts a new team. The caller supplies the owner-derived
// snapshots (tier, average rank) and the initial member list; the owner
// must already be in Members.
func (s *Store) Create(ctx context.Context, t models.Team) (models.Team, error) {
	t.Name = normalize.Name(t.Name)
	t.CreatedAt = time.Now().UTC()

	if err := s.c.FindOne(ctx, bson.M{"name": t.Name}).Err(); err == nil {
		return models.Team{}, ErrDuplicateName
	} else if err != mongo.ErrNoDocuments {
		return models.Team{}, err
	}

	if _, err := s.c.InsertOne(ctx, t); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Team{}, ErrDuplicateName
		}
		return models.Team{}, err
	}
	return t, nil
}

// GetByTeamID loads a team by public id. Returns ErrNotFound if absent.
func (s *Store) GetByTeamID(ctx context.Context, teamID string) (*models.Team, error) {
	var t models.Team
	if err := s.c.FindOne(ctx, bson.M{"team_id": teamID}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}
