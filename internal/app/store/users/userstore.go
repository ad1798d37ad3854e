package userstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dalemusser/scrimhub/internal/app/system/normalize"
	"github.com/dalemusser/scrimhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrDuplicateUsername is returned when attempting to create a user with a username that already exists.
	ErrDuplicateUsername = errors.New("a user with this username already exists")
	// ErrNotFound is returned when a lookup matches no user.
	ErrNotFound = errors.New("user not found")
)

// Create inserts a new user after normalizing identity fields. Email and
// username uniqueness are checked independently, email first, so callers
// can report which one collided. The unique indexes back the checks up
// against concurrent inserts.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.Email = normalize.Email(u.Email)
	u.Username = normalize.Username(u.Username)
	u.CreatedAt = time.Now().UTC()

	if err := s.c.FindOne(ctx, bson.M{"email": u.Email}).Err(); err == nil {
		return models.User{}, ErrDuplicateEmail
	} else if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	if err := s.c.FindOne(ctx, bson.M{"username": u.Username}).Err(); err == nil {
		return models.User{}, ErrDuplicateUsername
	} else if err != mongo.ErrNoDocuments {
		return models.User{}, err
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, dupError(err)
		}
		return models.User{}, err
	}
	return u, nil
}

// dupError maps a duplicate-key insert error to the sentinel for the index
// that collided. This only fires when a concurrent insert slips between the
// pre-insert checks and the insert itself.
func dupError(err error) error {
	if strings.Contains(err.Error(), "uniq_users_username") {
		return ErrDuplicateUsername
	}
	return ErrDuplicateEmail
}

// GetByUserID loads a user by public id. Returns ErrNotFound if absent.
func (s *Store) GetByUserID(ctx context.Context, userID string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"user_id": userID}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email. Returns ErrNotFound if absent.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetManyByUserIDs loads member profiles for the given user ids, with the
// password hash projected away.
func (s *Store) GetManyByUserIDs(ctx context.Context, userIDs []string) ([]models.User, error) {
	proj := options.Find().SetProjection(bson.M{"password_hash": 0})
	cur, err := s.c.Find(ctx, bson.M{"user_id": bson.M{"$in": userIDs}}, proj)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetTeamID sets the user's team reference.
func (s *Store) SetTeamID(ctx context.Context, userID, teamID string) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"team_id": teamID}})
	return err
}

// SetTier updates the user's access tier.
func (s *Store) SetTier(ctx context.Context, userID, tier string) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"tier": tier}})
	return err
}

// PromoteAdminByEmail grants the admin flag to the user with the given
// email. Returns the number of documents matched (0 or 1).
func (s *Store) PromoteAdminByEmail(ctx context.Context, email string) (int64, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"email": normalize.Email(email)},
		bson.M{"$set": bson.M{"is_admin": true}})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}
