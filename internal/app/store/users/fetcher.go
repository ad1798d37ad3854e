package userstore

import (
	"context"

	"github.com/dalemusser/scrimhub/internal/app/system/auth"
	"github.com/dalemusser/scrimhub/internal/app/system/timeouts"
	"github.com/dalemusser/scrimhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fetcher implements auth.UserFetcher to load fresh user data on each
// authenticated request, so tier changes and admin grants apply without
// re-login.
type Fetcher struct {
	users *mongo.Collection
}

// NewFetcher creates a UserFetcher that queries the given database.
func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{users: db.Collection("users")}
}

// FetchUser retrieves a user by public id. A missing user maps to
// auth.ErrUserNotFound; any other store error is returned as-is so the
// middleware can tell an outage apart from a deleted account.
func (f *Fetcher) FetchUser(ctx context.Context, userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	var u models.User
	if err := f.users.FindOne(ctx, bson.M{"user_id": userID}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
