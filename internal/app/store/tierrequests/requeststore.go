package tierrequeststore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/scrimhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c     *mongo.Collection
	users *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:     db.Collection("tier_requests"),
		users: db.Collection("users"),
	}
}

// ErrPendingExists is returned when the user already has a pending request.
var ErrPendingExists = errors.New("a pending tier upgrade request already exists")

// Create inserts a pending upgrade request, enforcing the one-pending-
// request-per-user invariant.
func (s *Store) Create(ctx context.Context, req models.TierUpgradeRequest) (models.TierUpgradeRequest, error) {
	if err := s.c.FindOne(ctx, bson.M{
		"user_id": req.UserID,
		"status":  "pending",
	}).Err(); err == nil {
		return models.TierUpgradeRequest{}, ErrPendingExists
	} else if err != mongo.ErrNoDocuments {
		return models.TierUpgradeRequest{}, err
	}

	req.Status = "pending"
	req.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, req); err != nil {
		return models.TierUpgradeRequest{}, err
	}
	return req, nil
}

// ListPending returns all pending requests in store-native order.
func (s *Store) ListPending(ctx context.Context) ([]models.TierUpgradeRequest, error) {
	cur, err := s.c.Find(ctx, bson.M{"status": "pending"})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var reqs []models.TierUpgradeRequest
	if err := cur.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// Approve moves the requesting user to the requested tier and marks the
// request approved. A missing request id is a silent no-op (zero documents
// mutated), matching Reject, so re-approving a consumed request succeeds
// without side effects.
func (s *Store) Approve(ctx context.Context, requestID string) error {
	var req models.TierUpgradeRequest
	if err := s.c.FindOne(ctx, bson.M{"request_id": requestID}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil
		}
		return err
	}

	if _, err := s.users.UpdateOne(ctx,
		bson.M{"user_id": req.UserID},
		bson.M{"$set": bson.M{"tier": req.RequestedTier}}); err != nil {
		return err
	}

	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx,
		bson.M{"request_id": requestID},
		bson.M{"$set": bson.M{"status": "approved", "processed_at": now}})
	return err
}

// Reject marks the request rejected. A missing request id is a silent
// no-op, same as Approve.
func (s *Store) Reject(ctx context.Context, requestID string) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx,
		bson.M{"request_id": requestID},
		bson.M{"$set": bson.M{"status": "rejected", "processed_at": now}})
	return err
}
