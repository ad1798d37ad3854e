// internal/domain/models/tierrequest.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TierUpgradeRequest is a user's petition to move from the public bracket
// into a restricted tier. A user has at most one pending request at a time.
type TierUpgradeRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	RequestID     string             `bson:"request_id" json:"request_id"`
	UserID        string             `bson:"user_id" json:"user_id"`
	Username      string             `bson:"username" json:"username"`
	CurrentTier   string             `bson:"current_tier" json:"current_tier"`
	RequestedTier string             `bson:"requested_tier" json:"requested_tier"`
	Status        string             `bson:"status" json:"status"` // pending | approved | rejected
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	ProcessedAt   *time.Time         `bson:"processed_at,omitempty" json:"processed_at,omitempty"`
}
