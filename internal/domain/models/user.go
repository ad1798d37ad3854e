// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered player.
//
// NOTE:
//   - UserID is the public identity (UUID string) used on the wire and in
//     cross-document references. The Mongo ObjectID stays internal.
//   - A user belongs to zero or one team; TeamID is nil until they join.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID           string             `bson:"user_id" json:"user_id"`
	Username         string             `bson:"username" json:"username"`
	Email            string             `bson:"email" json:"email"`
	PasswordHash     string             `bson:"password_hash" json:"-"`
	ValorantUsername string             `bson:"valorant_username" json:"valorant_username"`
	ValorantTag      string             `bson:"valorant_tag" json:"valorant_tag"`
	Tier             string             `bson:"tier" json:"tier"` // public | tier_3 | tier_2 | tier_1
	Rank             string             `bson:"rank" json:"rank"`
	TeamID           *string            `bson:"team_id" json:"team_id"`
	IsAdmin          bool               `bson:"is_admin" json:"is_admin"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}
