// internal/domain/models/team.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Team is a roster of users. The owner is always a member.
//
// Tier and AverageRank are snapshots taken from the owner when the team is
// created; they are never recomputed afterward.
type Team struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TeamID      string             `bson:"team_id" json:"team_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	OwnerID     string             `bson:"owner_id" json:"owner_id"`
	Members     []string           `bson:"members" json:"members"` // user_ids, len <= MaxMembers
	MaxMembers  int                `bson:"max_members" json:"max_members"`
	Tier        string             `bson:"tier" json:"tier"`
	AverageRank string             `bson:"average_rank" json:"average_rank"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
