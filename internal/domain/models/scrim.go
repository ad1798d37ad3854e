// internal/domain/models/scrim.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scrim is a posted practice-match opportunity. TeamName and Tier are
// denormalized from the posting team at creation time.
type Scrim struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ScrimID         string             `bson:"scrim_id" json:"scrim_id"`
	TeamID          string             `bson:"team_id" json:"team_id"`
	TeamName        string             `bson:"team_name" json:"team_name"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Maps            []string           `bson:"maps" json:"maps"`
	MaxRounds       int                `bson:"max_rounds" json:"max_rounds"` // 13 or 24
	NumGames        int                `bson:"num_games" json:"num_games"`
	ScheduledTime   time.Time          `bson:"scheduled_time" json:"scheduled_time"`
	MaxParticipants int                `bson:"max_participants" json:"max_participants"`
	Applications    []Application      `bson:"applications" json:"applications"`
	Status          string             `bson:"status" json:"status"` // open | closed
	Tier            string             `bson:"tier" json:"tier"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// Application is a team's bid to participate in another team's scrim,
// embedded in the scrim document. A team gets at most one per scrim.
type Application struct {
	ApplicationID   string    `bson:"application_id" json:"application_id"`
	TeamID          string    `bson:"team_id" json:"team_id"`
	TeamName        string    `bson:"team_name" json:"team_name"`
	SelectedMaps    []string  `bson:"selected_maps" json:"selected_maps"`
	PreferredRounds int       `bson:"preferred_rounds" json:"preferred_rounds"`
	PreferredGames  int       `bson:"preferred_games" json:"preferred_games"`
	Message         string    `bson:"message" json:"message"`
	Status          string    `bson:"status" json:"status"` // pending
	AppliedAt       time.Time `bson:"applied_at" json:"applied_at"`
}
