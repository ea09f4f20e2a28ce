package domain

import "time"

// TrainingLog records a training session. The referenced animal must be owned
// by the referenced user; this is checked once, at creation time.
type TrainingLog struct {
	ID               string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Date             time.Time `json:"date" bson:"date"`
	Description      string    `json:"description" bson:"description"`
	Hours            float64   `json:"hours" bson:"hours"`
	Animal           string    `json:"animal" bson:"animal"`
	User             string    `json:"user" bson:"user"`
	TrainingLogVideo string    `json:"trainingLogVideo,omitempty" bson:"trainingLogVideo,omitempty"`
}
