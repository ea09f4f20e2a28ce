package domain

import "time"

// Animal belongs to exactly one user. HoursTrained only ever grows: it is
// incremented by the hours of each accepted training log.
type Animal struct {
	ID             string     `json:"_id,omitempty" bson:"_id,omitempty"`
	Name           string     `json:"name" bson:"name"`
	HoursTrained   float64    `json:"hoursTrained" bson:"hoursTrained"`
	Owner          string     `json:"owner" bson:"owner"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`
	ProfilePicture string     `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`
}
