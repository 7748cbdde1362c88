package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Recommendation is a per-user set of suggested song ids. One set per
// user by convention; the userId field is how lookups are keyed.
type Recommendation struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID           string             `bson:"userId" json:"userId"`
	RecommendedSongs []string           `bson:"recommendedSongs" json:"recommendedSongs"`
}
