package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Playlist belongs to one user. SongIDs entries are not checked for
// existence; a playlist may reference songs that were later removed.
type Playlist struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID  string             `bson:"userId" json:"userId"`
	Name    string             `bson:"name" json:"name"`
	SongIDs []string           `bson:"songIds" json:"songIds"`
}
