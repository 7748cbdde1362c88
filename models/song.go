package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Song is a catalog entry created from Spotify metadata or user input.
// ReleaseDate keeps the YYYY-MM-DD string form it was validated in.
type Song struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Artist      string             `bson:"artist" json:"artist"`
	Album       string             `bson:"album" json:"album"`
	ReleaseDate string             `bson:"releaseDate" json:"releaseDate"`
	Genre       []string           `bson:"genre" json:"genre"`
	Reviews     []string           `bson:"reviews" json:"reviews"`
}

// SongRef is the id/title projection returned by song listings.
type SongRef struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Title string             `bson:"title" json:"title"`
}
