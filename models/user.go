package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an account document. Friends, ListenedSongs and ReviewsPosted
// hold ids of other documents as hex strings; only _id is a native ObjectID.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username       string             `bson:"username" json:"username"`
	FirstName      string             `bson:"firstName" json:"firstName"`
	LastName       string             `bson:"lastName" json:"lastName"`
	Email          string             `bson:"email" json:"email"`
	HashedPassword string             `bson:"hashedPassword" json:"-"`
	FavoriteGenres []string           `bson:"favoriteGenres" json:"favoriteGenres"`
	ListenedSongs  []string           `bson:"listenedSongs" json:"listenedSongs"`
	ReviewsPosted  []string           `bson:"reviewsPosted" json:"reviewsPosted"`
	Friends        []string           `bson:"friends" json:"friends"`
}
