package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review references one Song and one User by hex id. Sentiment is a free
// label supplied by the client ("positive", "negative", ...), not computed
// here.
type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	SongID     string             `bson:"songId" json:"songId"`
	UserID     string             `bson:"userId" json:"userId"`
	Text       string             `bson:"text" json:"text"`
	Sentiment  string             `bson:"sentiment" json:"sentiment"`
	Stars      float64            `bson:"stars" json:"stars"`
	PostedDate string             `bson:"postedDate" json:"postedDate"`
}
