package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Comment is a reply to a Review.
type Comment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ReviewID   string             `bson:"reviewId" json:"reviewId"`
	UserID     string             `bson:"userId" json:"userId"`
	Content    string             `bson:"content" json:"content"`
	PostedDate string             `bson:"postedDate" json:"postedDate"`
}
