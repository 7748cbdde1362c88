package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Genre names are unique across the collection.
type Genre struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
}
