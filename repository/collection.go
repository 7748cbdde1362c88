// Package repository implements the validate-then-persist pipeline for
// every entity. Each repository owns exactly one collection and performs
// a single store call per operation.
package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Seabass5831/CS-546-Project-Song-Review/catalog"
	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
)

// Collection is the narrow slice of the document store the repositories
// use. Keeping it an interface lets tests swap in an in-memory double.
type Collection interface {
	InsertOne(ctx context.Context, doc any) (primitive.ObjectID, error)
	FindOne(ctx context.Context, filter, out any) error
	Find(ctx context.Context, filter, out any, opts ...*options.FindOptions) error
	FindOneAndUpdate(ctx context.Context, filter, update, out any) error
	UpdateOne(ctx context.Context, filter, update any) (matched, modified int64, err error)
	DeleteOne(ctx context.Context, filter any) (int64, error)
	CountDocuments(ctx context.Context, filter any) (int64, error)
}

// mongoCollection adapts *mongo.Collection to Collection.
type mongoCollection struct {
	coll *mongo.Collection
}

// WrapCollection exposes a driver collection through the Collection
// boundary.
func WrapCollection(coll *mongo.Collection) Collection {
	return &mongoCollection{coll: coll}
}

func (m *mongoCollection) InsertOne(ctx context.Context, doc any) (primitive.ObjectID, error) {
	res, err := m.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

func (m *mongoCollection) FindOne(ctx context.Context, filter, out any) error {
	return m.coll.FindOne(ctx, filter).Decode(out)
}

func (m *mongoCollection) Find(ctx context.Context, filter, out any, opts ...*options.FindOptions) error {
	cursor, err := m.coll.Find(ctx, filter, opts...)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

func (m *mongoCollection) FindOneAndUpdate(ctx context.Context, filter, update, out any) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return m.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(out)
}

func (m *mongoCollection) UpdateOne(ctx context.Context, filter, update any) (int64, int64, error) {
	res, err := m.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return 0, 0, err
	}
	return res.MatchedCount, res.ModifiedCount, nil
}

func (m *mongoCollection) DeleteOne(ctx context.Context, filter any) (int64, error) {
	res, err := m.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *mongoCollection) CountDocuments(ctx context.Context, filter any) (int64, error) {
	return m.coll.CountDocuments(ctx, filter)
}

// wrapWriteErr translates driver unique-index violations into the
// duplicate error kind.
func wrapWriteErr(err error, entity string) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", models.ErrDuplicate, entity)
	}
	return err
}

// notFoundOnDecode maps the driver's no-documents sentinel onto the
// not-found error kind.
func notFoundOnDecode(err error, entity string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %s", models.ErrNotFound, entity)
	}
	return err
}

// Store bundles one repository per collection over a shared database
// handle.
type Store struct {
	Songs           *Songs
	Users           *Users
	Reviews         *Reviews
	Comments        *Comments
	Genres          *Genres
	Playlists       *Playlists
	Recommendations *Recommendations
}

// NewStore wires every repository against db. The catalog client feeds
// song search and genre lookups.
func NewStore(db *mongo.Database, cat catalog.Client) *Store {
	songs := WrapCollection(db.Collection("songs"))
	users := WrapCollection(db.Collection("users"))
	reviews := WrapCollection(db.Collection("reviews"))

	return &Store{
		Songs:           NewSongs(songs, cat),
		Users:           NewUsers(users),
		Reviews:         NewReviews(reviews, songs, users),
		Comments:        NewComments(WrapCollection(db.Collection("comments"))),
		Genres:          NewGenres(WrapCollection(db.Collection("genres"))),
		Playlists:       NewPlaylists(WrapCollection(db.Collection("playlists"))),
		Recommendations: NewRecommendations(WrapCollection(db.Collection("recommendations"))),
	}
}
