package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
	"github.com/Seabass5831/CS-546-Project-Song-Review/validation"
)

// Genres owns the genres collection. Name uniqueness comes from the
// collection's unique index.
type Genres struct {
	coll Collection
}

func NewGenres(coll Collection) *Genres {
	return &Genres{coll: coll}
}

// Create inserts a genre.
func (g *Genres) Create(ctx context.Context, name, description string) (*models.Genre, error) {
	if err := validation.RequireAll(name, description); err != nil {
		return nil, err
	}

	name, err := validation.CheckString(name, "name")
	if err != nil {
		return nil, err
	}
	description, err = validation.CheckString(description, "description")
	if err != nil {
		return nil, err
	}

	genre := models.Genre{Name: name, Description: description}
	id, err := g.coll.InsertOne(ctx, genre)
	if err != nil {
		return nil, wrapWriteErr(err, fmt.Sprintf("genre %q", name))
	}
	genre.ID = id
	return &genre, nil
}

// GetAll returns every genre.
func (g *Genres) GetAll(ctx context.Context) ([]models.Genre, error) {
	genres := []models.Genre{}
	if err := g.coll.Find(ctx, bson.M{}, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

// Get fetches one genre by id.
func (g *Genres) Get(ctx context.Context, id string) (*models.Genre, error) {
	if err := validation.RequireAll(id); err != nil {
		return nil, err
	}
	id, err := validation.CheckID(id, "id")
	if err != nil {
		return nil, err
	}

	var genre models.Genre
	if err := g.coll.FindOne(ctx, bson.M{"_id": oid(id)}, &genre); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("genre %s", id))
	}
	return &genre, nil
}

// GetByName fetches one genre by its unique name.
func (g *Genres) GetByName(ctx context.Context, name string) (*models.Genre, error) {
	if err := validation.RequireAll(name); err != nil {
		return nil, err
	}
	name, err := validation.CheckString(name, "name")
	if err != nil {
		return nil, err
	}

	var genre models.Genre
	if err := g.coll.FindOne(ctx, bson.M{"name": name}, &genre); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("genre %q", name))
	}
	return &genre, nil
}

// Search matches keyword case-insensitively against genre names and
// descriptions.
func (g *Genres) Search(ctx context.Context, keyword string) ([]models.Genre, error) {
	if err := validation.RequireAll(keyword); err != nil {
		return nil, err
	}
	keyword, err := validation.CheckString(keyword, "keyword")
	if err != nil {
		return nil, err
	}

	pattern := primitive.Regex{Pattern: keyword, Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"description": pattern},
	}}

	genres := []models.Genre{}
	if err := g.coll.Find(ctx, filter, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

// Update replaces a genre's name and description.
func (g *Genres) Update(ctx context.Context, id, name, description string) (*models.Genre, error) {
	if err := validation.RequireAll(id, name, description); err != nil {
		return nil, err
	}

	id, err := validation.CheckID(id, "id")
	if err != nil {
		return nil, err
	}
	name, err = validation.CheckString(name, "name")
	if err != nil {
		return nil, err
	}
	description, err = validation.CheckString(description, "description")
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"name": name, "description": description}}

	var genre models.Genre
	if err := g.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid(id)}, update, &genre); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("genre %s", id))
	}
	return &genre, nil
}

// Remove deletes one genre.
func (g *Genres) Remove(ctx context.Context, id string) error {
	if err := validation.RequireAll(id); err != nil {
		return err
	}
	id, err := validation.CheckID(id, "id")
	if err != nil {
		return err
	}

	deleted, err := g.coll.DeleteOne(ctx, bson.M{"_id": oid(id)})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: genre %s", models.ErrNotFound, id)
	}
	return nil
}
