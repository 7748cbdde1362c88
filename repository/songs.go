package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Seabass5831/CS-546-Project-Song-Review/catalog"
	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
	"github.com/Seabass5831/CS-546-Project-Song-Review/validation"
)

// Songs owns the songs collection and the catalog lookups that feed it.
type Songs struct {
	coll    Collection
	catalog catalog.Client
}

func NewSongs(coll Collection, cat catalog.Client) *Songs {
	return &Songs{coll: coll, catalog: cat}
}

// oid converts an already-validated hex id. CheckID ran first, so the
// conversion cannot fail.
func oid(id string) primitive.ObjectID {
	objectID, _ := primitive.ObjectIDFromHex(id)
	return objectID
}

// SearchByName queries the catalog for tracks matching name.
func (s *Songs) SearchByName(ctx context.Context, name string) ([]catalog.Track, error) {
	if err := validation.RequireAll(name); err != nil {
		return nil, err
	}
	name, err := validation.CheckString(name, "songName")
	if err != nil {
		return nil, err
	}
	return s.catalog.SearchTracks(ctx, name, 5)
}

// GenreSeeds lists every genre the catalog knows about.
func (s *Songs) GenreSeeds(ctx context.Context) ([]string, error) {
	return s.catalog.GenreSeeds(ctx)
}

// GenreByArtist resolves an artist name to that artist's genre list. An
// unknown artist resolves to an empty list, not an error.
func (s *Songs) GenreByArtist(ctx context.Context, artist string) ([]string, error) {
	if err := validation.RequireAll(artist); err != nil {
		return nil, err
	}
	artist, err := validation.CheckString(artist, "artist")
	if err != nil {
		return nil, err
	}

	artists, err := s.catalog.SearchArtists(ctx, artist, 5)
	if err != nil {
		return nil, err
	}
	if len(artists) == 0 {
		return []string{}, nil
	}
	return artists[0].Genres, nil
}

// GetAll returns an id/title listing of every song.
func (s *Songs) GetAll(ctx context.Context) ([]models.SongRef, error) {
	refs := []models.SongRef{}
	opts := options.Find().SetProjection(bson.M{"_id": 1, "title": 1})
	if err := s.coll.Find(ctx, bson.M{}, &refs, opts); err != nil {
		return nil, err
	}
	return refs, nil
}

// GetByID fetches one song.
func (s *Songs) GetByID(ctx context.Context, id string) (*models.Song, error) {
	if err := validation.RequireAll(id); err != nil {
		return nil, err
	}
	id, err := validation.CheckID(id, "id")
	if err != nil {
		return nil, err
	}

	var song models.Song
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid(id)}, &song); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("song %s", id))
	}
	return &song, nil
}

// Create validates every field and inserts the song. The title+artist
// unique index turns a second insert of the same pair into ErrDuplicate.
func (s *Songs) Create(ctx context.Context, title, artist, album, releaseDate string, genre []string) (*models.Song, error) {
	if err := validation.RequireAll(title, artist, album, releaseDate, genre); err != nil {
		return nil, err
	}

	title, err := validation.CheckString(title, "title")
	if err != nil {
		return nil, err
	}
	artist, err = validation.CheckString(artist, "artist")
	if err != nil {
		return nil, err
	}
	album, err = validation.CheckString(album, "album")
	if err != nil {
		return nil, err
	}
	releaseDate, err = validation.CheckString(releaseDate, "releaseDate")
	if err != nil {
		return nil, err
	}
	if !validation.IsValidDate(releaseDate) {
		return nil, fmt.Errorf("%w: releaseDate must be YYYY-MM-DD", models.ErrInvalidArgument)
	}
	genre, err = validation.CheckStringArray(genre, "genre")
	if err != nil {
		return nil, err
	}

	song := models.Song{
		Title:       title,
		Artist:      artist,
		Album:       album,
		ReleaseDate: releaseDate,
		Genre:       genre,
		Reviews:     []string{},
	}

	id, err := s.coll.InsertOne(ctx, song)
	if err != nil {
		return nil, wrapWriteErr(err, fmt.Sprintf("song %q by %q", title, artist))
	}
	song.ID = id
	return &song, nil
}

// Update replaces the listed fields and returns the post-update document.
func (s *Songs) Update(ctx context.Context, id, title, artist, album, releaseDate string, genre []string) (*models.Song, error) {
	if err := validation.RequireAll(id, title, artist, album, releaseDate, genre); err != nil {
		return nil, err
	}

	id, err := validation.CheckID(id, "songId")
	if err != nil {
		return nil, err
	}
	title, err = validation.CheckString(title, "title")
	if err != nil {
		return nil, err
	}
	artist, err = validation.CheckString(artist, "artist")
	if err != nil {
		return nil, err
	}
	album, err = validation.CheckString(album, "album")
	if err != nil {
		return nil, err
	}
	releaseDate, err = validation.CheckString(releaseDate, "releaseDate")
	if err != nil {
		return nil, err
	}
	if !validation.IsValidDate(releaseDate) {
		return nil, fmt.Errorf("%w: releaseDate must be YYYY-MM-DD", models.ErrInvalidArgument)
	}
	genre, err = validation.CheckStringArray(genre, "genre")
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"title":       title,
		"artist":      artist,
		"album":       album,
		"releaseDate": releaseDate,
		"genre":       genre,
	}}

	var song models.Song
	if err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid(id)}, update, &song); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("song %s", id))
	}
	return &song, nil
}

// Remove deletes one song. Reviews referencing it are left in place.
func (s *Songs) Remove(ctx context.Context, id string) error {
	if err := validation.RequireAll(id); err != nil {
		return err
	}
	id, err := validation.CheckID(id, "songId")
	if err != nil {
		return err
	}

	deleted, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid(id)})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: song %s", models.ErrNotFound, id)
	}
	return nil
}
