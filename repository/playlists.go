package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
	"github.com/Seabass5831/CS-546-Project-Song-Review/validation"
)

// Playlists owns the playlists collection. Song ids going into a
// playlist are shape-checked only; they may reference removed songs.
type Playlists struct {
	coll Collection
}

func NewPlaylists(coll Collection) *Playlists {
	return &Playlists{coll: coll}
}

// Create inserts a playlist for a user.
func (p *Playlists) Create(ctx context.Context, userID, name string, songIDs []string) (*models.Playlist, error) {
	if err := validation.RequireAll(userID, name, songIDs); err != nil {
		return nil, err
	}

	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}
	name, err = validation.CheckString(name, "name")
	if err != nil {
		return nil, err
	}
	songIDs, err = validation.CheckStringArray(songIDs, "songIds")
	if err != nil {
		return nil, err
	}

	playlist := models.Playlist{UserID: userID, Name: name, SongIDs: songIDs}
	id, err := p.coll.InsertOne(ctx, playlist)
	if err != nil {
		return nil, err
	}
	playlist.ID = id
	return &playlist, nil
}

// GetAllByUser lists every playlist a user owns.
func (p *Playlists) GetAllByUser(ctx context.Context, userID string) ([]models.Playlist, error) {
	if err := validation.RequireAll(userID); err != nil {
		return nil, err
	}
	userID, err := validation.CheckID(userID, "userId")
	if err != nil {
		return nil, err
	}

	playlists := []models.Playlist{}
	if err := p.coll.Find(ctx, bson.M{"userId": userID}, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// Get fetches one playlist.
func (p *Playlists) Get(ctx context.Context, id string) (*models.Playlist, error) {
	if err := validation.RequireAll(id); err != nil {
		return nil, err
	}
	id, err := validation.CheckID(id, "id")
	if err != nil {
		return nil, err
	}

	var playlist models.Playlist
	if err := p.coll.FindOne(ctx, bson.M{"_id": oid(id)}, &playlist); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("playlist %s", id))
	}
	return &playlist, nil
}

// Update replaces the playlist's name and song list.
func (p *Playlists) Update(ctx context.Context, id, name string, songIDs []string) (*models.Playlist, error) {
	if err := validation.RequireAll(id, name, songIDs); err != nil {
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
	songIDs, err = validation.CheckStringArray(songIDs, "songIds")
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"name": name, "songIds": songIDs}}

	var playlist models.Playlist
	if err := p.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid(id)}, update, &playlist); err != nil {
		return nil, notFoundOnDecode(err, fmt.Sprintf("playlist %s", id))
	}
	return &playlist, nil
}

// Remove deletes one playlist.
func (p *Playlists) Remove(ctx context.Context, id string) error {
	if err := validation.RequireAll(id); err != nil {
		return err
	}
	id, err := validation.CheckID(id, "id")
	if err != nil {
		return err
	}

	deleted, err := p.coll.DeleteOne(ctx, bson.M{"_id": oid(id)})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return fmt.Errorf("%w: playlist %s", models.ErrNotFound, id)
	}
	return nil
}

// AddSong appends a song id via an array update, then re-reads the
// playlist rather than trusting a client-side merge.
func (p *Playlists) AddSong(ctx context.Context, playlistID, songID string) (*models.Playlist, error) {
	if err := validation.RequireAll(playlistID, songID); err != nil {
		return nil, err
	}
	playlistID, err := validation.CheckID(playlistID, "playlistId")
	if err != nil {
		return nil, err
	}
	songID, err = validation.CheckID(songID, "songId")
	if err != nil {
		return nil, err
	}

	matched, _, err := p.coll.UpdateOne(ctx,
		bson.M{"_id": oid(playlistID)},
		bson.M{"$push": bson.M{"songIds": songID}})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, fmt.Errorf("%w: playlist %s", models.ErrNotFound, playlistID)
	}
	return p.Get(ctx, playlistID)
}

// RemoveSong pulls a song id out of the playlist, then re-reads it.
func (p *Playlists) RemoveSong(ctx context.Context, playlistID, songID string) (*models.Playlist, error) {
	if err := validation.RequireAll(playlistID, songID); err != nil {
		return nil, err
	}
	playlistID, err := validation.CheckID(playlistID, "playlistId")
	if err != nil {
		return nil, err
	}
	songID, err = validation.CheckID(songID, "songId")
	if err != nil {
		return nil, err
	}

	matched, _, err := p.coll.UpdateOne(ctx,
		bson.M{"_id": oid(playlistID)},
		bson.M{"$pull": bson.M{"songIds": songID}})
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, fmt.Errorf("%w: playlist %s", models.ErrNotFound, playlistID)
	}
	return p.Get(ctx, playlistID)
}
