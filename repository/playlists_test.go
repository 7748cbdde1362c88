package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
	"github.com/Seabass5831/CS-546-Project-Song-Review/repository"
	"github.com/Seabass5831/CS-546-Project-Song-Review/repository/repotest"
)

const (
	testSongA = "64ddea000000000000000011"
	testSongB = "64ddea000000000000000012"
)

func newPlaylistsRepo() *repository.Playlists {
	return repository.NewPlaylists(repotest.NewCollection())
}

func TestPlaylistsCreateAndGet(t *testing.T) {
	playlists := newPlaylistsRepo()
	ctx := context.Background()

	created, err := playlists.Create(ctx, testUserID, "road trip", []string{testSongA})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	got, err := playlists.Get(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "road trip", got.Name)
	assert.Equal(t, []string{testSongA}, got.SongIDs)
}

func TestPlaylistsCreateMissingName(t *testing.T) {
	playlists := newPlaylistsRepo()

	_, err := playlists.Create(context.Background(), testUserID, "", []string{testSongA})
	assert.ErrorIs(t, err, models.ErrMissingParameter)
}

func TestPlaylistsGetAllByUser(t *testing.T) {
	playlists := newPlaylistsRepo()
	ctx := context.Background()

	_, err := playlists.Create(ctx, testUserID, "one", []string{testSongA})
	require.NoError(t, err)
	_, err = playlists.Create(ctx, testUserID, "two", []string{testSongB})
	require.NoError(t, err)
	_, err = playlists.Create(ctx, "64ddea000000000000000099", "other", []string{testSongA})
	require.NoError(t, err)

	got, err := playlists.GetAllByUser(ctx, testUserID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestPlaylistsAddAndRemoveSong(t *testing.T) {
	playlists := newPlaylistsRepo()
	ctx := context.Background()

	created, err := playlists.Create(ctx, testUserID, "mix", []string{testSongA})
	require.NoError(t, err)

	updated, err := playlists.AddSong(ctx, created.ID.Hex(), testSongB)
	require.NoError(t, err)
	assert.Equal(t, []string{testSongA, testSongB}, updated.SongIDs)

	updated, err = playlists.RemoveSong(ctx, created.ID.Hex(), testSongA)
	require.NoError(t, err)
	assert.Equal(t, []string{testSongB}, updated.SongIDs)

	// Pulling an id that is not present leaves the list alone.
	updated, err = playlists.RemoveSong(ctx, created.ID.Hex(), testSongA)
	require.NoError(t, err)
	assert.Equal(t, []string{testSongB}, updated.SongIDs)

	_, err = playlists.AddSong(ctx, "64ddea000000000000000000", testSongA)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestPlaylistsUpdateAndRemove(t *testing.T) {
	playlists := newPlaylistsRepo()
	ctx := context.Background()

	created, err := playlists.Create(ctx, testUserID, "mix", []string{testSongA})
	require.NoError(t, err)

	updated, err := playlists.Update(ctx, created.ID.Hex(), "renamed", []string{testSongB})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Name)
	assert.Equal(t, []string{testSongB}, updated.SongIDs)

	require.NoError(t, playlists.Remove(ctx, created.ID.Hex()))
	assert.ErrorIs(t, playlists.Remove(ctx, created.ID.Hex()), models.ErrNotFound)
}
