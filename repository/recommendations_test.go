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

func newRecommendationsRepo() *repository.Recommendations {
	return repository.NewRecommendations(repotest.NewCollection())
}

func TestRecommendationsCreateAndGetByUser(t *testing.T) {
	recs := newRecommendationsRepo()
	ctx := context.Background()

	created, err := recs.Create(ctx, testUserID, []string{testSongA})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	got, err := recs.GetByUser(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, []string{testSongA}, got.RecommendedSongs)

	_, err = recs.GetByUser(ctx, "64ddea000000000000000099")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRecommendationsUpdateReplacesList(t *testing.T) {
	recs := newRecommendationsRepo()
	ctx := context.Background()

	_, err := recs.Create(ctx, testUserID, []string{testSongA})
	require.NoError(t, err)

	updated, err := recs.Update(ctx, testUserID, []string{testSongB})
	require.NoError(t, err)
	assert.Equal(t, []string{testSongB}, updated.RecommendedSongs)
}

func TestRecommendationsAddAndRemoveSong(t *testing.T) {
	recs := newRecommendationsRepo()
	ctx := context.Background()

	created, err := recs.Create(ctx, testUserID, []string{testSongA})
	require.NoError(t, err)

	updated, err := recs.AddSong(ctx, created.ID.Hex(), testSongB)
	require.NoError(t, err)
	assert.Equal(t, []string{testSongA, testSongB}, updated.RecommendedSongs)

	updated, err = recs.RemoveSong(ctx, created.ID.Hex(), testSongA)
	require.NoError(t, err)
	assert.Equal(t, []string{testSongB}, updated.RecommendedSongs)

	_, err = recs.AddSong(ctx, "64ddea000000000000000000", testSongA)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRecommendationsRemove(t *testing.T) {
	recs := newRecommendationsRepo()
	ctx := context.Background()

	_, err := recs.Create(ctx, testUserID, []string{testSongA})
	require.NoError(t, err)

	require.NoError(t, recs.Remove(ctx, testUserID))
	assert.ErrorIs(t, recs.Remove(ctx, testUserID), models.ErrNotFound)
}
