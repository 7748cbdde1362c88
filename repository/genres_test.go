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

func newGenresRepo() *repository.Genres {
	return repository.NewGenres(repotest.NewCollection([]string{"name"}))
}

func TestGenresCreateAndLookup(t *testing.T) {
	genres := newGenresRepo()
	ctx := context.Background()

	created, err := genres.Create(ctx, "Pop", "Catchy and chart-friendly")
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())

	byID, err := genres.Get(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Pop", byID.Name)

	byName, err := genres.GetByName(ctx, "Pop")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
}

func TestGenresDuplicateName(t *testing.T) {
	genres := newGenresRepo()
	ctx := context.Background()

	_, err := genres.Create(ctx, "Pop", "first")
	require.NoError(t, err)

	_, err = genres.Create(ctx, "Pop", "second")
	assert.ErrorIs(t, err, models.ErrDuplicate)
}

func TestGenresSearchCaseInsensitive(t *testing.T) {
	genres := newGenresRepo()
	ctx := context.Background()

	_, err := genres.Create(ctx, "Progressive Rock", "Long songs, odd meters")
	require.NoError(t, err)
	_, err = genres.Create(ctx, "Jazz", "Improvisation over rock-solid changes")
	require.NoError(t, err)
	_, err = genres.Create(ctx, "Folk", "Acoustic storytelling")
	require.NoError(t, err)

	got, err := genres.Search(ctx, "rock")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = genres.Search(ctx, "storYTELLing")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Folk", got[0].Name)

	got, err = genres.Search(ctx, "polka")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenresUpdateAndRemove(t *testing.T) {
	genres := newGenresRepo()
	ctx := context.Background()

	created, err := genres.Create(ctx, "Pop", "draft")
	require.NoError(t, err)

	updated, err := genres.Update(ctx, created.ID.Hex(), "Synth Pop", "Synthesizers up front")
	require.NoError(t, err)
	assert.Equal(t, "Synth Pop", updated.Name)

	_, err = genres.Update(ctx, "64ddea000000000000000000", "X", "Y")
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, genres.Remove(ctx, created.ID.Hex()))
	assert.ErrorIs(t, genres.Remove(ctx, created.ID.Hex()), models.ErrNotFound)
}
