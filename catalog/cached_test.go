package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingClient struct {
	tracks     []Track
	seeds      []string
	err        error
	trackCalls int
	seedCalls  int
}

func (c *countingClient) SearchTracks(context.Context, string, int) ([]Track, error) {
	c.trackCalls++
	return c.tracks, c.err
}

func (c *countingClient) SearchArtists(context.Context, string, int) ([]Artist, error) {
	return nil, c.err
}

func (c *countingClient) GetTrack(context.Context, string) (*Track, error) {
	if c.err != nil {
		return nil, c.err
	}
	return &c.tracks[0], nil
}

func (c *countingClient) GetArtist(context.Context, string) (*Artist, error) {
	return nil, c.err
}

func (c *countingClient) GenreSeeds(context.Context) ([]string, error) {
	c.seedCalls++
	return c.seeds, c.err
}

func TestCachedClientPassesThroughWithoutRedis(t *testing.T) {
	inner := &countingClient{
		tracks: []Track{{ID: "t1", Title: "Karma Police"}},
		seeds:  []string{"acoustic"},
	}
	cached := NewCachedClient(inner, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		tracks, err := cached.SearchTracks(ctx, "karma", 5)
		require.NoError(t, err)
		assert.Len(t, tracks, 1)
	}
	assert.Equal(t, 2, inner.trackCalls)

	seeds, err := cached.GenreSeeds(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"acoustic"}, seeds)
	assert.Equal(t, 1, inner.seedCalls)
}

func TestCachedClientFallsThroughOnUnreachableRedis(t *testing.T) {
	// A client pointed at a closed port errors on every command; the
	// decorator must treat that as a miss, not a failure.
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	inner := &countingClient{tracks: []Track{{ID: "t1"}}}
	cached := NewCachedClient(inner, rdb)

	tracks, err := cached.SearchTracks(context.Background(), "karma", 5)
	require.NoError(t, err)
	assert.Len(t, tracks, 1)
	assert.Equal(t, 1, inner.trackCalls)
}

func TestCachedClientPropagatesInnerError(t *testing.T) {
	innerErr := errors.New("upstream down")
	cached := NewCachedClient(&countingClient{err: innerErr}, nil)

	_, err := cached.SearchTracks(context.Background(), "karma", 5)
	assert.ErrorIs(t, err, innerErr)

	_, err = cached.GenreSeeds(context.Background())
	assert.ErrorIs(t, err, innerErr)
}
