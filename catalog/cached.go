package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Seabass5831/CS-546-Project-Song-Review/cache"
)

const (
	searchTTL = 10 * time.Minute
	seedsTTL  = 24 * time.Hour
)

// CachedClient memoizes the read-heavy catalog calls in redis. Cache
// trouble of any kind falls through to the wrapped client.
type CachedClient struct {
	inner Client
	rdb   *redis.Client
}

// NewCachedClient wraps inner with a redis cache. A nil redis client
// yields a pass-through.
func NewCachedClient(inner Client, rdb *redis.Client) *CachedClient {
	return &CachedClient{inner: inner, rdb: rdb}
}

func (c *CachedClient) SearchTracks(ctx context.Context, name string, limit int) ([]Track, error) {
	key := fmt.Sprintf("catalog:tracks:%s:%d", name, limit)
	var tracks []Track
	if cache.GetJSON(ctx, c.rdb, key, &tracks) {
		return tracks, nil
	}

	tracks, err := c.inner.SearchTracks(ctx, name, limit)
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, c.rdb, key, tracks, searchTTL)
	return tracks, nil
}

func (c *CachedClient) SearchArtists(ctx context.Context, name string, limit int) ([]Artist, error) {
	key := fmt.Sprintf("catalog:artists:%s:%d", name, limit)
	var artists []Artist
	if cache.GetJSON(ctx, c.rdb, key, &artists) {
		return artists, nil
	}

	artists, err := c.inner.SearchArtists(ctx, name, limit)
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, c.rdb, key, artists, searchTTL)
	return artists, nil
}

func (c *CachedClient) GetTrack(ctx context.Context, id string) (*Track, error) {
	return c.inner.GetTrack(ctx, id)
}

func (c *CachedClient) GetArtist(ctx context.Context, id string) (*Artist, error) {
	return c.inner.GetArtist(ctx, id)
}

func (c *CachedClient) GenreSeeds(ctx context.Context) ([]string, error) {
	const key = "catalog:genre-seeds"
	var seeds []string
	if cache.GetJSON(ctx, c.rdb, key, &seeds) {
		return seeds, nil
	}

	seeds, err := c.inner.GenreSeeds(ctx)
	if err != nil {
		return nil, err
	}
	cache.SetJSON(ctx, c.rdb, key, seeds, seedsTTL)
	return seeds, nil
}
