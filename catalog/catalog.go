// Package catalog talks to the third-party music-catalog API that song
// creation pulls metadata from.
package catalog

import "context"

// Track is provider metadata for one song.
type Track struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	ArtistID    string `json:"artistId"`
	Album       string `json:"album"`
	ReleaseDate string `json:"releaseDate"`
	PreviewURL  string `json:"previewUrl,omitempty"`
}

// Artist is provider metadata for one artist. Genres is never nil.
type Artist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
}

// Client is the catalog boundary the repositories depend on.
type Client interface {
	SearchTracks(ctx context.Context, name string, limit int) ([]Track, error)
	SearchArtists(ctx context.Context, name string, limit int) ([]Artist, error)
	GetTrack(ctx context.Context, id string) (*Track, error)
	GetArtist(ctx context.Context, id string) (*Artist, error)
	GenreSeeds(ctx context.Context) ([]string, error)
}
