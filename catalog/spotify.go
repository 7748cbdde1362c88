package catalog

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Seabass5831/CS-546-Project-Song-Review/models"
)

// SpotifyClient implements Client against the Spotify Web API using the
// client-credentials flow. The bearer token is cached and refreshed
// shortly before it expires.
type SpotifyClient struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client

	apiBase  string
	tokenURL string

	mu          sync.RWMutex
	accessToken string
	tokenExpiry time.Time
}

// NewSpotifyClient builds a client with the given credentials.
func NewSpotifyClient(clientID, clientSecret string) *SpotifyClient {
	return &SpotifyClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		apiBase:      "https://api.spotify.com/v1",
		tokenURL:     "https://accounts.spotify.com/api/token",
	}
}

type spotifyTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type spotifySearchResponse struct {
	Artists *spotifyArtistsPage `json:"artists,omitempty"`
	Tracks  *spotifyTracksPage  `json:"tracks,omitempty"`
}

type spotifyArtistsPage struct {
	Items []spotifyArtist `json:"items"`
}

type spotifyTracksPage struct {
	Items []spotifyTrack `json:"items"`
}

type spotifyArtist struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Popularity int      `json:"popularity"`
}

type spotifyTrack struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Artists []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"artists"`
	Album *struct {
		Name        string `json:"name"`
		ReleaseDate string `json:"release_date"`
	} `json:"album,omitempty"`
	PreviewURL string `json:"preview_url"`
}

// authenticate obtains or refreshes the access token.
func (c *SpotifyClient) authenticate(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if time.Now().Before(c.tokenExpiry) {
		return nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: create token request: %v", models.ErrExternalService, err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: token request: %v", models.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: token request returned %d: %s", models.ErrExternalService, resp.StatusCode, body)
	}

	var token spotifyTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return fmt.Errorf("%w: decode token response: %v", models.ErrExternalService, err)
	}

	c.accessToken = token.AccessToken
	// Refresh a minute early so in-flight requests never carry a stale token.
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - time.Minute)
	return nil
}

func (c *SpotifyClient) doRequest(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.authenticate(ctx); err != nil {
		return err
	}

	endpoint := c.apiBase + "/" + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", models.ErrExternalService, err)
	}
	c.mu.RLock()
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", models.ErrExternalService, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Token was revoked out from under us; force one refresh and retry.
		c.mu.Lock()
		c.tokenExpiry = time.Time{}
		c.mu.Unlock()
		if err := c.authenticate(ctx); err != nil {
			return err
		}
		return c.doRequestOnce(ctx, endpoint, out)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s returned %d: %s", models.ErrExternalService, path, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %v", models.ErrExternalService, path, err)
	}
	return nil
}

func (c *SpotifyClient) doRequestOnce(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", models.ErrExternalService, err)
	}
	c.mu.RLock()
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: retry returned %d: %s", models.ErrExternalService, resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", models.ErrExternalService, err)
	}
	return nil
}

// SearchTracks looks up tracks by name.
func (c *SpotifyClient) SearchTracks(ctx context.Context, name string, limit int) ([]Track, error) {
	params := url.Values{}
	params.Set("q", name)
	params.Set("type", "track")
	params.Set("limit", strconv.Itoa(limit))

	var result spotifySearchResponse
	if err := c.doRequest(ctx, "search", params, &result); err != nil {
		return nil, err
	}
	if result.Tracks == nil {
		return []Track{}, nil
	}

	tracks := make([]Track, 0, len(result.Tracks.Items))
	for _, st := range result.Tracks.Items {
		tracks = append(tracks, convertTrack(st))
	}
	return tracks, nil
}

// SearchArtists looks up artists by name.
func (c *SpotifyClient) SearchArtists(ctx context.Context, name string, limit int) ([]Artist, error) {
	params := url.Values{}
	params.Set("q", name)
	params.Set("type", "artist")
	params.Set("limit", strconv.Itoa(limit))

	var result spotifySearchResponse
	if err := c.doRequest(ctx, "search", params, &result); err != nil {
		return nil, err
	}
	if result.Artists == nil {
		return []Artist{}, nil
	}

	artists := make([]Artist, 0, len(result.Artists.Items))
	for _, sa := range result.Artists.Items {
		artists = append(artists, convertArtist(sa))
	}
	return artists, nil
}

// GetTrack retrieves one track by provider id.
func (c *SpotifyClient) GetTrack(ctx context.Context, id string) (*Track, error) {
	var st spotifyTrack
	if err := c.doRequest(ctx, "tracks/"+id, nil, &st); err != nil {
		return nil, err
	}
	track := convertTrack(st)
	return &track, nil
}

// GetArtist retrieves one artist by provider id.
func (c *SpotifyClient) GetArtist(ctx context.Context, id string) (*Artist, error) {
	var sa spotifyArtist
	if err := c.doRequest(ctx, "artists/"+id, nil, &sa); err != nil {
		return nil, err
	}
	artist := convertArtist(sa)
	return &artist, nil
}

// GenreSeeds lists every genre seed the provider knows about.
func (c *SpotifyClient) GenreSeeds(ctx context.Context) ([]string, error) {
	var result struct {
		Genres []string `json:"genres"`
	}
	if err := c.doRequest(ctx, "recommendations/available-genre-seeds", nil, &result); err != nil {
		return nil, err
	}
	if result.Genres == nil {
		return []string{}, nil
	}
	return result.Genres, nil
}

func convertTrack(st spotifyTrack) Track {
	track := Track{
		ID:         st.ID,
		Title:      st.Name,
		PreviewURL: st.PreviewURL,
	}
	if len(st.Artists) > 0 {
		track.Artist = st.Artists[0].Name
		track.ArtistID = st.Artists[0].ID
	}
	if st.Album != nil {
		track.Album = st.Album.Name
		track.ReleaseDate = st.Album.ReleaseDate
	}
	return track
}

func convertArtist(sa spotifyArtist) Artist {
	genres := sa.Genres
	if genres == nil {
		genres = []string{}
	}
	return Artist{
		ID:         sa.ID,
		Name:       sa.Name,
		Genres:     genres,
		Popularity: sa.Popularity,
	}
}
