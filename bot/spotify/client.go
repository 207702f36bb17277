package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ananevdm/SpotInfoBot-Go/bot"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sony/gobreaker"
)

// DefaultBaseURL is the Spotify Web API root.
const DefaultBaseURL = "https://api.spotify.com/v1"

// tokenSource abstracts TokenProvider for tests.
type tokenSource interface {
	Fetch(ctx context.Context) (string, error)
}

// Client provides resilient Spotify Web API calls.
type Client struct {
	tokens  tokenSource
	retry   *retryablehttp.Client
	breaker *gobreaker.CircuitBreaker
	baseURL string
	logger  bot.Logger
}

// NewClient creates a Spotify client with retry and circuit breaker.
func NewClient(tokens *TokenProvider, logger bot.Logger) *Client {
	retry := retryablehttp.NewClient()
	retry.RetryMax = 3
	retry.RetryWaitMin = 200 * time.Millisecond
	retry.RetryWaitMax = 2 * time.Second
	retry.HTTPClient.Timeout = 30 * time.Second
	retry.Logger = nil

	settings := gobreaker.Settings{
		Name:        "spotify-api",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	}

	return &Client{
		tokens:  tokens,
		retry:   retry,
		breaker: gobreaker.NewCircuitBreaker(settings),
		baseURL: DefaultBaseURL,
		logger:  logger,
	}
}

type httpResult struct {
	status int
	body   []byte
}

// getJSON performs an authorized GET and decodes the body when the status is
// 200. The status code is always returned so callers can map non-success
// responses to their own failure semantics.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) (int, error) {
	token, err := c.tokens.Fetch(ctx)
	if err != nil {
		return 0, err
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	result, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.retry.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return &httpResult{status: resp.StatusCode, body: body}, nil
	})
	if err != nil {
		if c.logger != nil {
			c.logger.Error("spotify request failed", "path", path, "error", err)
		}
		return 0, err
	}

	res := result.(*httpResult)
	if res.status != http.StatusOK {
		return res.status, nil
	}
	if err := json.Unmarshal(res.body, out); err != nil {
		return res.status, fmt.Errorf("decode %s: %w", path, err)
	}
	return res.status, nil
}

// GetTrack retrieves a track resource.
func (c *Client) GetTrack(ctx context.Context, trackID string) (*apiTrack, error) {
	if c.logger != nil {
		c.logger.Debug("fetching track", "track_id", trackID)
	}
	var track apiTrack
	status, err := c.getJSON(ctx, "/tracks/"+trackID, nil, &track)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newNotFound("track", trackID)
	}
	return &track, nil
}

// GetAlbum retrieves an album resource.
func (c *Client) GetAlbum(ctx context.Context, albumID string) (*apiAlbum, error) {
	if c.logger != nil {
		c.logger.Debug("fetching album", "album_id", albumID)
	}
	var album apiAlbum
	status, err := c.getJSON(ctx, "/albums/"+albumID, nil, &album)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newNotFound("album", albumID)
	}
	return &album, nil
}

// GetPlaylist retrieves playlist-level metadata.
func (c *Client) GetPlaylist(ctx context.Context, playlistID string) (*apiPlaylist, error) {
	if c.logger != nil {
		c.logger.Debug("fetching playlist", "playlist_id", playlistID)
	}
	var playlist apiPlaylist
	status, err := c.getJSON(ctx, "/playlists/"+playlistID, nil, &playlist)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newNotFound("playlist", playlistID)
	}
	return &playlist, nil
}

// GetPlaylistPage retrieves one page of playlist membership.
func (c *Client) GetPlaylistPage(ctx context.Context, playlistID string, limit, offset int) (*apiPlaylistPage, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	var page apiPlaylistPage
	status, err := c.getJSON(ctx, "/playlists/"+playlistID+"/tracks", query, &page)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, newNotFound("playlist tracks", playlistID)
	}
	return &page, nil
}

// SearchTracks searches the catalog for tracks matching the query.
func (c *Client) SearchTracks(ctx context.Context, text string, limit int) ([]apiTrack, error) {
	query := url.Values{}
	query.Set("q", text)
	query.Set("type", "track")
	query.Set("limit", strconv.Itoa(limit))

	var result apiSearchResult
	status, err := c.getJSON(ctx, "/search", query, &result)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &CatalogError{Resource: "search", Err: fmt.Errorf("status %d", status)}
	}
	return result.Tracks.Items, nil
}
