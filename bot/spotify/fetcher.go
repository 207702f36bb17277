package spotify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ananevdm/SpotInfoBot-Go/bot"
	"golang.org/x/time/rate"
)

const (
	// playlistPageSize is the fixed membership page size.
	playlistPageSize = 100

	// maxPlaylistPages bounds pagination so a pathological playlist cannot
	// hold the handler forever.
	maxPlaylistPages = 50

	// searchLimit caps free-text search candidates.
	searchLimit = 5

	// labelFetchInterval throttles per-track album label fetches during
	// playlist resolution to stay within the catalog's rate tolerance.
	labelFetchInterval = 300 * time.Millisecond

	// UnknownDate is rendered when the catalog omits a release date.
	UnknownDate = "Unknown Date"

	// UnknownLabel is rendered when an album label cannot be fetched.
	UnknownLabel = "Unknown Label"
)

// catalogAPI is the slice of Client the fetcher consumes.
type catalogAPI interface {
	GetTrack(ctx context.Context, trackID string) (*apiTrack, error)
	GetAlbum(ctx context.Context, albumID string) (*apiAlbum, error)
	GetPlaylist(ctx context.Context, playlistID string) (*apiPlaylist, error)
	GetPlaylistPage(ctx context.Context, playlistID string, limit, offset int) (*apiPlaylistPage, error)
	SearchTracks(ctx context.Context, text string, limit int) ([]apiTrack, error)
}

// Fetcher assembles display-ready metadata from the catalog API.
type Fetcher struct {
	api     catalogAPI
	labelRL *rate.Limiter
	logger  bot.Logger
}

// NewFetcher creates a Fetcher backed by the given client.
func NewFetcher(client *Client, logger bot.Logger) *Fetcher {
	return &Fetcher{
		api:     client,
		labelRL: rate.NewLimiter(rate.Every(labelFetchInterval), 1),
		logger:  logger,
	}
}

// FetchTrack assembles TrackInfo for one track. The album label requires a
// second, dependent fetch; the two calls are sequential by design.
func (f *Fetcher) FetchTrack(ctx context.Context, trackID string) (*TrackInfo, error) {
	track, err := f.api.GetTrack(ctx, trackID)
	if err != nil {
		return nil, err
	}

	info := &TrackInfo{
		Artists:     artistNames(track.Artists),
		Title:       track.Name,
		Album:       track.Album.Name,
		AlbumID:     track.Album.ID,
		ReleaseDate: track.Album.ReleaseDate,
		Label:       UnknownLabel,
	}
	if len(track.Album.Images) > 0 {
		info.ArtworkURL = track.Album.Images[0].URL
	}
	if info.ReleaseDate == "" {
		info.ReleaseDate = UnknownDate
	}

	if info.AlbumID != "" {
		album, err := f.api.GetAlbum(ctx, info.AlbumID)
		if err == nil && album.Label != "" {
			info.Label = album.Label
		} else if err != nil && f.logger != nil {
			f.logger.Warn("album label fetch failed", "album_id", info.AlbumID, "error", err)
		}
	}

	return info, nil
}

// FetchPlaylist drains the playlist membership endpoint page by page, then
// resolves each track's album label with per-resolution memoization and a
// fixed throttle between fetches.
func (f *Fetcher) FetchPlaylist(ctx context.Context, playlistID string) (*PlaylistInfo, error) {
	playlist, err := f.api.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	info := &PlaylistInfo{
		Name:  playlist.Name,
		Owner: playlist.Owner.DisplayName,
		URL:   playlist.ExternalURLs["spotify"],
	}

	var items []apiPlaylistItem
	offset := 0
	for page := 0; page < maxPlaylistPages; page++ {
		chunk, err := f.api.GetPlaylistPage(ctx, playlistID, playlistPageSize, offset)
		if err != nil {
			return nil, err
		}
		if len(chunk.Items) == 0 {
			break
		}
		items = append(items, chunk.Items...)
		offset += len(chunk.Items)
	}
	if f.logger != nil {
		f.logger.Debug("playlist drained", "playlist_id", playlistID, "items", len(items))
	}

	// Label cache scoped to this resolution only: at most one label fetch
	// per distinct album identifier.
	labels := make(map[string]string)
	position := 0
	for _, item := range items {
		if item.Track == nil {
			continue
		}
		position++
		label := f.resolveLabel(ctx, item.Track.Album.ID, labels)
		info.Lines = append(info.Lines, fmt.Sprintf("%d. %s — %s [%s]",
			position, JoinArtists(artistNames(item.Track.Artists)), item.Track.Name, label))
	}
	info.TrackCount = position

	if info.TrackCount == 0 {
		return nil, &CatalogError{Resource: "playlist", ID: playlistID, Err: ErrEmptyPlaylist}
	}
	return info, nil
}

func (f *Fetcher) resolveLabel(ctx context.Context, albumID string, cache map[string]string) string {
	if albumID == "" {
		return UnknownLabel
	}
	if label, ok := cache[albumID]; ok {
		return label
	}

	label := UnknownLabel
	if err := f.labelRL.Wait(ctx); err == nil {
		album, err := f.api.GetAlbum(ctx, albumID)
		if err == nil && album.Label != "" {
			label = album.Label
		}
	}
	cache[albumID] = label
	return label
}

// Search returns up to five candidate tracks for free text. Provider errors
// degrade to an empty result set: search backs inline suggestions, where an
// empty list reads better than an error state.
func (f *Fetcher) Search(ctx context.Context, text string) []TrackCandidate {
	tracks, err := f.api.SearchTracks(ctx, text, searchLimit)
	if err != nil {
		if f.logger != nil {
			f.logger.Warn("search failed", "query", text, "error", err)
		}
		return nil
	}

	candidates := make([]TrackCandidate, 0, len(tracks))
	for _, track := range tracks {
		candidate := TrackCandidate{
			ID:      track.ID,
			Title:   track.Name,
			Artists: artistNames(track.Artists),
			Album:   track.Album.Name,
			URL:     track.ExternalURLs["spotify"],
		}
		if len(track.Album.Images) > 0 {
			candidate.ArtworkURL = track.Album.Images[0].URL
		}
		candidates = append(candidates, candidate)
	}
	return candidates
}

func artistNames(artists []apiArtist) []string {
	names := make([]string, 0, len(artists))
	for _, artist := range artists {
		names = append(names, artist.Name)
	}
	return names
}

// JoinArtists is the display form of an ordered artist sequence.
func JoinArtists(names []string) string {
	return strings.Join(names, ", ")
}
