package spotify

// TrackInfo is the assembled, display-ready metadata for a single track.
// ReleaseDate and Label always carry a placeholder when the catalog omits
// them; they are rendered unconditionally.
type TrackInfo struct {
	Artists     []string
	Title       string
	Album       string
	AlbumID     string
	ArtworkURL  string
	ReleaseDate string
	Label       string
}

// PlaylistInfo is the assembled metadata for a playlist.
// Lines preserve catalog ordering and are numbered contiguously from 1,
// skipping entries whose track reference was null.
type PlaylistInfo struct {
	Name       string
	Owner      string
	URL        string
	Lines      []string
	TrackCount int
}

// TrackCandidate is a single free-text search hit.
type TrackCandidate struct {
	ID         string
	Title      string
	Artists    []string
	Album      string
	ArtworkURL string
	URL        string
}

// Wire types for the Spotify Web API responses. Only the fields this bot
// reads are declared.

type apiImage struct {
	URL string `json:"url"`
}

type apiArtist struct {
	Name string `json:"name"`
}

type apiAlbumRef struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Images      []apiImage `json:"images"`
	ReleaseDate string     `json:"release_date"`
}

type apiTrack struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Artists      []apiArtist       `json:"artists"`
	Album        apiAlbumRef       `json:"album"`
	ExternalURLs map[string]string `json:"external_urls"`
}

type apiAlbum struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Label       string     `json:"label"`
	Images      []apiImage `json:"images"`
	ReleaseDate string     `json:"release_date"`
}

type apiPlaylist struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	ExternalURLs map[string]string `json:"external_urls"`
	Owner        struct {
		DisplayName string `json:"display_name"`
	} `json:"owner"`
}

type apiPlaylistItem struct {
	Track *apiTrack `json:"track"`
}

type apiPlaylistPage struct {
	Items []apiPlaylistItem `json:"items"`
	Total int               `json:"total"`
}

type apiSearchResult struct {
	Tracks struct {
		Items []apiTrack `json:"items"`
	} `json:"tracks"`
}
