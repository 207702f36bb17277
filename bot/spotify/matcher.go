package spotify

import (
	"regexp"
	"strings"
)

// ShortLinkDomain marks shortened catalog links that need redirect expansion.
const ShortLinkDomain = "spotify.link/"

// Identifier extraction: the literal path segment followed by the maximal run
// of alphanumeric characters.
var (
	trackPattern    = regexp.MustCompile(`track/([A-Za-z0-9]+)`)
	playlistPattern = regexp.MustCompile(`playlist/([A-Za-z0-9]+)`)
)

// InputKind tags the classification of a raw inbound string.
type InputKind int

const (
	// InputNone means the text matched no catalog pattern. Chat messages
	// with this kind are silently ignored; inline queries fall back to
	// free-text search.
	InputNone InputKind = iota

	// InputTrack carries a track identifier.
	InputTrack

	// InputPlaylist carries a playlist identifier.
	InputPlaylist

	// InputShortLink needs redirect expansion and reclassification.
	InputShortLink
)

// Input is the classification result for one inbound string.
type Input struct {
	Kind InputKind
	ID   string
	Raw  string
}

// ExtractTrackID extracts a track identifier from a catalog URL.
func ExtractTrackID(text string) (string, bool) {
	match := trackPattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ExtractPlaylistID extracts a playlist identifier from a catalog URL.
func ExtractPlaylistID(text string) (string, bool) {
	match := playlistPattern.FindStringSubmatch(text)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// IsShortLink reports whether the text contains a shortened catalog link.
func IsShortLink(text string) bool {
	return strings.Contains(text, ShortLinkDomain)
}

// Classify determines how a raw input string should be routed.
// Playlist links are checked before short-link detection so that directly
// detectable playlist links skip an unneeded expansion round-trip.
func Classify(text string) Input {
	text = strings.TrimSpace(text)
	if text == "" {
		return Input{Kind: InputNone}
	}
	if id, ok := ExtractPlaylistID(text); ok {
		return Input{Kind: InputPlaylist, ID: id, Raw: text}
	}
	if IsShortLink(text) {
		return Input{Kind: InputShortLink, Raw: text}
	}
	if id, ok := ExtractTrackID(text); ok {
		return Input{Kind: InputTrack, ID: id, Raw: text}
	}
	return Input{Kind: InputNone, Raw: text}
}
