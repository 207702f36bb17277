package handler

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ananevdm/SpotInfoBot-Go/bot/spotify"
	"github.com/mymmrac/telego"
)

var mdV2Replacer = strings.NewReplacer(
	"_", "\\_", "*", "\\*", "[", "\\[", "]", "\\]", "(",
	"\\(", ")", "\\)", "~", "\\~", "`", "\\`", ">", "\\>",
	"#", "\\#", "+", "\\+", "-", "\\-", "=", "\\=", "|",
	"\\|", "{", "\\{", "}", "\\}", ".", "\\.", "!", "\\!",
)

// Inside a MarkdownV2 code span only backslash and backtick are special.
var codeSpanReplacer = strings.NewReplacer("\\", "\\\\", "`", "\\`")

// TrackCaption renders the MarkdownV2 caption for a track: monospace
// "artist — title", bold-italic album, then release date and label lines.
func TrackCaption(info *spotify.TrackInfo) string {
	lines := []string{
		"`" + codeSpanReplacer.Replace(spotify.JoinArtists(info.Artists)+" — "+info.Title) + "`",
		"*_" + mdV2Replacer.Replace(info.Album) + "_*",
		mdV2Replacer.Replace("Release date: " + info.ReleaseDate),
		mdV2Replacer.Replace("Label: " + info.Label),
	}
	return strings.Join(lines, "\n")
}

// SearchCaption renders the short MarkdownV2 caption for an inline search
// candidate, which carries no label or release date.
func SearchCaption(candidate spotify.TrackCandidate) string {
	return "`" + codeSpanReplacer.Replace(spotify.JoinArtists(candidate.Artists)+" — "+candidate.Title) + "`\n" +
		"*_" + mdV2Replacer.Replace(candidate.Album) + "_*"
}

// TrackKeyboard builds the action buttons for a track: the primary button
// targets the canonical source URL, the rest are search deep links into the
// fixed external services, keyed by "<title> <artist>".
func TrackKeyboard(title, artists, sourceURL string) *telego.InlineKeyboardMarkup {
	query := url.QueryEscape(title + " " + artists)
	return &telego.InlineKeyboardMarkup{
		InlineKeyboard: [][]telego.InlineKeyboardButton{
			{
				{Text: "🎧 Spotify", URL: sourceURL},
			},
			{
				{Text: "🎵 ВКонтакте", URL: "https://vk.com/audio"},
				{Text: "🎶 Яндекс.Музыка", URL: "https://music.yandex.ru/search?text=" + query},
			},
			{
				{Text: "☁️ SoundCloud", URL: "https://soundcloud.com/search?q=" + query},
				{Text: "🍎 Apple Music", URL: "https://music.apple.com/search?term=" + query},
			},
			{
				{Text: "▶️ YouTube", URL: "https://www.youtube.com/results?search_query=" + query},
				{Text: "🎵 YouTube Music", URL: "https://music.youtube.com/search?q=" + query},
			},
		},
	}
}

// PlaylistText renders the full plain-text playlist listing: a header with
// name and owner, the ordered track lines, and a trailing count footer.
func PlaylistText(info *spotify.PlaylistInfo) string {
	var sb strings.Builder
	sb.WriteString(info.Name)
	sb.WriteString("\n")
	if info.Owner != "" {
		sb.WriteString(fmt.Sprintf("Плейлист от %s\n", info.Owner))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Join(info.Lines, "\n"))
	sb.WriteString(fmt.Sprintf("\n\nВсего треков: %d", info.TrackCount))
	return sb.String()
}

// PlaylistKeyboard builds the single "open in source" button attached to the
// terminal chunk of a playlist listing.
func PlaylistKeyboard(sourceURL string) *telego.InlineKeyboardMarkup {
	return &telego.InlineKeyboardMarkup{
		InlineKeyboard: [][]telego.InlineKeyboardButton{
			{
				{Text: "🎧 Spotify", URL: sourceURL},
			},
		},
	}
}
