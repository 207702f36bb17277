package handler

import (
	"context"
	"errors"
	"strings"

	botpkg "github.com/ananevdm/SpotInfoBot-Go/bot"
	"github.com/ananevdm/SpotInfoBot-Go/bot/spotify"
	"github.com/ananevdm/SpotInfoBot-Go/bot/telegram"
	"github.com/mymmrac/telego"
)

// MusicHandler resolves catalog links found in chat messages and replies
// with track or playlist metadata. Messages that match no catalog pattern
// are ignored without a reply.
type MusicHandler struct {
	Fetcher    *spotify.Fetcher
	Resolver   *spotify.Resolver
	Dispatcher *telegram.Dispatcher
	Cleaner    *telegram.Cleaner
	Logger     botpkg.Logger
}

func (h *MusicHandler) Handle(ctx context.Context, b *telego.Bot, update *telego.Update) {
	if update == nil || update.Message == nil || update.Message.Text == "" {
		return
	}
	message := update.Message
	text := strings.TrimSpace(message.Text)

	input := spotify.Classify(text)
	if input.Kind == spotify.InputShortLink {
		expanded, err := h.Resolver.Resolve(ctx, firstURL(text))
		if err != nil {
			h.reply(ctx, b, message, resolveFailed)
			return
		}
		input = spotify.Classify(expanded)
		if input.Kind != spotify.InputTrack && input.Kind != spotify.InputPlaylist {
			h.reply(ctx, b, message, unrecognizedLink)
			return
		}
	}

	switch input.Kind {
	case spotify.InputTrack:
		h.handleTrack(ctx, b, message, input)
	case spotify.InputPlaylist:
		h.handlePlaylist(ctx, b, message, input)
	default:
		// Unrelated chat text: no reply.
	}
}

func (h *MusicHandler) handleTrack(ctx context.Context, b *telego.Bot, message *telego.Message, input spotify.Input) {
	info, err := h.Fetcher.FetchTrack(ctx, input.ID)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("track fetch failed", "track_id", input.ID, "error", err)
		}
		h.reply(ctx, b, message, trackInfoFailed)
		return
	}

	sourceURL := firstURL(input.Raw)
	if sourceURL == "" {
		sourceURL = "https://open.spotify.com/track/" + input.ID
	}

	caption := TrackCaption(info)
	keyboard := TrackKeyboard(info.Title, spotify.JoinArtists(info.Artists), sourceURL)

	var sent *telego.Message
	if info.ArtworkURL != "" {
		sent, err = h.Dispatcher.SendPhotoCaption(ctx, b, message.Chat.ID, message.MessageID, info.ArtworkURL, caption, "MarkdownV2", keyboard)
	} else {
		sent, err = h.Dispatcher.SendText(ctx, b, message.Chat.ID, message.MessageID, caption, "MarkdownV2", keyboard)
	}
	if err != nil || sent == nil {
		return
	}

	h.Cleaner.Schedule(b, message.Chat, message.MessageID, sent.MessageID)
}

func (h *MusicHandler) handlePlaylist(ctx context.Context, b *telego.Bot, message *telego.Message, input spotify.Input) {
	info, err := h.Fetcher.FetchPlaylist(ctx, input.ID)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("playlist fetch failed", "playlist_id", input.ID, "error", err)
		}
		if errors.Is(err, spotify.ErrEmptyPlaylist) {
			h.reply(ctx, b, message, emptyPlaylist)
		} else {
			h.reply(ctx, b, message, playlistInfoFailed)
		}
		return
	}

	sourceURL := info.URL
	if sourceURL == "" {
		sourceURL = firstURL(input.Raw)
	}

	sent := h.Dispatcher.SendChunks(ctx, b, message.Chat.ID, message.MessageID, PlaylistText(info), PlaylistKeyboard(sourceURL))
	if len(sent) == 0 {
		return
	}

	ids := make([]int, 0, len(sent)+1)
	ids = append(ids, message.MessageID)
	for _, msg := range sent {
		ids = append(ids, msg.MessageID)
	}
	h.Cleaner.Schedule(b, message.Chat, ids...)
}

func (h *MusicHandler) reply(ctx context.Context, b *telego.Bot, message *telego.Message, text string) {
	_, _ = h.Dispatcher.SendText(ctx, b, message.Chat.ID, message.MessageID, text, "", nil)
}
