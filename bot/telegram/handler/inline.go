package handler

import (
	"context"
	"strings"

	botpkg "github.com/ananevdm/SpotInfoBot-Go/bot"
	"github.com/ananevdm/SpotInfoBot-Go/bot/spotify"
	"github.com/ananevdm/SpotInfoBot-Go/bot/telegram"
	"github.com/mymmrac/telego"
)

// inlineCacheTime keeps inline answers effectively uncached so repeated
// queries reflect current catalog data.
const inlineCacheTime = 1

// InlineHandler answers inline queries: catalog track links resolve to a
// single rich result, anything else is treated as a free-text search.
type InlineHandler struct {
	Fetcher     *spotify.Fetcher
	Resolver    *spotify.Resolver
	RateLimiter *telegram.RateLimiter
	Logger      botpkg.Logger
}

func (h *InlineHandler) Handle(ctx context.Context, b *telego.Bot, update *telego.Update) {
	if update == nil || update.InlineQuery == nil {
		return
	}
	query := update.InlineQuery
	text := strings.TrimSpace(query.Query)
	if text == "" {
		return
	}

	input := spotify.Classify(text)
	if input.Kind == spotify.InputShortLink {
		expanded, err := h.Resolver.Resolve(ctx, firstURL(text))
		if err != nil {
			return
		}
		input = spotify.Classify(expanded)
		// An expanded link that still matches nothing is an unrecognized
		// link, not a free-text query; leave the query unanswered.
		if input.Kind != spotify.InputTrack && input.Kind != spotify.InputPlaylist {
			return
		}
	}

	switch input.Kind {
	case spotify.InputTrack:
		h.answerTrack(ctx, b, query, input)
	case spotify.InputPlaylist:
		// Playlists paginate too slowly for the inline answer window;
		// the message flow covers them.
	default:
		h.answerSearch(ctx, b, query, text)
	}
}

func (h *InlineHandler) answerTrack(ctx context.Context, b *telego.Bot, query *telego.InlineQuery, input spotify.Input) {
	info, err := h.Fetcher.FetchTrack(ctx, input.ID)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("inline track fetch failed", "track_id", input.ID, "error", err)
		}
		return
	}

	sourceURL := firstURL(input.Raw)
	if sourceURL == "" {
		sourceURL = "https://open.spotify.com/track/" + input.ID
	}

	artists := spotify.JoinArtists(info.Artists)
	result := &telego.InlineQueryResultArticle{
		Type:         "article",
		ID:           input.ID,
		Title:        artists + " — " + info.Title,
		Description:  info.Album,
		ThumbnailURL: info.ArtworkURL,
		InputMessageContent: &telego.InputTextMessageContent{
			MessageText: TrackCaption(info),
			ParseMode:   "MarkdownV2",
		},
		ReplyMarkup: TrackKeyboard(info.Title, artists, sourceURL),
	}

	h.answer(ctx, b, query, []telego.InlineQueryResult{result})
}

func (h *InlineHandler) answerSearch(ctx context.Context, b *telego.Bot, query *telego.InlineQuery, text string) {
	candidates := h.Fetcher.Search(ctx, text)
	if len(candidates) == 0 {
		return
	}

	results := make([]telego.InlineQueryResult, 0, len(candidates))
	for _, candidate := range candidates {
		artists := spotify.JoinArtists(candidate.Artists)
		sourceURL := candidate.URL
		if sourceURL == "" {
			sourceURL = "https://open.spotify.com/track/" + candidate.ID
		}
		results = append(results, &telego.InlineQueryResultArticle{
			Type:         "article",
			ID:           candidate.ID,
			Title:        artists + " — " + candidate.Title,
			Description:  candidate.Album,
			ThumbnailURL: candidate.ArtworkURL,
			InputMessageContent: &telego.InputTextMessageContent{
				MessageText: SearchCaption(candidate),
				ParseMode:   "MarkdownV2",
			},
			ReplyMarkup: TrackKeyboard(candidate.Title, artists, sourceURL),
		})
	}

	h.answer(ctx, b, query, results)
}

func (h *InlineHandler) answer(ctx context.Context, b *telego.Bot, query *telego.InlineQuery, results []telego.InlineQueryResult) {
	err := telegram.AnswerInlineQueryWithRetry(ctx, h.RateLimiter, b, &telego.AnswerInlineQueryParams{
		InlineQueryID: query.ID,
		Results:       results,
		CacheTime:     inlineCacheTime,
		IsPersonal:    true,
	})
	if err != nil && h.Logger != nil {
		h.Logger.Error("answer inline query failed", "query_id", query.ID, "error", err)
	}
}
