package telegram

import (
	"context"

	botpkg "github.com/ananevdm/SpotInfoBot-Go/bot"
	"github.com/mymmrac/telego"
)

// MessageLimit is the transport's text size ceiling per message.
const MessageLimit = 4000

// SplitMessage splits text into ordered chunks of at most limit characters.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 {
		return []string{text}
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/limit+1)
	for start := 0; start < len(runes); start += limit {
		end := start + limit
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// Dispatcher delivers rendered results through the transport, honoring the
// message size ceiling. Interactive controls are attached only to the
// terminal chunk of a multi-part send.
type Dispatcher struct {
	RateLimiter *RateLimiter
	Logger      botpkg.Logger
}

// SendText sends a single message with optional parse mode and keyboard.
func (d *Dispatcher) SendText(ctx context.Context, b *telego.Bot, chatID int64, replyTo int, text, parseMode string, keyboard *telego.InlineKeyboardMarkup) (*telego.Message, error) {
	params := &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: chatID},
		Text:      text,
		ParseMode: parseMode,
	}
	if replyTo != 0 {
		params.ReplyParameters = &telego.ReplyParameters{MessageID: replyTo}
	}
	if keyboard != nil {
		params.ReplyMarkup = keyboard
	}
	return SendMessageWithRetry(ctx, d.RateLimiter, b, params)
}

// SendChunks splits text to the transport ceiling and sends each chunk as a
// separate message. A failed chunk is logged and skipped; the remaining
// chunks are still attempted. The keyboard goes on the last chunk only.
func (d *Dispatcher) SendChunks(ctx context.Context, b *telego.Bot, chatID int64, replyTo int, text string, keyboard *telego.InlineKeyboardMarkup) []*telego.Message {
	chunks := SplitMessage(text, MessageLimit)

	sent := make([]*telego.Message, 0, len(chunks))
	for i, chunk := range chunks {
		params := &telego.SendMessageParams{
			ChatID: telego.ChatID{ID: chatID},
			Text:   chunk,
		}
		if i == 0 && replyTo != 0 {
			params.ReplyParameters = &telego.ReplyParameters{MessageID: replyTo}
		}
		if i == len(chunks)-1 && keyboard != nil {
			params.ReplyMarkup = keyboard
		}

		msg, err := SendMessageWithRetry(ctx, d.RateLimiter, b, params)
		if err != nil {
			if d.Logger != nil {
				d.Logger.Error("chunk send failed", "chat_id", chatID, "chunk", i+1, "total", len(chunks), "error", err)
			}
			continue
		}
		sent = append(sent, msg)
	}
	return sent
}

// SendPhotoCaption sends a single artwork-with-caption message. This path is
// never chunked; callers keep track captions within the caption limit.
func (d *Dispatcher) SendPhotoCaption(ctx context.Context, b *telego.Bot, chatID int64, replyTo int, photoURL, caption, parseMode string, keyboard *telego.InlineKeyboardMarkup) (*telego.Message, error) {
	params := &telego.SendPhotoParams{
		ChatID:    telego.ChatID{ID: chatID},
		Photo:     telego.InputFile{URL: photoURL},
		Caption:   caption,
		ParseMode: parseMode,
	}
	if replyTo != 0 {
		params.ReplyParameters = &telego.ReplyParameters{MessageID: replyTo}
	}
	if keyboard != nil {
		params.ReplyMarkup = keyboard
	}
	return SendPhotoWithRetry(ctx, d.RateLimiter, b, params)
}
