package handler

import (
	"context"

	"github.com/ananevdm/SpotInfoBot-Go/bot/telegram"
	"github.com/mymmrac/telego"
)

// HelpHandler answers /help and /start with usage instructions.
type HelpHandler struct {
	RateLimiter *telegram.RateLimiter
}

func (h *HelpHandler) Handle(ctx context.Context, b *telego.Bot, update *telego.Update) {
	if update == nil || update.Message == nil {
		return
	}
	message := update.Message

	params := &telego.SendMessageParams{
		ChatID:          telego.ChatID{ID: message.Chat.ID},
		Text:            helpText,
		ParseMode:       "HTML",
		ReplyParameters: &telego.ReplyParameters{MessageID: message.MessageID},
	}
	_, _ = telegram.SendMessageWithRetry(ctx, h.RateLimiter, b, params)
}
