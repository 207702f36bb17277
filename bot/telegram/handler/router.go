package handler

import (
	"context"

	botpkg "github.com/ananevdm/SpotInfoBot-Go/bot"
	"github.com/mymmrac/telego"
)

// MessageHandler handles one message update.
type MessageHandler interface {
	Handle(ctx context.Context, b *telego.Bot, update *telego.Update)
}

// Router delegates inbound updates to feature handlers.
type Router struct {
	Help    MessageHandler
	Music   MessageHandler
	Inline  MessageHandler
	BotName string
	Logger  botpkg.Logger
}

// Dispatch routes a single update. A panic in a handler is contained here so
// one bad event cannot take the process down.
func (r *Router) Dispatch(ctx context.Context, b *telego.Bot, update telego.Update) {
	defer func() {
		if rec := recover(); rec != nil && r.Logger != nil {
			r.Logger.Error("handler panic recovered", "panic", rec)
		}
	}()

	switch {
	case update.Message != nil && update.Message.Text != "":
		switch commandName(update.Message.Text, r.BotName) {
		case "help", "start":
			r.dispatch(ctx, b, &update, r.Help)
		case "":
			r.dispatch(ctx, b, &update, r.Music)
		default:
			// Unknown command: ignore.
		}
	case update.InlineQuery != nil:
		r.dispatch(ctx, b, &update, r.Inline)
	}
}

func (r *Router) dispatch(ctx context.Context, b *telego.Bot, update *telego.Update, handler MessageHandler) {
	if handler == nil {
		return
	}
	handler.Handle(ctx, b, update)
}
