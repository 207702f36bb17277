package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	botpkg "github.com/ananevdm/SpotInfoBot-Go/bot"
	"github.com/ananevdm/SpotInfoBot-Go/bot/config"
	"github.com/ananevdm/SpotInfoBot-Go/bot/worker"
	"github.com/mymmrac/telego"
)

// reconnectDelay is the pause before re-opening the update stream after a
// fatal polling failure.
const reconnectDelay = 5 * time.Second

// DispatchFunc handles one inbound update.
type DispatchFunc func(ctx context.Context, b *telego.Bot, update telego.Update)

// Bot wraps telego with application configuration.
type Bot struct {
	client *telego.Bot
	config *config.Config
	pool   *worker.Pool
	logger botpkg.Logger
}

// New creates a new Telegram bot client.
func New(cfg *config.Config, pool *worker.Pool, logger botpkg.Logger) (*Bot, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger required")
	}

	pollTransport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	pollClient := &http.Client{
		Timeout:   2 * time.Minute,
		Transport: pollTransport,
	}

	options := []telego.BotOption{
		telego.WithHTTPClient(pollClient),
		telego.WithLogger(telegoLogger{logger: logger}),
	}

	if cfg.GetString("BotAPI") != "" {
		options = append(options, telego.WithAPIServer(cfg.GetString("BotAPI")))
	}
	if cfg.GetBool("BotDebug") {
		options = append(options, telego.WithDebugMode())
	}

	client, err := telego.NewBot(cfg.GetString("TELEGRAM_TOKEN"), options...)
	if err != nil {
		return nil, err
	}

	return &Bot{client: client, config: cfg, pool: pool, logger: logger}, nil
}

// Start polls updates and dispatches each one on the worker pool. The stream
// is re-opened after a fixed delay on any fatal polling failure; Start only
// returns when the context is canceled.
func (b *Bot) Start(ctx context.Context, dispatch DispatchFunc) {
	for {
		if ctx.Err() != nil {
			return
		}

		updates, err := b.client.UpdatesViaLongPolling(ctx, nil)
		if err != nil {
			b.logger.Error("long polling failed, reconnecting", "error", err, "delay", reconnectDelay)
			select {
			case <-ctx.Done():
				return
			case <-time.After(reconnectDelay):
			}
			continue
		}

		b.logger.Info("bot started, polling for updates")
		for update := range updates {
			upd := update
			if err := b.pool.Submit(func() { dispatch(ctx, b.client, upd) }); err != nil {
				b.logger.Warn("dropping update, worker pool closed", "error", err)
				return
			}
		}

		if ctx.Err() != nil {
			return
		}
		b.logger.Error("update stream closed, reconnecting", "delay", reconnectDelay)
		select {
		case <-ctx.Done():
			return
		case <-time.After(reconnectDelay):
		}
	}
}

// Client exposes the underlying bot client.
func (b *Bot) Client() *telego.Bot {
	return b.client
}

// GetMe retrieves bot info.
func (b *Bot) GetMe(ctx context.Context) (*telego.User, error) {
	return b.client.GetMe(ctx)
}

type telegoLogger struct {
	logger botpkg.Logger
}

func (l telegoLogger) Debugf(format string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(fmt.Sprintf(format, args...))
}

func (l telegoLogger) Errorf(format string, args ...any) {
	if l.logger == nil {
		return
	}
	l.logger.Error(fmt.Sprintf(format, args...))
}
