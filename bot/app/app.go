package app

import (
	"context"
	"fmt"
	"time"

	"github.com/ananevdm/SpotInfoBot-Go/bot/config"
	logpkg "github.com/ananevdm/SpotInfoBot-Go/bot/logger"
	"github.com/ananevdm/SpotInfoBot-Go/bot/spotify"
	"github.com/ananevdm/SpotInfoBot-Go/bot/telegram"
	"github.com/ananevdm/SpotInfoBot-Go/bot/telegram/handler"
	"github.com/ananevdm/SpotInfoBot-Go/bot/worker"
	"github.com/mymmrac/telego"
)

// App wires all application dependencies.
type App struct {
	Config   *config.Config
	Logger   *logpkg.Logger
	Pool     *worker.Pool
	Telegram *telegram.Bot
	Router   *handler.Router
}

// New builds the application container. Missing credentials are a fatal
// startup condition; an invalid auto-delete delay only disables the feature.
func New(ctx context.Context, configPath string) (*App, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	log, err := logpkg.New(conf.GetString("LogLevel"), conf.GetString("LogFormat"))
	if err != nil {
		return nil, err
	}

	autoDeleteDelay, ok := conf.AutoDeleteDelay()
	if !ok {
		log.Warn("invalid AUTO_DELETE_DELAY value, auto-delete disabled", "value", conf.GetString("AUTO_DELETE_DELAY"))
	} else if autoDeleteDelay > 0 {
		log.Info("auto-delete enabled", "delay_seconds", autoDeleteDelay)
	}

	pool := worker.New(conf.GetInt("WorkerPoolSize"))

	tele, err := telegram.New(conf, pool, log)
	if err != nil {
		return nil, fmt.Errorf("init telegram: %w", err)
	}

	rateLimiter := telegram.NewRateLimiter(conf.GetFloat64("RateLimitPerSecond"), conf.GetInt("RateLimitBurst"))
	rateLimiter.SetLogger(log)

	dispatcher := &telegram.Dispatcher{RateLimiter: rateLimiter, Logger: log}
	cleaner := telegram.NewCleaner(ctx, autoDeleteDelay, pool, rateLimiter, log)

	tokens := spotify.NewTokenProvider(conf.GetString("SPOTIFY_CLIENT_ID"), conf.GetString("SPOTIFY_CLIENT_SECRET"))
	client := spotify.NewClient(tokens, log)
	fetcher := spotify.NewFetcher(client, log)
	resolver := spotify.NewResolver(log)

	router := &handler.Router{
		Help: &handler.HelpHandler{RateLimiter: rateLimiter},
		Music: &handler.MusicHandler{
			Fetcher:    fetcher,
			Resolver:   resolver,
			Dispatcher: dispatcher,
			Cleaner:    cleaner,
			Logger:     log,
		},
		Inline: &handler.InlineHandler{
			Fetcher:     fetcher,
			Resolver:    resolver,
			RateLimiter: rateLimiter,
			Logger:      log,
		},
		Logger: log,
	}

	return &App{
		Config:   conf,
		Logger:   log,
		Pool:     pool,
		Telegram: tele,
		Router:   router,
	}, nil
}

// Start begins polling for updates.
func (a *App) Start(ctx context.Context) error {
	meCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	me, err := a.Telegram.GetMe(meCtx)
	if err != nil {
		a.Logger.Error("getMe failed", "error", err)
	}
	if me != nil {
		a.Router.BotName = me.Username
	}

	_ = a.Telegram.Client().SetMyCommands(ctx, &telego.SetMyCommandsParams{
		Commands: []telego.BotCommand{
			{Command: "help", Description: "Как пользоваться ботом"},
		},
	})

	go a.Telegram.Start(ctx, a.Router.Dispatch)
	return nil
}

// Shutdown releases resources.
func (a *App) Shutdown(ctx context.Context) error {
	var firstErr error

	if a.Pool != nil {
		if err := a.Pool.Shutdown(ctx); err != nil {
			a.Pool.StopNow()
			if firstErr == nil {
				firstErr = fmt.Errorf("shutdown worker pool: %w", err)
			}
		}
	}

	if a.Logger != nil {
		if err := a.Logger.Close(); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("close logger: %w", err)
			}
		}
	}

	return firstErr
}
