package telegram

import (
	"context"
	"time"

	botpkg "github.com/ananevdm/SpotInfoBot-Go/bot"
	"github.com/ananevdm/SpotInfoBot-Go/bot/worker"
	"github.com/mymmrac/telego"
	"golang.org/x/sync/errgroup"
)

// Cleaner removes the triggering message and the bot's replies after a
// configurable delay. It only acts in group-class conversations; one-to-one
// chats are never auto-cleaned.
type Cleaner struct {
	delay  time.Duration
	pool   *worker.Pool
	rl     *RateLimiter
	logger botpkg.Logger

	// base bounds deferred deletions by the application lifetime, not the
	// handler that scheduled them.
	base context.Context
}

// NewCleaner creates a Cleaner. A zero delay disables it.
func NewCleaner(ctx context.Context, delaySeconds int, pool *worker.Pool, rl *RateLimiter, logger botpkg.Logger) *Cleaner {
	return &Cleaner{
		delay:  time.Duration(delaySeconds) * time.Second,
		pool:   pool,
		rl:     rl,
		logger: logger,
		base:   ctx,
	}
}

// Enabled reports whether auto-deletion applies to the given chat.
func (c *Cleaner) Enabled(chat telego.Chat) bool {
	if c == nil || c.delay <= 0 {
		return false
	}
	return chat.Type == "group" || chat.Type == "supergroup"
}

// Schedule queues a deferred deletion of the given messages. It is
// fire-and-forget: the caller returns immediately and the deferred task may
// outlive it. The delay wait runs on its own goroutine so a pending deletion
// never holds a pool worker; only the delete fan-out is pool work. Deletion
// failures are logged and swallowed.
func (c *Cleaner) Schedule(b *telego.Bot, chat telego.Chat, messageIDs ...int) {
	if !c.Enabled(chat) || len(messageIDs) == 0 {
		return
	}

	ids := make([]int, len(messageIDs))
	copy(ids, messageIDs)

	go func() {
		select {
		case <-c.base.Done():
			return
		case <-time.After(c.delay):
		}

		err := c.pool.Submit(func() { c.deleteAll(b, chat, ids) })
		if err != nil && c.logger != nil {
			c.logger.Warn("auto-delete not scheduled", "chat_id", chat.ID, "error", err)
		}
	}()
}

func (c *Cleaner) deleteAll(b *telego.Bot, chat telego.Chat, ids []int) {
	var group errgroup.Group
	for _, id := range ids {
		messageID := id
		group.Go(func() error {
			err := DeleteMessageWithRetry(c.base, c.rl, b, &telego.DeleteMessageParams{
				ChatID:    telego.ChatID{ID: chat.ID},
				MessageID: messageID,
			})
			if err != nil && c.logger != nil {
				c.logger.Warn("auto-delete failed", "chat_id", chat.ID, "message_id", messageID, "error", err)
			}
			return nil
		})
	}
	_ = group.Wait()
}
