package telegram

import (
	"context"
	"testing"
	"time"

	"github.com/ananevdm/SpotInfoBot-Go/bot/worker"
	"github.com/mymmrac/telego"
)

func TestCleanerEnabled(t *testing.T) {
	tests := []struct {
		name  string
		delay int
		chat  telego.Chat
		want  bool
	}{
		{name: "disabled with zero delay", delay: 0, chat: telego.Chat{Type: "supergroup"}, want: false},
		{name: "private chat never cleaned", delay: 30, chat: telego.Chat{Type: "private"}, want: false},
		{name: "channel never cleaned", delay: 30, chat: telego.Chat{Type: "channel"}, want: false},
		{name: "group with delay", delay: 30, chat: telego.Chat{Type: "group"}, want: true},
		{name: "supergroup with delay", delay: 30, chat: telego.Chat{Type: "supergroup"}, want: true},
	}

	pool := worker.New(1)
	defer func() { _ = pool.Shutdown(context.Background()) }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaner := NewCleaner(context.Background(), tt.delay, pool, nil, nil)
			if got := cleaner.Enabled(tt.chat); got != tt.want {
				t.Errorf("Enabled(%s) = %v, want %v", tt.chat.Type, got, tt.want)
			}
		})
	}
}

func TestCleanerScheduleNoopWhenDisabled(t *testing.T) {
	// No pool: a disabled cleaner must return before touching it.
	cleaner := NewCleaner(context.Background(), 0, nil, nil, nil)
	cleaner.Schedule(nil, telego.Chat{ID: 1, Type: "group"}, 10, 11)

	cleaner = NewCleaner(context.Background(), 30, nil, nil, nil)
	cleaner.Schedule(nil, telego.Chat{ID: 1, Type: "private"}, 10)
}

func TestCleanerDeferredTaskHonorsAppShutdown(t *testing.T) {
	pool := worker.New(1)
	defer func() { _ = pool.Shutdown(context.Background()) }()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Canceled base context: the deferred task must exit before issuing
	// any delete, so a nil bot is never dereferenced.
	cleaner := NewCleaner(ctx, 1, pool, nil, nil)
	cleaner.Schedule(nil, telego.Chat{ID: 1, Type: "group"}, 10)

	time.Sleep(50 * time.Millisecond)
}

func TestCleanerPendingDeletesDoNotHoldWorkers(t *testing.T) {
	pool := worker.New(1)
	defer pool.StopNow()

	// Pending deletions wait out their delay off-pool; the single worker
	// must stay free for regular tasks the whole time.
	cleaner := NewCleaner(context.Background(), 3600, pool, nil, nil)
	for i := 0; i < 4; i++ {
		cleaner.Schedule(nil, telego.Chat{ID: int64(i + 1), Type: "group"}, 1)
	}

	done := make(chan struct{})
	if err := pool.Submit(func() { close(done) }); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("pool task stalled behind pending auto-deletes")
	}
}

func TestCleanerScheduleDoesNotBlock(t *testing.T) {
	pool := worker.New(1)
	defer pool.StopNow()

	cleaner := NewCleaner(context.Background(), 3600, pool, nil, nil)

	done := make(chan struct{})
	go func() {
		cleaner.Schedule(nil, telego.Chat{ID: 1, Type: "group"}, 1)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Schedule blocked the caller")
	}
}
