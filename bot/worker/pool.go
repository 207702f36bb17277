package worker

import (
	"context"
	"errors"
	"sync"
)

var ErrPoolClosed = errors.New("worker pool closed")

// Pool provides bounded concurrency execution. Update handlers and deferred
// cleanup tasks run on it so a burst of chat events cannot spawn unbounded
// goroutines.
type Pool struct {
	tasks    chan func()
	wg       sync.WaitGroup
	shutdown chan struct{}
	mu       sync.Mutex
	closed   bool
	size     int
}

// New creates a worker pool with the given size.
func New(size int) *Pool {
	if size <= 0 {
		size = 1
	}

	queueSize := size * 8
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		tasks:    make(chan func(), queueSize),
		shutdown: make(chan struct{}),
		size:     size,
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.run()
	}

	return p
}

// run executes tasks until shutdown, then drains whatever is still queued.
// The tasks channel is never closed, so a Submit racing shutdown enqueues
// harmlessly instead of panicking.
func (p *Pool) run() {
	defer p.wg.Done()
	for {
		select {
		case task := <-p.tasks:
			if task != nil {
				task()
			}
		case <-p.shutdown:
			for {
				select {
				case task := <-p.tasks:
					if task != nil {
						task()
					}
				default:
					return
				}
			}
		}
	}
}

// Submit enqueues a task for execution.
func (p *Pool) Submit(task func()) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.mu.Unlock()

	select {
	case <-p.shutdown:
		return ErrPoolClosed
	case p.tasks <- task:
		return nil
	}
}

// Shutdown waits for in-flight tasks until context is done.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.close()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// StopNow closes the pool without waiting for tasks to finish.
func (p *Pool) StopNow() {
	p.close()
}

func (p *Pool) close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.shutdown)
	}
	p.mu.Unlock()
}

// Size returns the worker count.
func (p *Pool) Size() int {
	return p.size
}
