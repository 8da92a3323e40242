package service

import (
	"context"
	"sync"
	"time"
)

const (
	// keyBuffer bounds each key's pending event queue.
	keyBuffer = 32
	// workerIdle is how long a key's worker lingers after its queue drains
	// before retiring. Addresses stop producing events once their charge
	// settles, so workers must not outlive the burst that created them.
	workerIdle = 2 * time.Minute
)

// keyQueue is one key's event queue. senders counts dispatches that hold a
// reference to the channel; a worker only retires when the queue is empty
// and no send is in flight.
type keyQueue[T any] struct {
	ch      chan T
	senders int
}

// Dispatcher runs handlers serially per key and concurrently across keys.
// Both settlement event loops feed it so a slow webhook for one charge
// cannot delay unrelated charges, while events for the same key are still
// applied in the order they arrived. Idle workers retire and are recreated
// on the next event for their key.
type Dispatcher[T any] struct {
	mu      sync.Mutex
	queues  map[string]*keyQueue[T]
	handler func(context.Context, T)
	idle    time.Duration
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher invoking handler for every dispatched
// event.
func NewDispatcher[T any](handler func(context.Context, T)) *Dispatcher[T] {
	return &Dispatcher[T]{
		queues:  make(map[string]*keyQueue[T]),
		handler: handler,
		idle:    workerIdle,
	}
}

// Dispatch enqueues event for key, starting the key's worker on first use.
// Blocks only when that key's queue is full — other keys are unaffected.
func (d *Dispatcher[T]) Dispatch(ctx context.Context, key string, event T) {
	d.mu.Lock()
	q, ok := d.queues[key]
	if !ok {
		q = &keyQueue[T]{ch: make(chan T, keyBuffer)}
		d.queues[key] = q
		d.wg.Add(1)
		go d.run(ctx, key, q)
	}
	q.senders++
	d.mu.Unlock()

	select {
	case q.ch <- event:
	case <-ctx.Done():
	}

	d.mu.Lock()
	q.senders--
	d.mu.Unlock()
}

func (d *Dispatcher[T]) run(ctx context.Context, key string, q *keyQueue[T]) {
	defer d.wg.Done()
	idle := time.NewTimer(d.idle)
	defer idle.Stop()
	for {
		select {
		case event := <-q.ch:
			d.handler(ctx, event)
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(d.idle)
		case <-ctx.Done():
			return
		case <-idle.C:
			d.mu.Lock()
			if len(q.ch) == 0 && q.senders == 0 {
				delete(d.queues, key)
				d.mu.Unlock()
				return
			}
			d.mu.Unlock()
			idle.Reset(d.idle)
		}
	}
}

// Wait blocks until all key workers have retired or observed context
// cancellation.
func (d *Dispatcher[T]) Wait() {
	d.wg.Wait()
}
