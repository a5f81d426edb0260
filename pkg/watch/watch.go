// Package watch implements the snapshot fan-out used by every store. Each
// subscriber gets the full sequence of snapshots in commit order: sends never
// block the mutating side and are never dropped or coalesced.
package watch

import (
	"context"
	"sync"
)

// Feed broadcasts values of type T to any number of subscribers.
// The zero value is ready to use.
type Feed[T any] struct {
	mu   sync.Mutex
	subs map[int64]*subscriber[T]
	next int64
}

type subscriber[T any] struct {
	mu      sync.Mutex
	pending []T
	wake    chan struct{}
	done    <-chan struct{}
}

// Subscribe returns a channel that receives every value published after the
// call, in publish order. The channel closes once ctx is done. Callers that
// stop reading do not block publishers; deliveries queue until read.
func (f *Feed[T]) Subscribe(ctx context.Context) <-chan T {
	sub := &subscriber[T]{
		wake: make(chan struct{}, 1),
		done: ctx.Done(),
	}

	f.mu.Lock()
	if f.subs == nil {
		f.subs = make(map[int64]*subscriber[T])
	}
	id := f.next
	f.next++
	f.subs[id] = sub
	f.mu.Unlock()

	out := make(chan T)
	go func() {
		defer close(out)
		defer func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
		}()
		for {
			sub.mu.Lock()
			pending := sub.pending
			sub.pending = nil
			sub.mu.Unlock()

			for _, v := range pending {
				select {
				case out <- v:
				case <-sub.done:
					return
				}
			}

			select {
			case <-sub.wake:
			case <-sub.done:
				return
			}
		}
	}()
	return out
}

// Publish queues v for every current subscriber. It only appends to
// per-subscriber queues and never blocks, so stores call it while still
// holding their own mutex: the commit and its notification stay atomic and
// watchers see snapshots in commit order.
func (f *Feed[T]) Publish(v T) {
	f.mu.Lock()
	subs := make([]*subscriber[T], 0, len(f.subs))
	for _, sub := range f.subs {
		subs = append(subs, sub)
	}
	f.mu.Unlock()

	for _, sub := range subs {
		sub.mu.Lock()
		sub.pending = append(sub.pending, v)
		sub.mu.Unlock()
		select {
		case sub.wake <- struct{}{}:
		default:
		}
	}
}
