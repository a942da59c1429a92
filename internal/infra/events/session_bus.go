// Package events provides the in-process implementation of the session event bus.
package events

import (
	"context"
	"log/slog"
	"sync"

	"pantry/internal/domain/service"
)

// publishBuffer bounds the dispatch queue. Publishing to a full queue drops
// the event with a warning instead of blocking the caller.
const publishBuffer = 64

// sessionBus is an in-process implementation of the SessionEventBus interface.
// Events are dispatched on a single goroutine so subscribers observe sign-in
// and sign-out transitions in publish order.
type sessionBus struct {
	logger *slog.Logger

	mu          sync.Mutex
	subscribers map[uint64]func(payload *service.SessionEventPayload)
	nextID      uint64
	closed      bool

	queue chan *service.SessionEventPayload
	done  chan struct{}
}

// NewSessionBus creates the bus and starts its dispatch goroutine.
func NewSessionBus(logger *slog.Logger) service.SessionEventBus {
	bus := &sessionBus{
		logger:      logger,
		subscribers: make(map[uint64]func(payload *service.SessionEventPayload)),
		queue:       make(chan *service.SessionEventPayload, publishBuffer),
		done:        make(chan struct{}),
	}

	go bus.dispatch()

	return bus
}

// Publish broadcasts an event to all current subscribers without blocking.
func (b *sessionBus) Publish(ctx context.Context, payload *service.SessionEventPayload) {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return
	}

	select {
	case b.queue <- payload:
	default:
		b.logger.WarnContext(ctx, "session event queue full, dropping event",
			slog.String("event", string(payload.Event)))
	}
}

// Subscribe registers a handler and returns a handle that removes it.
func (b *sessionBus) Subscribe(handler func(payload *service.SessionEventPayload)) service.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	if !b.closed {
		b.subscribers[id] = handler
	}

	return &subscription{bus: b, id: id}
}

// Close stops the dispatch goroutine and drops all subscribers.
func (b *sessionBus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()

		return nil
	}
	b.closed = true
	b.subscribers = make(map[uint64]func(payload *service.SessionEventPayload))
	b.mu.Unlock()

	close(b.done)

	return nil
}

func (b *sessionBus) dispatch() {
	for {
		select {
		case payload := <-b.queue:
			b.mu.Lock()
			handlers := make([]func(payload *service.SessionEventPayload), 0, len(b.subscribers))
			for _, handler := range b.subscribers {
				handlers = append(handlers, handler)
			}
			b.mu.Unlock()

			for _, handler := range handlers {
				handler(payload)
			}
		case <-b.done:
			return
		}
	}
}

// subscription implements the Subscription handle for sessionBus.
type subscription struct {
	bus  *sessionBus
	id   uint64
	once sync.Once
}

// Cancel removes the subscriber. Safe to call more than once.
func (s *subscription) Cancel() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		defer s.bus.mu.Unlock()

		delete(s.bus.subscribers, s.id)
	})
}
