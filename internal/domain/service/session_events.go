package service

import (
	"context"

	"pantry/internal/domain/entity"

	"github.com/google/uuid"
)

// SessionEventPayload carries a session transition to subscribers.
type SessionEventPayload struct {
	// Event is the transition kind, SessionEventSignedIn or SessionEventSignedOut.
	Event entity.SessionEvent `json:"event"`
	// UserID identifies the affected user. Nil for sign-out events where the
	// session was already gone.
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

// Subscription is a handle to an active session event subscription.
// Cancelling it stops delivery; cancelling twice is safe.
type Subscription interface {
	// Cancel removes the subscriber. No events are delivered after it returns.
	Cancel()
}

// SessionEventBus defines the interface for broadcasting session transitions
// to interested components. Publishing never blocks on slow subscribers.
type SessionEventBus interface {
	// Publish broadcasts an event to all current subscribers.
	Publish(ctx context.Context, payload *SessionEventPayload)

	// Subscribe registers a handler for session events and returns a handle
	// that removes it. Handlers run on the bus's dispatch goroutine and must
	// not block.
	Subscribe(handler func(payload *SessionEventPayload)) Subscription

	// Close shuts the bus down and drops all subscribers.
	Close() error
}
