package usecase

import (
	"context"

	"pantry/internal/domain/entity"
)

// ConnectivityUsecase tracks whether the backing services are reachable.
// The machine starts uninitialized, moves through checking, and settles in
// ready (connected or not) or error. A missing backend configuration lands
// in the error phase instead of failing hard.
type ConnectivityUsecase interface {
	// Check probes the backend and updates the state. Safe to call from any
	// phase; concurrent calls collapse into one probe.
	Check(ctx context.Context) entity.ConnectivityState

	// Reconnect forces a fresh probe after a failure.
	Reconnect(ctx context.Context) entity.ConnectivityState

	// State returns a snapshot of the connectivity machine without probing.
	State() entity.ConnectivityState

	// Close detaches the session event subscription.
	Close() error
}
