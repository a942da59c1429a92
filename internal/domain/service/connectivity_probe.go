package service

import (
	"context"
	"errors"
)

// ErrProbeNotConfigured is returned by Ping when the probe has no backing
// connection to check. It distinguishes "nothing to connect to" from an
// ordinary failed round-trip.
var ErrProbeNotConfigured = errors.New("connectivity probe is not configured")

// ConnectivityProbe defines the interface for checking whether the backing
// store is reachable. Implementations must return an error rather than
// panicking when the connection is misconfigured or down, so callers can
// surface a degraded state instead of crashing.
type ConnectivityProbe interface {
	// Ping performs a lightweight round-trip against the backing store.
	Ping(ctx context.Context) error
}
