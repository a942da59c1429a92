// Package delivery defines the inbound transport abstraction.
package delivery

import "context"

// Delivery is a long-running inbound server (HTTP today, possibly others
// later). Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
