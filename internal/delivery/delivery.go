// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
// Serve blocks until the server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
