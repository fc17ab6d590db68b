// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a long-running transport endpoint (HTTP API, Pub/Sub worker).
// Implementations register an fx OnStop hook for graceful shutdown; Serve
// blocks until the server exits.
type Delivery interface {
	Serve(ctx context.Context) error
}
