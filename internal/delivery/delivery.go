// Package delivery defines the contract that every transport adapter satisfies.
package delivery

import "context"

// Delivery is a long-running transport (e.g., an HTTP server) started by the
// composition root and stopped through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
