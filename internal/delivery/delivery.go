// Package delivery defines the contract every transport entrypoint
// (storefront server, admin server, background watcher) implements.
package delivery

import "context"

// Delivery is a long-running entrypoint. Serve blocks until the delivery
// stops or fails; shutdown is driven by fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
