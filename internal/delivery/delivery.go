// Package delivery defines the contract every transport entry point
// (HTTP server, background worker) satisfies so main can run them
// uniformly.
package delivery

import "context"

// Delivery is a long-running transport entry point. Serve blocks until
// the delivery stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
