// Package delivery defines the contract every transport entry point of the
// process implements, so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker) started by main.
type Delivery interface {
	Serve(ctx context.Context) error
}
