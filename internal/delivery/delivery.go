// Package delivery defines the contract every transport entrypoint
// implements.
package delivery

import "context"

// Delivery is a transport serving the application until its context is
// canceled or shutdown is requested through the lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
