// Package delivery defines the servers exposed by the binaries.
package delivery

import "context"

// Delivery is a long-running server started by fx and stopped through ctx cancellation.
type Delivery interface {
	Serve(ctx context.Context) error
}
