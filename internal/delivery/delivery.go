// Package delivery defines the entry points that expose the application to
// the outside world (HTTP server, cron scheduler).
package delivery

import "context"

// Delivery is a long-running entry point started by the application runtime.
type Delivery interface {
	// Serve runs the delivery until the context is cancelled or a fatal
	// error occurs.
	Serve(ctx context.Context) error
}
