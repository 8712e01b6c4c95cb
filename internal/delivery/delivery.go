// Package delivery defines the inbound transports of the application.
package delivery

import "context"

// Delivery is implemented by every server that accepts external traffic.
// Implementations are collected by Fx and started together.
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
