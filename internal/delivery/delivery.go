// Package delivery contains the inbound adapters of the service.
package delivery

import "context"

// Delivery is a long-running inbound adapter such as an HTTP server. All
// deliveries are collected by the composition root and served concurrently.
type Delivery interface {
	Serve(ctx context.Context) error
}
