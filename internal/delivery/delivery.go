// Package delivery holds the transports that expose the shop: the storefront
// API and the notification worker.
package delivery

import "context"

// Delivery is a long-running server started by the fx application.
type Delivery interface {
	Serve(ctx context.Context) error
}
