// Package delivery defines the contract every transport adapter fulfills.
package delivery

import "context"

// Delivery is a serving surface of the application. The main goroutine blocks
// on Serve until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
