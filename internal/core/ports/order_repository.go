// Package ports defines the contracts between the application core and its
// adapters: persistence, read views, and bill rendering.
package ports

import (
	"context"

	"kirana/internal/core/domain/model/kernel"
	"kirana/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must treat an order row and its item rows as a single
// logical unit: a create or item replacement that only half-completes must
// surface a PersistenceFailedError instead of reporting success.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	// The order's identifier must have been generated against the current
	// existing-ID set inside the same unit of work.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the aggregate's status and total.
	// Returns ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// ReplaceItems atomically removes all stored line items for the
	// aggregate's identifier and inserts the aggregate's current item set.
	ReplaceItems(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its line items.
	// Returns ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// Exists reports whether an order with the given identifier is stored.
	// Used by identifier generation inside the create unit of work.
	Exists(ctx context.Context, id kernel.OrderID) (bool, error)
}
