// Package ports defines the contracts between the fulfillment core and its
// infrastructure: repositories, the unit of work and outbound event publishing.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their line items.
type OrderRepository interface {
	// Add persists a new order with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The write is a
	// compare-and-swap on the version read with the order; a concurrent
	// change fails with errs.VersionIsInvalidError and writes nothing.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany retrieves orders in the order of ids.
	// Returns errs.ObjectNotFoundError naming the first missing id.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)
}
