package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
)

// AllocationRepository stores consumed-pallet markers.
type AllocationRepository interface {
	// Get returns the marker for (orderID, lineItemID) or errs.ObjectNotFoundError.
	Get(ctx context.Context, orderID, lineItemID kernel.UUID) (*allocation.Commit, error)

	// Add stores a marker. A second marker for the same pair fails.
	Add(ctx context.Context, commit *allocation.Commit) error

	// PurgeSettled deletes markers of Delivered or Canceled orders committed
	// before cutoff and returns how many were removed.
	PurgeSettled(ctx context.Context, cutoff time.Time) (int64, error)
}
