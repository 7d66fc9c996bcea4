package services

import (
	"cmp"
	"slices"
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/pallet"
	"fulfillment/internal/pkg/errs"
)

// PalletAllocator selects the pallet a line item is taken from and applies the
// decrement in memory. Persisting the result (with a compare-and-swap on the
// pallet) is the caller's job.
//
// Selection order:
//   - stored pallets before any other status
//   - then pallets with a resolved storage position
//   - then larger quantity first
//
// Ties keep the order the pallets were given in. Only the first candidate is
// considered; a line item is never split across pallets.
//
// Example usage:
//
//	allocator := services.NewPalletAllocator()
//	commit, p, err := allocator.Allocate(o, lineItemID, palletsForProduct)
//	if errors.Is(err, errs.ErrInsufficientStock) {
//	    // the best pallet does not hold enough
//	}
type PalletAllocator struct {
	now func() time.Time
}

// NewPalletAllocator creates a PalletAllocator stamping commits with the current UTC time.
func NewPalletAllocator() PalletAllocator {
	return PalletAllocator{now: func() time.Time { return time.Now().UTC() }}
}

// Rank returns the pallets of productID in allocation order. The input is not modified.
func (a PalletAllocator) Rank(productID kernel.ProductID, pallets []*pallet.Pallet) []*pallet.Pallet {
	ranked := make([]*pallet.Pallet, 0, len(pallets))
	for _, p := range pallets {
		if p.Validate() == nil && p.ProductID() == productID {
			ranked = append(ranked, p)
		}
	}

	slices.SortStableFunc(ranked, func(x, y *pallet.Pallet) int {
		if c := preferTrue(x.IsStored(), y.IsStored()); c != 0 {
			return c
		}
		if c := preferTrue(x.HasResolvedPosition(), y.HasResolvedPosition()); c != 0 {
			return c
		}
		return cmp.Compare(y.Quantity(), x.Quantity())
	})

	return ranked
}

// Allocate takes the requested quantity of the line item from the best
// candidate pallet.
//
// Returns the consumed-pallet marker and the modified pallet. Fails with
//   - InvalidState if the order is not Pending or Processing or the item is already allocated
//   - NoStockLocation if no pallet holds the product
//   - InsufficientStock if the best pallet holds less than requested
//
// On failure neither the order nor any pallet is modified.
func (a PalletAllocator) Allocate(
	o *order.Order,
	lineItemID kernel.UUID,
	candidates []*pallet.Pallet,
) (*allocation.Commit, *pallet.Pallet, error) {
	if err := o.Validate(); err != nil {
		return nil, nil, err
	}
	if !o.Status().IsAllocatable() {
		return nil, nil, errs.NewInvalidStateError("order", o.Status().String(), "allocate line items of")
	}

	item, err := o.LineItem(lineItemID)
	if err != nil {
		return nil, nil, err
	}
	if item.IsAllocated() {
		return nil, nil, errs.NewInvalidStateError("line item "+item.ID().String(), "allocated", "allocate")
	}

	ranked := a.Rank(item.ProductID(), candidates)
	if len(ranked) == 0 {
		return nil, nil, errs.NewNoStockLocationError(item.ProductID())
	}
	best := ranked[0]

	before := best.Quantity()
	if err = best.Consume(item.Quantity()); err != nil {
		return nil, nil, err
	}

	commit, err := allocation.NewCommit(o.ID(), item.ID(), best.ID(), item.ProductID(), item.Quantity(), before, a.now())
	if err != nil {
		return nil, nil, err
	}

	if err = o.AllocateLineItem(item.ID(), best.ID()); err != nil {
		return nil, nil, err
	}

	return commit, best, nil
}

// preferTrue orders true before false.
func preferTrue(x, y bool) int {
	switch {
	case x == y:
		return 0
	case x:
		return -1
	default:
		return 1
	}
}
