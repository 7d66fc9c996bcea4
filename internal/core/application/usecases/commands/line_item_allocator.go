package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// lineItemAllocator runs one allocation against the store inside an open
// unit of work:
//
//  1. an existing consumed marker is returned as is
//  2. pallets of the product are ranked and the best one is consumed
//  3. the pallet write is a compare-and-swap on the quantity read in step 2
//  4. the marker is stored and the line item marked allocated
type lineItemAllocator struct {
	allocator services.PalletAllocator
}

// allocate returns the marker and whether it was created by this call.
func (a lineItemAllocator) allocate(
	ctx context.Context,
	uow AllocationUoW,
	o *order.Order,
	lineItemID kernel.UUID,
) (*allocation.Commit, bool, error) {
	allocationRepo := uow.AllocationRepository()

	existing, err := allocationRepo.Get(ctx, o.ID(), lineItemID)
	switch {
	case err == nil:
		return existing, false, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return nil, false, err
	}

	item, err := o.LineItem(lineItemID)
	if err != nil {
		return nil, false, err
	}

	palletRepo := uow.PalletRepository()

	candidates, err := palletRepo.GetByProduct(ctx, item.ProductID())
	if err != nil {
		return nil, false, err
	}

	marker, consumed, err := a.allocator.Allocate(o, lineItemID, candidates)
	if err != nil {
		return nil, false, err
	}

	if err = palletRepo.UpdateIfUnchanged(ctx, consumed, marker.QuantityBefore()); err != nil {
		return nil, false, err
	}

	if err = allocationRepo.Add(ctx, marker); err != nil {
		return nil, false, err
	}

	return marker, true, nil
}
