package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/services"
)

// AllocateLineItemCommandHandler allocates one line item in its own
// transaction. Repeating the call for an allocated line item returns the
// original marker and writes nothing.
type AllocateLineItemCommandHandler struct {
	uowFactory AllocationUoWFactory
	gate       *access.Gate
	allocator  lineItemAllocator
}

func NewAllocateLineItemCommandHandler(
	uowFactory AllocationUoWFactory,
	gate *access.Gate,
	allocator services.PalletAllocator,
) AllocateLineItemCommandHandler {
	return AllocateLineItemCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		allocator:  lineItemAllocator{allocator: allocator},
	}
}

func (h AllocateLineItemCommandHandler) Handle(
	ctx context.Context,
	cmd AllocateLineItemCommand,
) (*allocation.Commit, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.gate.CanAllocate(cmd.Actor(), o); err != nil {
		return nil, err
	}

	marker, created, err := h.allocator.allocate(ctx, uow, o, cmd.LineItemID())
	if err != nil {
		return nil, err
	}
	if !created {
		return marker, nil
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = commit(ctx, uow); err != nil {
		return nil, err
	}

	return marker, nil
}
