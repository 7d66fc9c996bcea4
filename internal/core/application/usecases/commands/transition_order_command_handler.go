package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// TransitionOrderCommandHandler drives the order lifecycle.
//
// Pending -> Processing allocates every line item that is not allocated yet
// inside the same transaction. Any allocation failure (NoStockLocation,
// InsufficientStock, StaleAllocation) aborts the whole transition: the order
// stays Pending and no pallet changes.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory, access.NewGate(), services.NewPalletAllocator())
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInsufficientStock) {
//	    // show the shortage to the picker
//	}
type TransitionOrderCommandHandler struct {
	uowFactory AllocationUoWFactory
	gate       *access.Gate
	allocator  lineItemAllocator
}

func NewTransitionOrderCommandHandler(
	uowFactory AllocationUoWFactory,
	gate *access.Gate,
	allocator services.PalletAllocator,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		allocator:  lineItemAllocator{allocator: allocator},
	}
}

func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
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

	if err = h.gate.CanTransition(cmd.Actor(), o, cmd.Target()); err != nil {
		return nil, err
	}

	// Reject illegal targets before any stock is touched.
	if _, err = o.Status().TransitionTo(cmd.Target()); err != nil {
		return nil, err
	}

	// Members of a shipment are shipped and delivered through the shipment commands only.
	if name := o.ShipmentName(); name != nil && (cmd.Target() == order.Shipped || cmd.Target() == order.Delivered) {
		verb := "ship"
		if cmd.Target() == order.Delivered {
			verb = "deliver"
		}
		return nil, errs.NewInvalidStateError(
			"order of shipment "+*name,
			o.Status().String(),
			"individually "+verb,
		)
	}

	if cmd.Target() == order.Processing {
		for _, item := range o.UnallocatedLineItems() {
			if _, _, err = h.allocator.allocate(ctx, uow, o, item.ID()); err != nil {
				return nil, err
			}
		}
	}

	if err = o.TransitionTo(cmd.Target()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = commit(ctx, uow); err != nil {
		return nil, err
	}

	return o, nil
}
