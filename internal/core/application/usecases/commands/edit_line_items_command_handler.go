package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/order"
)

// EditLineItemsCommandHandler replaces line items and recomputes totals.
// Staff with order processing roles may edit any order; customers only their own.
type EditLineItemsCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       *access.Gate
}

func NewEditLineItemsCommandHandler(uowFactory OrderUoWFactory, gate *access.Gate) EditLineItemsCommandHandler {
	return EditLineItemsCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

// Handle fails with Forbidden, NotFound, or InvalidState (order not Pending
// or already partially allocated); the order is unchanged in every case.
func (h EditLineItemsCommandHandler) Handle(ctx context.Context, cmd EditLineItemsCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := buildLineItems(cmd.lineItems)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = h.gate.CanEditLineItems(cmd.Actor(), o); err != nil {
		return nil, err
	}

	if err = o.EditLineItems(items); err != nil {
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
