package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/order"
)

// CancelOrderCommandHandler cancels orders. Only Pending orders without any
// allocation can be canceled, so there is never stock to give back.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gate       *access.Gate
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, gate *access.Gate) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if err = h.gate.CanTransition(cmd.Actor(), o, order.Canceled); err != nil {
		return nil, err
	}

	if err = o.Cancel(); err != nil {
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
