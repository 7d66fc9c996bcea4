package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
)

// CreateShipmentCommandHandler assembles a shipment from Ready for Shipping
// orders and records the shipment name on each member order.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gate       *access.Gate
	aggregator services.ShipmentAggregator
}

func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	gate *access.Gate,
	aggregator services.ShipmentAggregator,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		aggregator: aggregator,
	}
}

// Handle fails with NotFound for unknown orders and NotShippable when an order
// is not Ready for Shipping or already belongs to a shipment.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.gate.CanCreateShipment(cmd.Actor()); err != nil {
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

	orders, err := orderRepo.GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return nil, err
	}

	sh, err := h.aggregator.Assemble(cmd.ShipmentID(), cmd.Details(), orders, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.ShipmentRepository().Add(ctx, sh); err != nil {
		return nil, err
	}

	for _, o := range orders {
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = commit(ctx, uow); err != nil {
		return nil, err
	}

	return sh, nil
}
