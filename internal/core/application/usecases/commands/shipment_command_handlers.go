package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
)

// ShipmentCommandHandler runs the delivery side of a shipment: dispatching it,
// confirming member deliveries and closing it. All three operations require a
// shipping role.
type ShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	gate       *access.Gate
	aggregator services.ShipmentAggregator
}

func NewShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	gate *access.Gate,
	aggregator services.ShipmentAggregator,
) ShipmentCommandHandler {
	return ShipmentCommandHandler{
		uowFactory: uowFactory,
		gate:       gate,
		aggregator: aggregator,
	}
}

// StartDelivery moves the shipment to In Transit and every member order to
// Shipped in one transaction.
func (h ShipmentCommandHandler) StartDelivery(ctx context.Context, cmd StartDeliveryCommand) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.gate.CanOperateShipment(cmd.Actor()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	orderRepo := uow.OrderRepository()

	sh, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	members, err := orderRepo.GetMany(ctx, sh.OrderIDs())
	if err != nil {
		return nil, err
	}

	if err = h.aggregator.StartDelivery(sh, members); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, sh); err != nil {
		return nil, err
	}

	for _, o := range members {
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = commit(ctx, uow); err != nil {
		return nil, err
	}

	return sh, nil
}

// MarkOrderDelivered moves one member order from Shipped to Delivered. The
// shipment itself is not written, only checked.
func (h ShipmentCommandHandler) MarkOrderDelivered(ctx context.Context, cmd MarkOrderDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.gate.CanOperateShipment(cmd.Actor()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sh, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	if err = sh.EnsureDeliverable(cmd.OrderID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.aggregator.MarkDelivered(sh, o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return commit(ctx, uow)
}

// CompleteShipment closes the shipment once every member order is Delivered,
// otherwise it fails with IncompleteDeliveries.
func (h ShipmentCommandHandler) CompleteShipment(
	ctx context.Context,
	cmd CompleteShipmentCommand,
) (*shipment.Shipment, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.gate.CanOperateShipment(cmd.Actor()); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	sh, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return nil, err
	}

	members, err := uow.OrderRepository().GetMany(ctx, sh.OrderIDs())
	if err != nil {
		return nil, err
	}

	if err = h.aggregator.Complete(sh, members); err != nil {
		return nil, err
	}

	if err = shipmentRepo.Update(ctx, sh); err != nil {
		return nil, err
	}

	if err = commit(ctx, uow); err != nil {
		return nil, err
	}

	return sh, nil
}
