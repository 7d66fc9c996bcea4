package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrStartDeliveryCommandIsNotConstructed = errors.New(
		"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
	)
	ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
		"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
	)
	ErrCompleteShipmentCommandIsNotConstructed = errors.New(
		"CompleteShipmentCommand must be created via NewCompleteShipmentCommand constructor",
	)
)

// StartDeliveryCommand dispatches a Pending shipment.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor      access.Actor
	shipmentID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewStartDeliveryCommand(actor access.Actor, shipmentID kernel.UUID) (StartDeliveryCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return StartDeliveryCommand{}, err
	}
	return StartDeliveryCommand{actor: actor, shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

func (c StartDeliveryCommand) Actor() access.Actor {
	return c.actor
}

func (c StartDeliveryCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// MarkOrderDeliveredCommand confirms delivery of one member order.
type MarkOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	actor      access.Actor
	shipmentID kernel.UUID
	orderID    kernel.UUID
	guard      guard.ConstructorGuard
}

func NewMarkOrderDeliveredCommand(actor access.Actor, shipmentID, orderID kernel.UUID) (MarkOrderDeliveredCommand, error) {
	if err := errors.Join(shipmentID.Validate(), orderID.Validate()); err != nil {
		return MarkOrderDeliveredCommand{}, err
	}
	return MarkOrderDeliveredCommand{
		actor:      actor,
		shipmentID: shipmentID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

func (c MarkOrderDeliveredCommand) Actor() access.Actor {
	return c.actor
}

func (c MarkOrderDeliveredCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c MarkOrderDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CompleteShipmentCommand closes an In Transit shipment.
type CompleteShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      access.Actor
	shipmentID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewCompleteShipmentCommand(actor access.Actor, shipmentID kernel.UUID) (CompleteShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return CompleteShipmentCommand{}, err
	}
	return CompleteShipmentCommand{actor: actor, shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func (c CompleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCompleteShipmentCommandIsNotConstructed)
}

func (c CompleteShipmentCommand) Actor() access.Actor {
	return c.actor
}

func (c CompleteShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}
