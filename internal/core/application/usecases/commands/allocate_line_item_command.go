package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAllocateLineItemCommandIsNotConstructed = errors.New(
	"AllocateLineItemCommand must be created via NewAllocateLineItemCommand constructor",
)

// AllocateLineItemCommand picks stock for a single line item, the way the
// picking screen processes one product at a time.
type AllocateLineItemCommand struct { //nolint:recvcheck //using for validation
	actor      access.Actor
	orderID    kernel.UUID
	lineItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAllocateLineItemCommand(actor access.Actor, orderID, lineItemID kernel.UUID) (AllocateLineItemCommand, error) {
	if err := errors.Join(orderID.Validate(), lineItemID.Validate()); err != nil {
		return AllocateLineItemCommand{}, err
	}

	return AllocateLineItemCommand{
		actor:      actor,
		orderID:    orderID,
		lineItemID: lineItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AllocateLineItemCommand) Validate() error {
	return c.guard.Validate(ErrAllocateLineItemCommandIsNotConstructed)
}

func (c AllocateLineItemCommand) Actor() access.Actor {
	return c.actor
}

func (c AllocateLineItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AllocateLineItemCommand) LineItemID() kernel.UUID {
	return c.lineItemID
}
