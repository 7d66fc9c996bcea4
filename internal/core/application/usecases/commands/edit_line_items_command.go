package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrEditLineItemsCommandIsNotConstructed = errors.New(
	"EditLineItemsCommand must be created via NewEditLineItemsCommand constructor",
)

// EditLineItemsCommand replaces the line items of a Pending order.
type EditLineItemsCommand struct { //nolint:recvcheck //using for validation
	actor     access.Actor
	orderID   kernel.UUID
	lineItems []LineItemSpec

	guard guard.ConstructorGuard
}

// NewEditLineItemsCommand rejects malformed line items before anything is loaded.
func NewEditLineItemsCommand(actor access.Actor, orderID kernel.UUID, lineItems []LineItemSpec) (EditLineItemsCommand, error) {
	_, itemsErr := buildLineItems(lineItems)
	if err := errors.Join(orderID.Validate(), itemsErr); err != nil {
		return EditLineItemsCommand{}, err
	}

	return EditLineItemsCommand{
		actor:     actor,
		orderID:   orderID,
		lineItems: append([]LineItemSpec(nil), lineItems...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c EditLineItemsCommand) Validate() error {
	return c.guard.Validate(ErrEditLineItemsCommandIsNotConstructed)
}

func (c EditLineItemsCommand) Actor() access.Actor {
	return c.actor
}

func (c EditLineItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c EditLineItemsCommand) LineItems() []LineItemSpec {
	return append([]LineItemSpec(nil), c.lineItems...)
}
