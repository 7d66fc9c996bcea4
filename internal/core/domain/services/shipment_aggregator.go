package services

import (
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

// ShipmentAggregator groups Ready for Shipping orders into shipments and keeps
// member orders in step with their shipment.
//
// Every method checks all of its preconditions before it changes anything.
type ShipmentAggregator struct{}

func NewShipmentAggregator() ShipmentAggregator {
	return ShipmentAggregator{}
}

// Assemble creates a Pending shipment for orders and attaches each of them.
//
// Details and the id list are validated first (ValidationError); then every
// order must be Ready for Shipping and not yet attached (NotShippable).
func (ShipmentAggregator) Assemble(
	id kernel.UUID,
	details shipment.Details,
	orders []*order.Order,
	createdAt time.Time,
) (*shipment.Shipment, error) {
	ids := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		ids = append(ids, o.ID())
	}

	sh, err := shipment.NewShipment(id, details, ids, createdAt)
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		if o.Status() != order.ReadyForShipping {
			return nil, errs.NewNotShippableError(o.ID(), fmt.Sprintf("is %s, not %s", o.Status(), order.ReadyForShipping))
		}
		if name := o.ShipmentName(); name != nil {
			return nil, errs.NewNotShippableError(o.ID(), fmt.Sprintf("already belongs to shipment %q", *name))
		}
	}

	for _, o := range orders {
		if err = o.AttachToShipment(sh.Name()); err != nil {
			return nil, err
		}
	}

	return sh, nil
}

// StartDelivery dispatches sh and moves every member from Ready for Shipping to Shipped.
func (ShipmentAggregator) StartDelivery(sh *shipment.Shipment, members []*order.Order) error {
	if err := ensureMembers(sh, members); err != nil {
		return err
	}
	if sh.Status() != shipment.Pending {
		return errs.NewInvalidStateError("shipment", sh.Status().String(), "start")
	}
	for _, o := range members {
		if o.Status() != order.ReadyForShipping {
			return errs.NewInvalidStateError("order "+o.ID().String(), o.Status().String(), "ship")
		}
	}

	if err := sh.Start(); err != nil {
		return err
	}
	for _, o := range members {
		if err := o.TransitionTo(order.Shipped); err != nil {
			return err
		}
	}
	return nil
}

// MarkDelivered confirms delivery of one member order while sh is In Transit.
func (ShipmentAggregator) MarkDelivered(sh *shipment.Shipment, o *order.Order) error {
	if err := sh.EnsureDeliverable(o.ID()); err != nil {
		return err
	}
	return o.TransitionTo(order.Delivered)
}

// Complete closes sh once every member order is Delivered. Members are not modified.
func (ShipmentAggregator) Complete(sh *shipment.Shipment, members []*order.Order) error {
	if err := ensureMembers(sh, members); err != nil {
		return err
	}

	undelivered := 0
	for _, o := range members {
		if o.Status() != order.Delivered {
			undelivered++
		}
	}
	return sh.Complete(undelivered)
}

// ensureMembers checks that members is exactly the member set of sh.
func ensureMembers(sh *shipment.Shipment, members []*order.Order) error {
	if err := sh.Validate(); err != nil {
		return err
	}

	expected := sh.OrderIDs()
	if len(members) != len(expected) {
		return errs.NewValueIsInvalidErrorWithCause("members",
			fmt.Errorf("shipment %q has %d orders, got %d", sh.Name(), len(expected), len(members)))
	}
	for _, o := range members {
		if err := o.Validate(); err != nil {
			return err
		}
		if !sh.Contains(o.ID()) {
			return errs.NewObjectNotFoundErrorWithCause("orderId", o.ID(),
				fmt.Errorf("order is not part of shipment %q", sh.Name()))
		}
	}
	return nil
}
