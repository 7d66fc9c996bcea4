package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand groups Ready for Shipping orders into a new shipment.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(actor, kernel.NewUUID(), shipment.Details{
//	    Name: "North run 14", Origin: "Main warehouse", Destination: "Portland hub",
//	    EmployeeID: "emp-31", Type: "Truck",
//	}, []kernel.UUID{firstOrderID, secondOrderID})
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	actor      access.Actor
	shipmentID kernel.UUID
	details    shipment.Details
	orderIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand fails with a validation error for an empty or
// duplicated order list and for a blank name, destination or employee.
func NewCreateShipmentCommand(
	actor access.Actor,
	shipmentID kernel.UUID,
	details shipment.Details,
	orderIDs []kernel.UUID,
) (CreateShipmentCommand, error) {
	if err := errors.Join(
		shipmentID.Validate(),
		validateShipmentDetails(details),
		validateOrderIDs(orderIDs),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return CreateShipmentCommand{
		actor:      actor,
		shipmentID: shipmentID,
		details:    details,
		orderIDs:   append([]kernel.UUID(nil), orderIDs...),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) Actor() access.Actor {
	return c.actor
}

func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

func (c CreateShipmentCommand) Details() shipment.Details {
	return c.details
}

func (c CreateShipmentCommand) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.orderIDs...)
}

func validateShipmentDetails(d shipment.Details) error {
	var err error
	for _, field := range []struct{ param, value string }{
		{"name", d.Name},
		{"destination", d.Destination},
		{"employeeId", d.EmployeeID},
	} {
		if strings.TrimSpace(field.value) == "" {
			err = errors.Join(err, errs.NewValueIsRequiredError(field.param))
		}
	}
	return err
}

func validateOrderIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("orderIds")
	}

	seen := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("orderIds", fmt.Errorf("order %s is listed twice", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}
