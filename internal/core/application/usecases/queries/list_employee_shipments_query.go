package queries

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrListEmployeeShipmentsQueryIsNotConstructed = errors.New(
	"ListEmployeeShipmentsQuery must be created via NewListEmployeeShipmentsQuery constructor",
)

// ListEmployeeShipmentsQuery asks for the shipments assigned to one employee.
type ListEmployeeShipmentsQuery struct {
	actor      access.Actor
	employeeID string
	guard      guard.ConstructorGuard
}

func NewListEmployeeShipmentsQuery(actor access.Actor, employeeID string) (ListEmployeeShipmentsQuery, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return ListEmployeeShipmentsQuery{}, errs.NewValueIsRequiredError("employeeId")
	}

	return ListEmployeeShipmentsQuery{
		actor:      actor,
		employeeID: employeeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListEmployeeShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListEmployeeShipmentsQueryIsNotConstructed)
}

func (q ListEmployeeShipmentsQuery) Actor() access.Actor {
	return q.actor
}

func (q ListEmployeeShipmentsQuery) EmployeeID() string {
	return q.employeeID
}

// ShipmentSummary is one shipment with the number of member orders.
type ShipmentSummary struct {
	ID          kernel.UUID
	Name        string
	Origin      string
	Destination string
	Type        string
	Status      shipment.Status
	CreatedAt   time.Time
	OrderCount  int
}
