package access

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

var errNotOwner = errors.New("customers may only act on their own orders")

// Policy lists who may run one operation.
//
// An empty Required list lets anyone through unless AuthenticatedOnly is set.
// Excluded roles are checked first and also stop admins.
type Policy struct {
	Operation         string
	Required          []Role
	Excluded          []Role
	AuthenticatedOnly bool
}

// Gate evaluates the fulfillment policies. Build it once with NewGate.
type Gate struct {
	transitions     map[order.Status]Policy
	editLineItems   Policy
	allocate        Policy
	createShipment  Policy
	operateShipment Policy
	viewWarehouse   Policy
	viewShipments   Policy
}

// NewGate returns the gate with the warehouse role policies.
func NewGate() *Gate {
	processing := []Role{OrderProcessingEmployee, WarehouseManager, GeneralManager}
	packaging := []Role{PackagingEmployee, WarehouseManager, GeneralManager}
	shipping := []Role{ShippingEmployee, ShippingManager, GeneralManager}

	return &Gate{
		transitions: map[order.Status]Policy{
			order.Processing:       {Operation: "move order to Processing", Required: processing},
			order.ReadyForPickup:   {Operation: "move order to Ready for Pickup", Required: processing},
			order.ReadyForShipping: {Operation: "move order to Ready for Shipping", Required: packaging},
			order.Shipped:          {Operation: "move order to Shipped", Required: shipping},
			order.Delivered:        {Operation: "move order to Delivered", Required: shipping},
			order.Canceled: {
				Operation:         "cancel order",
				Required:          []Role{Customer},
				AuthenticatedOnly: true,
			},
		},
		editLineItems: Policy{
			Operation:         "edit line items",
			Required:          append(append([]Role(nil), processing...), Customer),
			AuthenticatedOnly: true,
		},
		allocate: Policy{Operation: "allocate line item", Required: processing},
		createShipment: Policy{
			Operation: "create shipment",
			Required:  []Role{ShippingManager, WarehouseManager, GeneralManager},
		},
		operateShipment: Policy{Operation: "operate shipment", Required: shipping},
		viewWarehouse: Policy{
			Operation: "view warehouse worklists",
			Required: []Role{
				OrderProcessingEmployee, PackagingEmployee, ShippingEmployee,
				ShippingManager, SupplyManager, WarehouseManager, GeneralManager,
			},
		},
		viewShipments: Policy{
			Operation: "view shipments of another employee",
			Required:  []Role{ShippingManager, WarehouseManager, GeneralManager},
		},
	}
}

// Authorize checks a policy that is not tied to a particular order.
func (g *Gate) Authorize(actor Actor, p Policy) error {
	return g.authorize(actor, p, nil)
}

// AuthorizeOnOrder checks a policy for an operation on o. When the actor only
// qualifies through the customer role, the order must be theirs.
func (g *Gate) AuthorizeOnOrder(actor Actor, p Policy, o *order.Order) error {
	owner := o.UserID()
	return g.authorize(actor, p, &owner)
}

// CanTransition checks whether actor may move o to target. Targets without a
// dedicated policy require an authenticated actor; the lifecycle rules then
// reject them.
func (g *Gate) CanTransition(actor Actor, o *order.Order, target order.Status) error {
	p, ok := g.transitions[target]
	if !ok {
		p = Policy{Operation: "move order to " + target.String(), AuthenticatedOnly: true}
	}
	return g.AuthorizeOnOrder(actor, p, o)
}

func (g *Gate) CanEditLineItems(actor Actor, o *order.Order) error {
	return g.AuthorizeOnOrder(actor, g.editLineItems, o)
}

func (g *Gate) CanAllocate(actor Actor, o *order.Order) error {
	return g.AuthorizeOnOrder(actor, g.allocate, o)
}

func (g *Gate) CanCreateShipment(actor Actor) error {
	return g.Authorize(actor, g.createShipment)
}

// CanOperateShipment covers starting, confirming deliveries and completing.
func (g *Gate) CanOperateShipment(actor Actor) error {
	return g.Authorize(actor, g.operateShipment)
}

// CanViewWarehouse covers the read-only worklists: orders by status and
// product locations. Customers are refused.
func (g *Gate) CanViewWarehouse(actor Actor) error {
	return g.Authorize(actor, g.viewWarehouse)
}

// CanViewShipments lets an employee see their own shipments and managers see
// anyone's.
func (g *Gate) CanViewShipments(actor Actor, employeeID string) error {
	if actor.IsAuthenticated() && actor.UserID() == employeeID {
		return nil
	}
	return g.Authorize(actor, g.viewShipments)
}

func (g *Gate) authorize(actor Actor, p Policy, owner *string) error {
	if p.AuthenticatedOnly && !actor.IsAuthenticated() {
		return errs.NewForbiddenErrorWithCause(p.Operation, errors.New("authentication required"))
	}

	for _, r := range p.Excluded {
		if actor.Has(r) {
			return errs.NewForbiddenErrorWithCause(p.Operation, errors.New("role "+string(r)+" is excluded"))
		}
	}

	if actor.IsAdmin() || len(p.Required) == 0 {
		return nil
	}

	ownershipFailed := false
	for _, r := range p.Required {
		if !actor.Has(r) {
			continue
		}
		if r.normalized() == Customer.normalized() && owner != nil && *owner != actor.UserID() {
			ownershipFailed = true
			continue
		}
		return nil
	}

	if ownershipFailed {
		return errs.NewForbiddenErrorWithCause(p.Operation, errNotOwner)
	}
	return errs.NewForbiddenError(p.Operation)
}
