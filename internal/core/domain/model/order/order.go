package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrLineItemsAreRequired is returned when an order would be left without line items.
	ErrLineItemsAreRequired = errs.NewValueIsRequiredError("line items")
)

// StatusChanged is recorded every time an order moves to a new status.
// The unit of work collects these after commit and publishes them.
type StatusChanged struct {
	OrderID    kernel.UUID
	UserID     string
	From       Status
	To         Status
	OccurredAt time.Time
}

// Order is the aggregate root of the fulfillment workflow. It owns its line
// items, its lifecycle status and the denormalized totals shown on worklists.
//
// Invariants:
//   - at least one line item, each with a positive quantity
//   - ItemCount == Σ quantity and Total == Σ quantity × unit price, always
//   - line items change only while Pending and before any allocation
//   - status moves only along the lifecycle described in Status
//   - a shipment reference is set at most once, while Ready for Shipping
//
// Example usage:
//
//	address, _ := order.NewShippingAddress("12 Dock St", "Portland", "OR", "97201")
//	payment, _ := order.NewPaymentReference("4242")
//	item, _ := order.NewLineItem(kernel.NewUUID(), 7, 5, price)
//
//	o, err := order.NewOrder(kernel.NewUUID(), "Ada Lovelace", "user-17", time.Now(), address, payment,
//	    []*order.LineItem{item})
//	if err != nil {
//	    return err
//	}
//	err = o.TransitionTo(order.Processing)
type Order struct {
	id           kernel.UUID
	customerName string
	userID       string
	orderedAt    time.Time
	address      ShippingAddress
	payment      PaymentReference

	lineItems []*LineItem
	total     kernel.Money
	itemCount int

	status Status

	// shipmentName references the shipment by its name; nil until attached
	shipmentName *string

	// version is the optimistic concurrency token maintained by the repository
	version int

	changes []StatusChanged

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order with totals computed from its line items.
//
// Returns a joined validation error naming every invalid argument.
func NewOrder(
	id kernel.UUID,
	customerName string,
	userID string,
	orderedAt time.Time,
	address ShippingAddress,
	payment PaymentReference,
	lineItems []*LineItem,
) (*Order, error) {
	return RestoreOrder(id, customerName, userID, orderedAt, address, payment, lineItems, Pending, nil, 0)
}

// RestoreOrder reconstructs an Order from persistent storage. Totals are
// recomputed from the restored line items, never trusted from storage.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	userID string,
	orderedAt time.Time,
	address ShippingAddress,
	payment PaymentReference,
	lineItems []*LineItem,
	status Status,
	shipmentName *string,
	version int,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerName(customerName),
		o.setUserID(userID),
		o.setOrderedAt(orderedAt),
		o.setAddress(address),
		payment.Validate(),
		o.setLineItems(lineItems),
		status.Validate(),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	o.payment = payment
	o.status = status
	if shipmentName != nil {
		name := *shipmentName
		o.shipmentName = &name
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerName() string {
	return o.customerName
}

// UserID is the identity-provider id of the customer who placed the order.
func (o *Order) UserID() string {
	return o.userID
}

func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

func (o *Order) ShippingAddress() ShippingAddress {
	return o.address
}

func (o *Order) Payment() PaymentReference {
	return o.payment
}

func (o *Order) Status() Status {
	return o.status
}

// Total is Σ quantity × unit price over the current line items.
func (o *Order) Total() kernel.Money {
	return o.total
}

// ItemCount is Σ quantity over the current line items.
func (o *Order) ItemCount() int {
	return o.itemCount
}

// ShipmentName returns the name of the shipment the order was attached to, nil if none.
func (o *Order) ShipmentName() *string {
	if o.shipmentName == nil {
		return nil
	}
	name := *o.shipmentName
	return &name
}

func (o *Order) Version() int {
	return o.version
}

// IncrementVersion is called by the repository after a successful
// compare-and-swap write so the in-memory token matches the stored row.
func (o *Order) IncrementVersion() {
	o.version++
}

// LineItems returns the line items in their original order. The slice is a
// copy; the items themselves are shared with the aggregate.
func (o *Order) LineItems() []*LineItem {
	items := make([]*LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// LineItem finds a line item by id.
func (o *Order) LineItem(id kernel.UUID) (*LineItem, error) {
	for _, item := range o.lineItems {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("lineItemId", id)
}

// HasAllocations reports whether stock was consumed for any line item.
func (o *Order) HasAllocations() bool {
	for _, item := range o.lineItems {
		if item.IsAllocated() {
			return true
		}
	}
	return false
}

// IsFullyAllocated reports whether every line item has been allocated.
func (o *Order) IsFullyAllocated() bool {
	for _, item := range o.lineItems {
		if !item.IsAllocated() {
			return false
		}
	}
	return true
}

// UnallocatedLineItems lists line items still waiting for stock, in order.
func (o *Order) UnallocatedLineItems() []*LineItem {
	var items []*LineItem
	for _, item := range o.lineItems {
		if !item.IsAllocated() {
			items = append(items, item)
		}
	}
	return items
}

// EditLineItems replaces the line items and recomputes the totals.
//
// Business rules:
//   - only while Pending, otherwise InvalidState
//   - not once any line item has been allocated, otherwise InvalidState
//   - the new list is validated before anything changes
//
// On error the order is left exactly as it was.
func (o *Order) EditLineItems(lineItems []*LineItem) error {
	if o.status != Pending {
		return errs.NewInvalidStateError("order", o.status.String(), "edit line items of")
	}
	if o.HasAllocations() {
		return errs.NewInvalidStateError("order", "partially allocated", "edit line items of")
	}

	for _, item := range lineItems {
		if item != nil && item.IsAllocated() {
			return errs.NewValueIsInvalidErrorWithCause("line items",
				fmt.Errorf("line item %s is already allocated", item.ID()))
		}
	}

	return o.setLineItems(lineItems)
}

// TransitionTo moves the order to target.
//
// Besides the lifecycle rules of Status, two guards apply:
//   - Ready for Pickup requires every line item to be allocated
//   - Canceled requires that no line item has been allocated
//
// Both guards fail with InvalidState.
func (o *Order) TransitionTo(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	switch next { //nolint:exhaustive // only guarded targets are listed
	case ReadyForPickup:
		if !o.IsFullyAllocated() {
			return errs.NewInvalidStateError("order", "not fully allocated", "mark ready for pickup")
		}
	case Canceled:
		if o.HasAllocations() {
			return errs.NewInvalidStateError("order", "partially allocated", "cancel")
		}
	}

	o.changes = append(o.changes, StatusChanged{
		OrderID:    o.id,
		UserID:     o.userID,
		From:       o.status,
		To:         next,
		OccurredAt: time.Now().UTC(),
	})
	o.status = next
	return nil
}

// Cancel is TransitionTo(Canceled). No stock is returned because an order
// can only be canceled before anything was allocated.
func (o *Order) Cancel() error {
	return o.TransitionTo(Canceled)
}

// AllocateLineItem marks a line item as taken from palletID. It is valid
// while the order is Pending or Processing and idempotent for the same pallet.
func (o *Order) AllocateLineItem(lineItemID kernel.UUID, palletID kernel.UUID) error {
	if !o.status.IsAllocatable() {
		return errs.NewInvalidStateError("order", o.status.String(), "allocate line items of")
	}

	item, err := o.LineItem(lineItemID)
	if err != nil {
		return err
	}

	return item.allocate(palletID)
}

// AttachToShipment records the shipment name. The order must be Ready for
// Shipping and not yet part of another shipment; the status is unchanged.
func (o *Order) AttachToShipment(shipmentName string) error {
	name := strings.TrimSpace(shipmentName)
	if name == "" {
		return errs.NewValueIsRequiredError("shipmentName")
	}
	if o.status != ReadyForShipping {
		return errs.NewNotShippableError(o.id, fmt.Sprintf("is %s, not %s", o.status, ReadyForShipping))
	}
	if o.shipmentName != nil {
		return errs.NewNotShippableError(o.id, fmt.Sprintf("already belongs to shipment %q", *o.shipmentName))
	}

	o.shipmentName = &name
	return nil
}

// PullStatusChanges returns the recorded status changes and clears them.
func (o *Order) PullStatusChanges() []StatusChanged {
	changes := o.changes
	o.changes = nil
	return changes
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = name
	return nil
}

func (o *Order) setUserID(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errs.NewValueIsRequiredError("userId")
	}
	o.userID = userID
	return nil
}

func (o *Order) setOrderedAt(orderedAt time.Time) error {
	if orderedAt.IsZero() {
		return errs.NewValueIsRequiredError("orderedAt")
	}
	o.orderedAt = orderedAt.UTC()
	return nil
}

func (o *Order) setAddress(address ShippingAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is negative", version))
	}
	o.version = version
	return nil
}

// setLineItems validates the whole list first and only then swaps it in and
// recomputes totals, so a failed edit leaves the order untouched.
func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(lineItems))
	for i, item := range lineItems {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("line items[%d]", i), err)
		}
		if _, dup := seen[item.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("line items",
				fmt.Errorf("line item %s is listed twice", item.ID()))
		}
		seen[item.ID()] = struct{}{}
	}

	total := kernel.ZeroMoney()
	count := 0
	for _, item := range lineItems {
		total = total.Add(item.Subtotal())
		count += item.Quantity()
	}

	o.lineItems = append([]*LineItem(nil), lineItems...)
	o.total = total
	o.itemCount = count
	return nil
}
