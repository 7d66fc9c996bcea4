package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when using a LineItem that was not built by NewLineItem or RestoreLineItem.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one product line of an order. The unit price is captured when
// the order is placed and does not follow later catalog changes.
//
// A line item becomes allocated once a pallet has been decremented for it;
// from then on it references that pallet and the order can no longer be
// edited or canceled.
type LineItem struct {
	id        kernel.UUID
	productID kernel.ProductID
	quantity  int
	unitPrice kernel.Money

	// allocatedPallet is nil until the line item has been allocated
	allocatedPallet *kernel.UUID

	guard guard.ConstructorGuard
}

// NewLineItem creates an unallocated line item.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("12.50")
//	item, err := order.NewLineItem(kernel.NewUUID(), 7, 5, price)
func NewLineItem(id kernel.UUID, productID kernel.ProductID, quantity int, unitPrice kernel.Money) (*LineItem, error) {
	return RestoreLineItem(id, productID, quantity, unitPrice, nil)
}

// RestoreLineItem rebuilds a line item from storage, including its allocation.
func RestoreLineItem(
	id kernel.UUID,
	productID kernel.ProductID,
	quantity int,
	unitPrice kernel.Money,
	allocatedPallet *kernel.UUID,
) (*LineItem, error) {
	item := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setAllocatedPallet(allocatedPallet),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (l *LineItem) Validate() error {
	if l == nil {
		return ErrLineItemIsNotConstructed
	}
	return l.guard.Validate(ErrLineItemIsNotConstructed)
}

func (l *LineItem) IsEqual(other *LineItem) bool {
	return other != nil && l.id.IsEqual(other.id)
}

func (l *LineItem) ID() kernel.UUID {
	return l.id
}

func (l *LineItem) ProductID() kernel.ProductID {
	return l.productID
}

func (l *LineItem) Quantity() int {
	return l.quantity
}

func (l *LineItem) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Subtotal is quantity × unit price.
func (l *LineItem) Subtotal() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}

// AllocatedPallet returns the pallet the line item was taken from, nil if unallocated.
func (l *LineItem) AllocatedPallet() *kernel.UUID {
	if l.allocatedPallet == nil {
		return nil
	}
	id := *l.allocatedPallet
	return &id
}

func (l *LineItem) IsAllocated() bool {
	return l.allocatedPallet != nil
}

// allocate records the pallet. Re-allocating to the same pallet is a no-op;
// a different pallet is a conflict because stock was already consumed once.
func (l *LineItem) allocate(palletID kernel.UUID) error {
	if err := palletID.Validate(); err != nil {
		return err
	}

	if l.allocatedPallet != nil {
		if l.allocatedPallet.IsEqual(palletID) {
			return nil
		}
		return errs.NewInvalidStateError("line item "+l.id.String(), "allocated", "re-allocate")
	}

	l.allocatedPallet = &palletID
	return nil
}

func (l *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *LineItem) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	l.unitPrice = unitPrice
	return nil
}

func (l *LineItem) setAllocatedPallet(palletID *kernel.UUID) error {
	if palletID == nil {
		l.allocatedPallet = nil
		return nil
	}
	if err := palletID.Validate(); err != nil {
		return err
	}
	id := *palletID
	l.allocatedPallet = &id
	return nil
}
