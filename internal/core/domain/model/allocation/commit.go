// Package allocation holds the pallet-consumed marker written when stock is
// taken for one order line item. The marker is what makes a retried
// allocation a no-op instead of a second decrement.
package allocation

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCommitIsNotConstructed is returned when a Commit was not created through NewCommit or RestoreCommit.
var ErrCommitIsNotConstructed = errors.New("Commit must be created via NewCommit constructor")

// Commit records that quantity units of productID were taken from palletID
// for one order line item. There is at most one Commit per (order, line item).
type Commit struct {
	orderID        kernel.UUID
	lineItemID     kernel.UUID
	palletID       kernel.UUID
	productID      kernel.ProductID
	quantity       int
	quantityBefore int
	quantityAfter  int
	committedAt    time.Time
	guard          guard.ConstructorGuard
}

// NewCommit builds the marker for a pallet decrement from quantityBefore to
// quantityBefore-quantity.
func NewCommit(
	orderID, lineItemID, palletID kernel.UUID,
	productID kernel.ProductID,
	quantity, quantityBefore int,
	committedAt time.Time,
) (*Commit, error) {
	return RestoreCommit(orderID, lineItemID, palletID, productID, quantity, quantityBefore,
		quantityBefore-quantity, committedAt)
}

// RestoreCommit reconstructs a marker from storage.
func RestoreCommit(
	orderID, lineItemID, palletID kernel.UUID,
	productID kernel.ProductID,
	quantity, quantityBefore, quantityAfter int,
	committedAt time.Time,
) (*Commit, error) {
	if err := errors.Join(
		orderID.Validate(),
		lineItemID.Validate(),
		palletID.Validate(),
		productID.Validate(),
		validateQuantities(quantity, quantityBefore, quantityAfter),
	); err != nil {
		return nil, err
	}

	return &Commit{
		orderID:        orderID,
		lineItemID:     lineItemID,
		palletID:       palletID,
		productID:      productID,
		quantity:       quantity,
		quantityBefore: quantityBefore,
		quantityAfter:  quantityAfter,
		committedAt:    committedAt.UTC(),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c *Commit) Validate() error {
	if c == nil {
		return ErrCommitIsNotConstructed
	}
	return c.guard.Validate(ErrCommitIsNotConstructed)
}

func (c *Commit) OrderID() kernel.UUID {
	return c.orderID
}

func (c *Commit) LineItemID() kernel.UUID {
	return c.lineItemID
}

func (c *Commit) PalletID() kernel.UUID {
	return c.palletID
}

func (c *Commit) ProductID() kernel.ProductID {
	return c.productID
}

func (c *Commit) Quantity() int {
	return c.quantity
}

// QuantityBefore is the pallet quantity read at selection time.
func (c *Commit) QuantityBefore() int {
	return c.quantityBefore
}

func (c *Commit) QuantityAfter() int {
	return c.quantityAfter
}

func (c *Commit) CommittedAt() time.Time {
	return c.committedAt
}

func validateQuantities(quantity, before, after int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if after < 0 || before-quantity != after {
		return errs.NewValueIsInvalidErrorWithCause("quantityAfter",
			fmt.Errorf("%d - %d does not give %d", before, quantity, after))
	}
	return nil
}
