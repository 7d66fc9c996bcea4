package pallet

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrPalletIsNotConstructed is returned when a Pallet was not created through NewPallet or RestorePallet.
var ErrPalletIsNotConstructed = errors.New("Pallet must be created via NewPallet constructor")

// Pallet is a physical unit of one product with its own quantity and location.
// Fulfillment only ever decrements it; restocking happens elsewhere.
//
// Invariants:
//   - 0 <= quantity <= maxCapacity
//   - quantity == 0 if and only if status == Empty
//   - a Stored pallet has a storage position
//
// Example:
//
//	p, err := pallet.NewPallet(kernel.NewUUID(), "PAL-0007", 7, 10, 40, pallet.Stored, &position)
//	if err != nil {
//	    return err
//	}
//	err = p.Consume(5) // quantity 5, still stored
type Pallet struct {
	id          kernel.UUID
	name        string
	productID   kernel.ProductID
	quantity    int
	maxCapacity int
	status      Status
	position    *kernel.StoragePosition
	version     int
	guard       guard.ConstructorGuard
}

// NewPallet creates a pallet with version 0.
func NewPallet(
	id kernel.UUID,
	name string,
	productID kernel.ProductID,
	quantity int,
	maxCapacity int,
	status Status,
	position *kernel.StoragePosition,
) (*Pallet, error) {
	return RestorePallet(id, name, productID, quantity, maxCapacity, status, position, 0)
}

// RestorePallet reconstructs a pallet from storage. Rows that break an
// invariant are rejected rather than repaired.
func RestorePallet(
	id kernel.UUID,
	name string,
	productID kernel.ProductID,
	quantity int,
	maxCapacity int,
	status Status,
	position *kernel.StoragePosition,
	version int,
) (*Pallet, error) {
	p := &Pallet{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setProductID(productID),
		p.setStock(quantity, maxCapacity, status),
		p.setPosition(position, status),
		p.setVersion(version),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Pallet) Validate() error {
	if p == nil {
		return ErrPalletIsNotConstructed
	}
	return p.guard.Validate(ErrPalletIsNotConstructed)
}

func (p *Pallet) IsEqual(other *Pallet) bool {
	return other != nil && p.id.IsEqual(other.id)
}

func (p *Pallet) ID() kernel.UUID {
	return p.id
}

func (p *Pallet) Name() string {
	return p.name
}

func (p *Pallet) ProductID() kernel.ProductID {
	return p.productID
}

func (p *Pallet) Quantity() int {
	return p.quantity
}

func (p *Pallet) MaxCapacity() int {
	return p.maxCapacity
}

func (p *Pallet) Status() Status {
	return p.status
}

func (p *Pallet) Version() int {
	return p.version
}

func (p *Pallet) IsStored() bool {
	return p.status == Stored
}

func (p *Pallet) Position() *kernel.StoragePosition {
	if p.position == nil {
		return nil
	}
	pos := *p.position
	return &pos
}

// HasResolvedPosition reports whether a picker can walk to the pallet.
func (p *Pallet) HasResolvedPosition() bool {
	return p.position != nil && p.position.IsResolved()
}

// Consume takes quantity units off the pallet.
//
// The pallet status becomes Empty when nothing is left and is otherwise kept.
// Position and product never change. Asking for more than the pallet holds
// fails with InsufficientStock and changes nothing.
func (p *Pallet) Consume(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if p.quantity < quantity {
		return errs.NewInsufficientStockError(p.productID, p.id, p.quantity, quantity)
	}

	p.quantity -= quantity
	if p.quantity == 0 {
		p.status = Empty
	}
	return nil
}

// IncrementVersion is called by the repository after a successful compare-and-swap write.
func (p *Pallet) IncrementVersion() {
	p.version++
}

func (p *Pallet) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pallet) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Pallet) setProductID(productID kernel.ProductID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	p.productID = productID
	return nil
}

func (p *Pallet) setStock(quantity, maxCapacity int, status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if maxCapacity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("maxCapacity", fmt.Errorf("%d is not greater than 0", maxCapacity))
	}
	if quantity < 0 || quantity > maxCapacity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, maxCapacity)
	}
	if (quantity == 0) != (status == Empty) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("status %s does not match quantity %d", status, quantity))
	}

	p.quantity = quantity
	p.maxCapacity = maxCapacity
	p.status = status
	return nil
}

func (p *Pallet) setPosition(position *kernel.StoragePosition, status Status) error {
	if position == nil {
		if status == Stored {
			return errs.NewValueIsRequiredError("position")
		}
		p.position = nil
		return nil
	}
	if err := position.Validate(); err != nil {
		return err
	}
	pos := *position
	p.position = &pos
	return nil
}

func (p *Pallet) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is negative", version))
	}
	p.version = version
	return nil
}
