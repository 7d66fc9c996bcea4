package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pallet"
	"fulfillment/internal/pkg/guard"
)

var ErrGetProductLocationsQueryIsNotConstructed = errors.New(
	"GetProductLocationsQuery must be created via NewGetProductLocationsQuery constructor",
)

// GetProductLocationsQuery asks where a product can be picked from. The
// answer lists pallets in the order allocation would take them.
type GetProductLocationsQuery struct {
	actor     access.Actor
	productID kernel.ProductID
	guard     guard.ConstructorGuard
}

func NewGetProductLocationsQuery(actor access.Actor, productID kernel.ProductID) (GetProductLocationsQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductLocationsQuery{}, err
	}

	return GetProductLocationsQuery{
		actor:     actor,
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetProductLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductLocationsQueryIsNotConstructed)
}

func (q GetProductLocationsQuery) Actor() access.Actor {
	return q.actor
}

func (q GetProductLocationsQuery) ProductID() kernel.ProductID {
	return q.productID
}

// PalletLocation is one pallet holding the product. Position is empty for
// pallets that are not stored; Label is "-" filled for unnamed parts.
type PalletLocation struct {
	PalletID kernel.UUID
	Name     string
	Quantity int
	Status   pallet.Status
	Position string
	Resolved bool
}
