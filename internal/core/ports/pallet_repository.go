package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pallet"
)

// PalletRepository defines the persistence contract for pallets. Fulfillment
// never creates pallets in production; Add exists for receiving and tests.
type PalletRepository interface {
	Add(ctx context.Context, aggregate *pallet.Pallet) error

	Get(ctx context.Context, id kernel.UUID) (*pallet.Pallet, error)

	// GetByProduct returns every pallet holding productID in stable store
	// order (creation order). An empty slice is not an error.
	GetByProduct(ctx context.Context, productID kernel.ProductID) ([]*pallet.Pallet, error)

	// UpdateIfUnchanged writes the pallet's quantity and status only if the
	// stored row still has the version the pallet was read with and
	// expectedQuantity. Otherwise it fails with errs.StaleAllocationError.
	UpdateIfUnchanged(ctx context.Context, aggregate *pallet.Pallet, expectedQuantity int) error
}
