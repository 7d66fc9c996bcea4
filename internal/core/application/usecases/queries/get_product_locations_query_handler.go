package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// GetProductLocationsQueryHandler ranks the pallets of a product with the
// same rules the allocator uses, so the first row is the pallet the next
// allocation will draw from.
type GetProductLocationsQueryHandler struct {
	pallets   ports.PalletRepository
	gate      *access.Gate
	allocator services.PalletAllocator
}

func NewGetProductLocationsQueryHandler(
	pallets ports.PalletRepository,
	gate *access.Gate,
	allocator services.PalletAllocator,
) GetProductLocationsQueryHandler {
	return GetProductLocationsQueryHandler{pallets: pallets, gate: gate, allocator: allocator}
}

func (h GetProductLocationsQueryHandler) Handle(
	ctx context.Context,
	query GetProductLocationsQuery,
) ([]PalletLocation, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.CanViewWarehouse(query.Actor()); err != nil {
		return nil, err
	}

	candidates, err := h.pallets.GetByProduct(ctx, query.ProductID())
	if err != nil {
		return nil, err
	}

	ranked := h.allocator.Rank(query.ProductID(), candidates)
	locations := make([]PalletLocation, 0, len(ranked))
	for _, p := range ranked {
		location := PalletLocation{
			PalletID: p.ID(),
			Name:     p.Name(),
			Quantity: p.Quantity(),
			Status:   p.Status(),
			Resolved: p.HasResolvedPosition(),
		}
		if pos := p.Position(); pos != nil {
			location.Position = pos.Label()
		}
		locations = append(locations, location)
	}

	return locations, nil
}
