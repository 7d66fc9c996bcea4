package palletrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/storeerr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pallet"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPalletRepository implements ports.PalletRepository using GORM.
type GormPalletRepository struct {
	db *gorm.DB
}

func NewGormPalletRepository(db *gorm.DB) *GormPalletRepository {
	return &GormPalletRepository{db: db}
}

func (r *GormPalletRepository) Add(ctx context.Context, aggregate *pallet.Pallet) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return storeerr.Wrap("insert pallet", err)
	}
	return nil
}

func (r *GormPalletRepository) Get(ctx context.Context, id kernel.UUID) (*pallet.Pallet, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PalletDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, storeerr.NotFound("select pallet", "palletId", id.String(), err)
	}

	return toDomain(dto)
}

// GetByProduct returns the pallets of productID in creation order.
func (r *GormPalletRepository) GetByProduct(ctx context.Context, productID kernel.ProductID) ([]*pallet.Pallet, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PalletDTO
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID.Int64()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, storeerr.Wrap("select pallets by product", err)
	}

	pallets := make([]*pallet.Pallet, 0, len(dtos))
	for _, dto := range dtos {
		p, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		pallets = append(pallets, p)
	}

	return pallets, nil
}

// UpdateIfUnchanged writes quantity and status of a consumed pallet. The
// row must still carry the version the pallet was read with and
// expectedQuantity, otherwise another allocation got there first.
func (r *GormPalletRepository) UpdateIfUnchanged(
	ctx context.Context,
	aggregate *pallet.Pallet,
	expectedQuantity int,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&PalletDTO{}).
		Where("id = ? AND version = ? AND quantity = ?", aggregate.ID().Bytes(), aggregate.Version(), expectedQuantity).
		Updates(map[string]any{
			"quantity": aggregate.Quantity(),
			"status":   aggregate.Status().String(),
			"version":  gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return storeerr.Wrap("update pallet", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewStaleAllocationError(aggregate.ID().String())
	}

	aggregate.IncrementVersion()
	return nil
}
