package allocationrepo

import (
	"context"
	"time"

	"fulfillment/internal/adapters/out/postgres/storeerr"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAllocationRepository implements ports.AllocationRepository using GORM.
type GormAllocationRepository struct {
	db *gorm.DB
}

func NewGormAllocationRepository(db *gorm.DB) *GormAllocationRepository {
	return &GormAllocationRepository{db: db}
}

func (r *GormAllocationRepository) Get(ctx context.Context, orderID, lineItemID kernel.UUID) (*allocation.Commit, error) {
	var dto CommitDTO
	err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND line_item_id = ?", orderID.Bytes(), lineItemID.Bytes()).Error
	if err != nil {
		return nil, storeerr.NotFound("select allocation", "lineItemId", lineItemID.String(), err)
	}

	return toDomain(dto)
}

// Add stores a marker. A marker already stored for the same line item means
// a concurrent request allocated it first.
func (r *GormAllocationRepository) Add(ctx context.Context, commit *allocation.Commit) error {
	if err := commit.Validate(); err != nil {
		return err
	}

	dto := fromDomain(commit)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if storeerr.IsUniqueViolation(err) {
			return errs.NewStaleAllocationErrorWithCause(commit.PalletID().String(), err)
		}
		return storeerr.Wrap("insert allocation", err)
	}
	return nil
}

// PurgeSettled removes markers committed before cutoff whose order is
// Delivered or Canceled.
func (r *GormAllocationRepository) PurgeSettled(ctx context.Context, cutoff time.Time) (int64, error) {
	settled := []string{order.Delivered.String(), order.Canceled.String()}

	result := r.db.WithContext(ctx).
		Where("committed_at < ?", cutoff.UTC()).
		Where("order_id IN (?)", r.db.Table("orders").Select("id").Where("status IN ?", settled)).
		Delete(&CommitDTO{})
	if result.Error != nil {
		return 0, storeerr.Wrap("purge allocations", result.Error)
	}

	return result.RowsAffected, nil
}
