package orderrepo

import (
	"context"

	"fulfillment/internal/adapters/out/postgres/storeerr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects the orders written through a unit of work so
// their status changes can be published after commit.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row and its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if storeerr.IsUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("orderId", err)
		}
		return storeerr.Wrap("insert order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order row only if its version is unchanged since it was
// read, then replaces the line items.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"customer_name":     dto.CustomerName,
			"shipping_address":  dto.Shipping.Address,
			"shipping_city":     dto.Shipping.City,
			"shipping_state":    dto.Shipping.State,
			"shipping_zip_code": dto.Shipping.ZipCode,
			"total":             dto.Total,
			"item_count":        dto.ItemCount,
			"status":            dto.Status,
			"shipment_name":     dto.ShipmentName,
			"version":           gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return storeerr.Wrap("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.missOrConflict(ctx, aggregate.ID(), dto.ID)
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
		return storeerr.Wrap("delete order line items", err)
	}
	if err := db.Create(&dto.LineItems).Error; err != nil {
		return storeerr.Wrap("insert order line items", err)
	}

	aggregate.IncrementVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withLineItems(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, storeerr.NotFound("select order", "orderId", id.String(), err)
	}

	return toDomain(dto)
}

// GetMany loads orders in the order of ids.
func (r *GormOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}
	if len(raw) == 0 {
		return []*order.Order{}, nil
	}

	var dtos []OrderDTO
	if err := r.withLineItems(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, storeerr.Wrap("select orders", err)
	}

	byID := make(map[uuid.UUID]OrderDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	orders := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		dto, ok := byID[id.Bytes()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) withLineItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("LineItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

// missOrConflict tells a deleted order from a concurrent update after a
// compare-and-swap matched no row.
func (r *GormOrderRepository) missOrConflict(ctx context.Context, id kernel.UUID, raw uuid.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", raw).Count(&count).Error; err != nil {
		return storeerr.Wrap("count order", err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}
	return errs.NewVersionIsInvalidError("order " + id.String())
}
