// Package postgres provides the GORM unit of work shared by every command.
//
// A unit of work wraps one database transaction. Repositories obtained from
// it after Begin run inside that transaction. Orders written through it are
// tracked, and once Commit succeeds their status changes are handed to the
// configured publishers:
//
//	factory := NewGormUnitOfWorkFactory(db, logger, kafkaPublisher, metricsPublisher)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Publishing is best-effort: a failing publisher is logged and never turns a
// committed transaction into an error.
package postgres

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/adapters/out/postgres/allocationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/palletrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/adapters/out/postgres/storeerr"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// DefaultPublishTimeout bounds how long a committed request waits for publishers.
const DefaultPublishTimeout = 5 * time.Second

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates one unit of work per command.
type GormUnitOfWorkFactory struct {
	db             *gorm.DB
	logger         *slog.Logger
	publishers     []ports.OrderEventPublisher
	publishTimeout time.Duration
}

func NewGormUnitOfWorkFactory(
	db *gorm.DB,
	logger *slog.Logger,
	publishers ...ports.OrderEventPublisher,
) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{
		db:             db,
		logger:         logger.With("component", "unit_of_work"),
		publishers:     publishers,
		publishTimeout: DefaultPublishTimeout,
	}
}

// WithPublishTimeout sets the deadline of the post-commit publish. Values
// that are not positive keep the current timeout.
func (f *GormUnitOfWorkFactory) WithPublishTimeout(timeout time.Duration) *GormUnitOfWorkFactory {
	if timeout > 0 {
		f.publishTimeout = timeout
	}
	return f
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		logger:            f.logger,
		publishers:        f.publishers,
		publishTimeout:    f.publishTimeout,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one transaction and the aggregates written in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	logger            *slog.Logger
	publishers        []ports.OrderEventPublisher
	publishTimeout    time.Duration
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. A second call on an open unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}
	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return storeerr.Wrap("begin transaction", tx.Error)
	}
	uow.tx = tx
	return nil
}

// Commit refuses a done context, commits, and then publishes the status
// changes of every tracked order.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.trackedAggregates = uow.trackedAggregates[:0]
		return storeerr.Wrap("commit transaction", err)
	}

	// The request may end right after commit; publishing gets its own deadline.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uow.publishTimeout)
	defer cancel()
	uow.publish(publishCtx)
	return nil
}

// Rollback discards the transaction and everything tracked in it.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PalletRepository() ports.PalletRepository {
	return palletrepo.NewGormPalletRepository(uow.conn())
}

func (uow *GormUnitOfWork) ShipmentRepository() ports.ShipmentRepository {
	return shipmentrepo.NewGormShipmentRepository(uow.conn())
}

func (uow *GormUnitOfWork) AllocationRepository() ports.AllocationRepository {
	return allocationrepo.NewGormAllocationRepository(uow.conn())
}

// TrackAggregate registers an aggregate written through one of the
// repositories. Called by repository implementations.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publish(ctx context.Context) {
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)

	seen := make(map[*order.Order]struct{}, len(tracked))
	var changes []order.StatusChanged
	for _, t := range tracked {
		o, ok := t.Aggregate.(*order.Order)
		if !ok {
			continue
		}
		if _, dup := seen[o]; dup {
			continue
		}
		seen[o] = struct{}{}
		changes = append(changes, o.PullStatusChanges()...)
	}
	if len(changes) == 0 {
		return
	}

	for _, p := range uow.publishers {
		if err := p.PublishStatusChanges(ctx, changes); err != nil {
			uow.logger.ErrorContext(ctx, "failed to publish order status changes",
				"count", len(changes),
				"error", err,
			)
		}
	}
}
