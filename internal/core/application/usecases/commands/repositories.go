// Package commands contains business operations that modify fulfillment state.
// Every handler follows the same shape: validate the command, authorize the
// actor, open a unit of work, load aggregates, apply domain logic, persist,
// and commit. The deferred Rollback makes every early return leave the store
// untouched.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	PalletRepoFactory interface {
		PalletRepository() ports.PalletRepository
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	AllocationRepoFactory interface {
		AllocationRepository() ports.AllocationRepository
	}

	// OrderUoW manages transactions for order-only operations
	// (creating, editing and canceling orders).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AllocationUoW manages transactions that consume pallet stock for orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   pallets, err := uow.PalletRepository().GetByProduct(ctx, productID)
	//   // ... allocate, write pallet and marker
	//
	//   err = uow.Commit(ctx)
	AllocationUoW interface {
		TxManager
		OrderRepoFactory
		PalletRepoFactory
		AllocationRepoFactory
	}

	AllocationUoWFactory interface {
		Create() AllocationUoW
	}

	// ShipmentUoW manages transactions across shipments and their member orders.
	ShipmentUoW interface {
		TxManager
		OrderRepoFactory
		ShipmentRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}
)

// commit refuses to commit once ctx is done, so a cancelled request never
// leaves partial state behind; the deferred Rollback discards the work.
func commit(ctx context.Context, uow TxManager) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
