package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/pallet"

	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T, items ...*order.LineItem) *order.Order {
	t.Helper()
	address, err := order.NewShippingAddress("12 Dock St", "Portland", "OR", "97201")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "Ada", "user-1", time.Now(), address, "4242", items)
	require.NoError(t, err)
	return o
}

func newLineItem(t *testing.T, productID kernel.ProductID, quantity int) *order.LineItem {
	t.Helper()
	price, err := kernel.MoneyFromString("2.50")
	require.NoError(t, err)
	item, err := order.NewLineItem(kernel.NewUUID(), productID, quantity, price)
	require.NoError(t, err)
	return item
}

func newPallet(
	t *testing.T,
	name string,
	productID kernel.ProductID,
	quantity int,
	status pallet.Status,
	slot string,
) *pallet.Pallet {
	t.Helper()
	var position *kernel.StoragePosition
	if slot != "" || status == pallet.Stored {
		pos, err := kernel.NewStoragePosition(kernel.NewUUID(), "A", "R1", "B1", 0, slot)
		require.NoError(t, err)
		position = &pos
	}
	if quantity == 0 {
		status = pallet.Empty
	}
	p, err := pallet.NewPallet(kernel.NewUUID(), name, productID, quantity, 100, status, position)
	require.NoError(t, err)
	return p
}

// readyForShipping walks a fresh order to Ready for Shipping.
func readyForShipping(t *testing.T) *order.Order {
	t.Helper()
	item := newLineItem(t, 7, 1)
	o := newPendingOrder(t, item)
	require.NoError(t, o.TransitionTo(order.Processing))
	require.NoError(t, o.AllocateLineItem(item.ID(), kernel.NewUUID()))
	require.NoError(t, o.TransitionTo(order.ReadyForPickup))
	require.NoError(t, o.TransitionTo(order.ReadyForShipping))
	o.PullStatusChanges()
	return o
}
