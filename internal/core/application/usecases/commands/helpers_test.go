package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/pallet"

	"github.com/stretchr/testify/require"
)

var (
	processingClerk = access.NewActor("emp-1", []string{"Order processing employee"})
	packer          = access.NewActor("emp-2", []string{"Packaging employee"})
	shipper         = access.NewActor("emp-3", []string{"Shipping employee"})
	shippingManager = access.NewActor("emp-4", []string{"Shipping Manager"})
)

func price(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(amount)
	require.NoError(t, err)
	return m
}

func orderDetails() commands.OrderDetails {
	return commands.OrderDetails{
		CustomerName: "Ada Lovelace",
		UserID:       "user-17",
		OrderedAt:    time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		Address:      "12 Dock St",
		City:         "Portland",
		State:        "OR",
		ZipCode:      "97201",
		PaymentLast4: "4242",
	}
}

func lineItem(t *testing.T, productID kernel.ProductID, quantity int) *order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), productID, quantity, price(t, "2.50"))
	require.NoError(t, err)
	return item
}

func pendingOrder(t *testing.T, userID string, items ...*order.LineItem) *order.Order {
	t.Helper()
	address, err := order.NewShippingAddress("12 Dock St", "Portland", "OR", "97201")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "Ada Lovelace", userID, time.Now(), address, "4242", items)
	require.NoError(t, err)
	return o
}

func storedPallet(t *testing.T, productID kernel.ProductID, quantity int) *pallet.Pallet {
	t.Helper()
	position, err := kernel.NewStoragePosition(kernel.NewUUID(), "A", "R1", "B3", 2, "S07")
	require.NoError(t, err)
	p, err := pallet.NewPallet(kernel.NewUUID(), "P-1", productID, quantity, 100, pallet.Stored, &position)
	require.NoError(t, err)
	return p
}

// readyForShipping walks a fresh order to Ready for Shipping.
func readyForShipping(t *testing.T) *order.Order {
	t.Helper()
	item := lineItem(t, 7, 1)
	o := pendingOrder(t, "user-17", item)
	require.NoError(t, o.TransitionTo(order.Processing))
	require.NoError(t, o.AllocateLineItem(item.ID(), kernel.NewUUID()))
	require.NoError(t, o.TransitionTo(order.ReadyForPickup))
	require.NoError(t, o.TransitionTo(order.ReadyForShipping))
	o.PullStatusChanges()
	return o
}
