package order_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func lineItem(t *testing.T, productID kernel.ProductID, quantity int, price string) *order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), productID, quantity, money(t, price))
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, items ...*order.LineItem) *order.Order {
	t.Helper()
	address, err := order.NewShippingAddress("12 Dock St", "Portland", "OR", "97201")
	require.NoError(t, err)
	payment, err := order.NewPaymentReference("4242")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "Ada Lovelace", "user-17", time.Now(), address, payment, items)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts pending with computed totals", func(t *testing.T) {
		o := newOrder(t, lineItem(t, 7, 5, "2.50"), lineItem(t, 9, 2, "10"))

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, 7, o.ItemCount())
		assert.Equal(t, "32.50", o.Total().String())
		assert.Nil(t, o.ShipmentName())
		assert.Zero(t, o.Version())
		assert.Empty(t, o.PullStatusChanges())
	})

	t.Run("reports every invalid argument", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, " ", "", time.Time{}, order.ShippingAddress{}, "12", nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, order.ErrShippingAddressIsNotConstructed)
		assert.ErrorIs(t, err, order.ErrLineItemsAreRequired)
		for _, param := range []string{"customerName", "userId", "orderedAt", "paymentLast4"} {
			assert.Contains(t, err.Error(), param)
		}
	})

	t.Run("rejects duplicate line items", func(t *testing.T) {
		item := lineItem(t, 7, 1, "1")
		address, _ := order.NewShippingAddress("a", "b", "c", "d")
		_, err := order.NewOrder(kernel.NewUUID(), "n", "u", time.Now(), address, "0000", []*order.LineItem{item, item})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "listed twice")
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
	assert.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_EditLineItems(t *testing.T) {
	t.Run("recomputes totals from scratch", func(t *testing.T) {
		o := newOrder(t, lineItem(t, 7, 5, "2.50"))

		err := o.EditLineItems([]*order.LineItem{lineItem(t, 3, 4, "0.10"), lineItem(t, 4, 1, "99.99")})

		require.NoError(t, err)
		assert.Len(t, o.LineItems(), 2)
		assert.Equal(t, 5, o.ItemCount())
		assert.Equal(t, "100.39", o.Total().String())
	})

	t.Run("invalid list leaves the order unchanged", func(t *testing.T) {
		o := newOrder(t, lineItem(t, 7, 5, "2.50"))

		require.ErrorIs(t, o.EditLineItems(nil), order.ErrLineItemsAreRequired)
		require.Error(t, o.EditLineItems([]*order.LineItem{lineItem(t, 3, 1, "1"), nil}))

		assert.Len(t, o.LineItems(), 1)
		assert.Equal(t, 5, o.ItemCount())
		assert.Equal(t, "12.50", o.Total().String())
	})

	t.Run("non-pending order is refused", func(t *testing.T) {
		o := newOrder(t, lineItem(t, 7, 5, "2.50"))
		require.NoError(t, o.TransitionTo(order.Processing))

		err := o.EditLineItems([]*order.LineItem{lineItem(t, 3, 1, "1")})

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, 5, o.ItemCount())
	})

	t.Run("allocated order is refused", func(t *testing.T) {
		item := lineItem(t, 7, 5, "2.50")
		o := newOrder(t, item, lineItem(t, 8, 1, "1"))
		require.NoError(t, o.AllocateLineItem(item.ID(), kernel.NewUUID()))

		err := o.EditLineItems([]*order.LineItem{lineItem(t, 3, 1, "1")})

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Len(t, o.LineItems(), 2)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("walks the whole lifecycle", func(t *testing.T) {
		item := lineItem(t, 7, 5, "2.50")
		o := newOrder(t, item)

		require.NoError(t, o.TransitionTo(order.Processing))
		require.NoError(t, o.AllocateLineItem(item.ID(), kernel.NewUUID()))
		for _, s := range []order.Status{order.ReadyForPickup, order.ReadyForShipping, order.Shipped, order.Delivered} {
			require.NoError(t, o.TransitionTo(s))
		}

		changes := o.PullStatusChanges()
		require.Len(t, changes, 5)
		assert.Equal(t, order.Pending, changes[0].From)
		assert.Equal(t, order.Delivered, changes[4].To)
		assert.True(t, changes[0].OrderID.IsEqual(o.ID()))
		assert.Empty(t, o.PullStatusChanges())
	})

	t.Run("skipping a step is an invalid transition", func(t *testing.T) {
		o := newOrder(t, lineItem(t, 7, 5, "2.50"))

		err := o.TransitionTo(order.ReadyForShipping)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.PullStatusChanges())
	})

	t.Run("ready for pickup needs every line item allocated", func(t *testing.T) {
		first := lineItem(t, 7, 5, "2.50")
		o := newOrder(t, first, lineItem(t, 8, 1, "1"))
		require.NoError(t, o.TransitionTo(order.Processing))
		require.NoError(t, o.AllocateLineItem(first.ID(), kernel.NewUUID()))

		err := o.TransitionTo(order.ReadyForPickup)

		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Processing, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("pending order", func(t *testing.T) {
		o := newOrder(t, lineItem(t, 7, 5, "2.50"))
		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Canceled, o.Status())
		assert.ErrorIs(t, o.TransitionTo(order.Processing), errs.ErrInvalidTransition)
	})

	t.Run("processing order", func(t *testing.T) {
		o := newOrder(t, lineItem(t, 7, 5, "2.50"))
		require.NoError(t, o.TransitionTo(order.Processing))
		assert.ErrorIs(t, o.Cancel(), errs.ErrInvalidTransition)
	})

	t.Run("pending order with an allocation", func(t *testing.T) {
		item := lineItem(t, 7, 5, "2.50")
		o := newOrder(t, item)
		require.NoError(t, o.AllocateLineItem(item.ID(), kernel.NewUUID()))

		assert.ErrorIs(t, o.Cancel(), errs.ErrInvalidState)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_AllocateLineItem(t *testing.T) {
	item := lineItem(t, 7, 5, "2.50")
	o := newOrder(t, item)
	palletID := kernel.NewUUID()

	require.NoError(t, o.AllocateLineItem(item.ID(), palletID))
	require.NoError(t, o.AllocateLineItem(item.ID(), palletID), "same pallet is idempotent")
	assert.True(t, o.IsFullyAllocated())
	assert.True(t, item.AllocatedPallet().IsEqual(palletID))

	assert.ErrorIs(t, o.AllocateLineItem(item.ID(), kernel.NewUUID()), errs.ErrInvalidState)
	assert.ErrorIs(t, o.AllocateLineItem(kernel.NewUUID(), palletID), errs.ErrObjectNotFound)
}

func TestOrder_AttachToShipment(t *testing.T) {
	ready := func(t *testing.T) *order.Order {
		t.Helper()
		item := lineItem(t, 7, 1, "1")
		o := newOrder(t, item)
		require.NoError(t, o.TransitionTo(order.Processing))
		require.NoError(t, o.AllocateLineItem(item.ID(), kernel.NewUUID()))
		require.NoError(t, o.TransitionTo(order.ReadyForPickup))
		require.NoError(t, o.TransitionTo(order.ReadyForShipping))
		return o
	}

	t.Run("ready order is attached once", func(t *testing.T) {
		o := ready(t)
		require.NoError(t, o.AttachToShipment("North run"))
		require.NotNil(t, o.ShipmentName())
		assert.Equal(t, "North run", *o.ShipmentName())
		assert.Equal(t, order.ReadyForShipping, o.Status())

		assert.ErrorIs(t, o.AttachToShipment("South run"), errs.ErrNotShippable)
	})

	t.Run("pending order is not shippable", func(t *testing.T) {
		o := newOrder(t, lineItem(t, 7, 1, "1"))
		assert.ErrorIs(t, o.AttachToShipment("North run"), errs.ErrNotShippable)
	})

	t.Run("blank name", func(t *testing.T) {
		assert.ErrorIs(t, ready(t).AttachToShipment("  "), errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	palletID := kernel.NewUUID()
	item, err := order.RestoreLineItem(kernel.NewUUID(), 7, 3, money(t, "4"), &palletID)
	require.NoError(t, err)
	address, _ := order.NewShippingAddress("a", "b", "c", "d")
	shipment := "North run"

	o, err := order.RestoreOrder(kernel.NewUUID(), "Ada", "user-1", time.Now(), address, "1234",
		[]*order.LineItem{item}, order.Shipped, &shipment, 6)

	require.NoError(t, err)
	assert.Equal(t, order.Shipped, o.Status())
	assert.Equal(t, 6, o.Version())
	assert.Equal(t, "12.00", o.Total().String())
	assert.Equal(t, shipment, *o.ShipmentName())

	o.IncrementVersion()
	assert.Equal(t, 7, o.Version())

	_, err = order.RestoreOrder(kernel.NewUUID(), "Ada", "user-1", time.Now(), address, "1234",
		[]*order.LineItem{item}, order.Unknown, nil, -1)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
