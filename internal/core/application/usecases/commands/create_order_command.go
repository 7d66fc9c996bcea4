package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderDetails are the customer-facing attributes captured at checkout.
type OrderDetails struct {
	CustomerName string
	UserID       string
	OrderedAt    time.Time
	Address      string
	City         string
	State        string
	ZipCode      string
	PaymentLast4 string
}

// CreateOrderCommand registers an order placed by the commerce flow.
// The order starts Pending with totals computed from its line items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), OrderDetails{
//	    CustomerName: "Ada Lovelace",
//	    UserID:       "user-17",
//	    OrderedAt:    time.Now(),
//	    Address:      "12 Dock St", City: "Portland", State: "OR", ZipCode: "97201",
//	    PaymentLast4: "4242",
//	}, []LineItemSpec{{ID: kernel.NewUUID(), ProductID: 7, Quantity: 5, UnitPrice: price}})
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	details   OrderDetails
	address   order.ShippingAddress
	payment   order.PaymentReference
	lineItems []LineItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates every field up front so the handler never
// opens a transaction for malformed input.
func NewCreateOrderCommand(orderID kernel.UUID, details OrderDetails, lineItems []LineItemSpec) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		details:   details,
		lineItems: append([]LineItemSpec(nil), lineItems...),
		guard:     guard.NewConstructorGuard(),
	}

	address, addressErr := order.NewShippingAddress(details.Address, details.City, details.State, details.ZipCode)
	payment, paymentErr := order.NewPaymentReference(details.PaymentLast4)
	_, itemsErr := buildLineItems(lineItems)

	if err := errors.Join(orderID.Validate(), addressErr, paymentErr, itemsErr); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.address = address
	cmd.payment = payment
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Details() OrderDetails {
	return c.details
}

func (c CreateOrderCommand) LineItems() []LineItemSpec {
	return append([]LineItemSpec(nil), c.lineItems...)
}
