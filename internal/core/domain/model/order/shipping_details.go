package order

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrShippingAddressIsNotConstructed is returned when validating a zero-value ShippingAddress.
var ErrShippingAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"shipping address must be created via NewShippingAddress")

// ShippingAddress is where the customer expects the parcel.
type ShippingAddress struct {
	address string
	city    string
	state   string
	zipCode string
	guard   guard.ConstructorGuard
}

// NewShippingAddress requires every part to be non-blank.
func NewShippingAddress(address, city, state, zipCode string) (ShippingAddress, error) {
	a := ShippingAddress{
		address: strings.TrimSpace(address),
		city:    strings.TrimSpace(city),
		state:   strings.TrimSpace(state),
		zipCode: strings.TrimSpace(zipCode),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireText("address", a.address),
		requireText("city", a.city),
		requireText("state", a.state),
		requireText("zipCode", a.zipCode),
	); err != nil {
		return ShippingAddress{}, err
	}

	return a, nil
}

func (a ShippingAddress) Validate() error {
	return a.guard.Validate(ErrShippingAddressIsNotConstructed)
}

func (a ShippingAddress) Address() string {
	return a.address
}

func (a ShippingAddress) City() string {
	return a.city
}

func (a ShippingAddress) State() string {
	return a.state
}

func (a ShippingAddress) ZipCode() string {
	return a.zipCode
}

// String renders a single-line label, e.g. "12 Dock St, Portland, OR 97201".
func (a ShippingAddress) String() string {
	return fmt.Sprintf("%s, %s, %s %s", a.address, a.city, a.state, a.zipCode)
}

// PaymentReference holds the last four digits of the payment card.
// Full card numbers never reach this service.
type PaymentReference string

// NewPaymentReference accepts exactly four ASCII digits.
func NewPaymentReference(last4 string) (PaymentReference, error) {
	ref := PaymentReference(strings.TrimSpace(last4))
	if err := ref.Validate(); err != nil {
		return "", err
	}
	return ref, nil
}

func (p PaymentReference) Validate() error {
	if len(p) != 4 {
		return errs.NewValueIsInvalidErrorWithCause("paymentLast4", fmt.Errorf("expected 4 digits, got %d characters", len(p)))
	}
	for _, r := range string(p) {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause("paymentLast4", fmt.Errorf("%q is not a digit", r))
		}
	}
	return nil
}

func (p PaymentReference) String() string {
	return string(p)
}

func requireText(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
