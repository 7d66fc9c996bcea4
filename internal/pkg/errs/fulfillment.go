package errs

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidState         = errors.New("invalid state")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrNoStockLocation      = errors.New("no stock location")
	ErrStaleAllocation      = errors.New("stale allocation")
	ErrNotShippable         = errors.New("not shippable")
	ErrIncompleteDeliveries = errors.New("incomplete deliveries")
	ErrTransport            = errors.New("transport error")
)

// ForbiddenError reports a failed role or ownership check.
type ForbiddenError struct {
	Operation string
	Cause     error
}

func NewForbiddenError(operation string) *ForbiddenError {
	return &ForbiddenError{Operation: operation}
}

func NewForbiddenErrorWithCause(operation string, cause error) *ForbiddenError {
	return &ForbiddenError{Operation: operation, Cause: cause}
}

func (e *ForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrForbidden, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrForbidden, e.Operation)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// InvalidStateError reports an operation that is not legal for the entity's
// current status.
type InvalidStateError struct {
	Entity    string
	State     string
	Operation string
}

func NewInvalidStateError(entity, state, operation string) *InvalidStateError {
	return &InvalidStateError{Entity: entity, State: state, Operation: operation}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s %s in status %q", ErrInvalidState, e.Operation, e.Entity, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// InvalidTransitionError reports a requested status that is not the legal
// successor of the current one.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func NewInvalidTransitionError(entity, from, to string) *InvalidTransitionError {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %q to %q", ErrInvalidTransition, e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// InsufficientStockError reports that the best candidate pallet holds less
// than the requested quantity.
type InsufficientStockError struct {
	ProductID any
	PalletID  any
	Available int
	Requested int
}

func NewInsufficientStockError(productID, palletID any, available, requested int) *InsufficientStockError {
	return &InsufficientStockError{
		ProductID: productID,
		PalletID:  palletID,
		Available: available,
		Requested: requested,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: product %v, pallet %v holds %d, requested %d",
		ErrInsufficientStock, e.ProductID, e.PalletID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// NoStockLocationError reports that no pallet references the product.
type NoStockLocationError struct {
	ProductID any
}

func NewNoStockLocationError(productID any) *NoStockLocationError {
	return &NoStockLocationError{ProductID: productID}
}

func (e *NoStockLocationError) Error() string {
	return fmt.Sprintf("%s: product %v", ErrNoStockLocation, e.ProductID)
}

func (e *NoStockLocationError) Unwrap() error {
	return ErrNoStockLocation
}

// StaleAllocationError reports that the selected pallet changed between
// selection and commit.
type StaleAllocationError struct {
	PalletID any
	Cause    error
}

func NewStaleAllocationError(palletID any) *StaleAllocationError {
	return &StaleAllocationError{PalletID: palletID}
}

func NewStaleAllocationErrorWithCause(palletID any, cause error) *StaleAllocationError {
	return &StaleAllocationError{PalletID: palletID, Cause: cause}
}

func (e *StaleAllocationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: pallet %v changed since selection (cause: %v)", ErrStaleAllocation, e.PalletID, e.Cause)
	}
	return fmt.Sprintf("%s: pallet %v changed since selection", ErrStaleAllocation, e.PalletID)
}

func (e *StaleAllocationError) Unwrap() error {
	return ErrStaleAllocation
}

// NotShippableError reports an order that cannot be attached to a shipment.
type NotShippableError struct {
	OrderID any
	Reason  string
}

func NewNotShippableError(orderID any, reason string) *NotShippableError {
	return &NotShippableError{OrderID: orderID, Reason: reason}
}

func (e *NotShippableError) Error() string {
	return fmt.Sprintf("%s: order %v %s", ErrNotShippable, e.OrderID, e.Reason)
}

func (e *NotShippableError) Unwrap() error {
	return ErrNotShippable
}

// IncompleteDeliveriesError reports a shipment that still has undelivered
// member orders.
type IncompleteDeliveriesError struct {
	ShipmentID  any
	Undelivered int
}

func NewIncompleteDeliveriesError(shipmentID any, undelivered int) *IncompleteDeliveriesError {
	return &IncompleteDeliveriesError{ShipmentID: shipmentID, Undelivered: undelivered}
}

func (e *IncompleteDeliveriesError) Error() string {
	return fmt.Sprintf("%s: shipment %v has %d undelivered orders", ErrIncompleteDeliveries, e.ShipmentID, e.Undelivered)
}

func (e *IncompleteDeliveriesError) Unwrap() error {
	return ErrIncompleteDeliveries
}

// TransportError wraps an opaque backing-store or network failure. Unlike the
// other types it unwraps to both the sentinel and the cause, so callers can
// still match context.Canceled and friends.
type TransportError struct {
	Operation string
	Cause     error
}

func NewTransportError(operation string, cause error) *TransportError {
	return &TransportError{Operation: operation, Cause: cause}
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrTransport, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrTransport, e.Operation)
}

func (e *TransportError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Cause}
}
