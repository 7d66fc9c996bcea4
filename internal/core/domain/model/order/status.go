package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Processing ──> ReadyForPickup ──> ReadyForShipping ──> Shipped ──> Delivered
//	   │
//	   └──> Canceled
//
// Delivered and Canceled are terminal. The string form is the persisted
// vocabulary shared with the storefront and must not change.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota
	Pending
	Processing
	ReadyForPickup
	ReadyForShipping
	Shipped
	Delivered
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Pending:          "Pending",
		Processing:       "Processing",
		ReadyForPickup:   "Ready for Pickup",
		ReadyForShipping: "Ready for Shipping",
		Shipped:          "Shipped",
		Delivered:        "Delivered",
		Canceled:         "Canceled",
	}
}

// successors lists the single legal forward step of every non-terminal status.
// Canceled is handled separately because it branches off Pending.
func successors() map[Status]Status {
	//nolint:exhaustive // terminal statuses have no successor
	return map[Status]Status{
		Pending:          Processing,
		Processing:       ReadyForPickup,
		ReadyForPickup:   ReadyForShipping,
		ReadyForShipping: Shipped,
		Shipped:          Delivered,
	}
}

// ParseStatus converts a persisted or incoming status string into a Status.
// Matching is case-insensitive and ignores surrounding whitespace.
//
// Example:
//
//	s, err := order.ParseStatus("ready for pickup") // order.ReadyForPickup
func ParseStatus(s string) (Status, error) {
	needle := strings.TrimSpace(s)
	for status, str := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(str, needle) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known order status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s <= Unknown || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted spelling of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// Next returns the unique forward successor of the status.
// The second result is false for terminal statuses.
func (s Status) Next() (Status, bool) {
	next, ok := successors()[s]
	return next, ok
}

// TransitionTo checks that target is a legal move from s and returns it.
//
// Legal moves are the single forward successor, plus Pending -> Canceled.
// Every other target fails with an InvalidTransitionError.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if target == Canceled && s == Pending {
		return Canceled, nil
	}

	if next, ok := s.Next(); ok && next == target {
		return target, nil
	}

	return Unknown, errs.NewInvalidTransitionError("order", s.String(), target.String())
}

// IsAllocatable reports whether line items may be allocated against pallets.
func (s Status) IsAllocatable() bool {
	return s == Pending || s == Processing
}
