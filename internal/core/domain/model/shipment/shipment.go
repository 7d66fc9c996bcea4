package shipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrOrdersAreRequired is returned for a shipment without member orders.
	ErrOrdersAreRequired = errs.NewValueIsRequiredError("orderIds")
)

// Details are the descriptive attributes of a shipment entered by the
// shipping manager.
type Details struct {
	Name        string
	Origin      string
	Destination string
	EmployeeID  string
	Type        string
}

// Shipment groups orders that leave the warehouse together.
//
// Invariants:
//   - name, destination and employee are non-blank
//   - at least one member order, no duplicates
//   - status follows Pending -> In Transit -> Completed
type Shipment struct {
	id        kernel.UUID
	details   Details
	status    Status
	orderIDs  []kernel.UUID
	createdAt time.Time
	version   int
	guard     guard.ConstructorGuard
}

// NewShipment creates a Pending shipment.
//
// Example:
//
//	sh, err := shipment.NewShipment(kernel.NewUUID(), shipment.Details{
//	    Name:        "North run 14",
//	    Origin:      "Main warehouse",
//	    Destination: "Portland hub",
//	    EmployeeID:  "emp-31",
//	    Type:        "Truck",
//	}, orderIDs, time.Now())
func NewShipment(id kernel.UUID, details Details, orderIDs []kernel.UUID, createdAt time.Time) (*Shipment, error) {
	return RestoreShipment(id, details, Pending, orderIDs, createdAt, 0)
}

// RestoreShipment reconstructs a Shipment from persistent storage.
func RestoreShipment(
	id kernel.UUID,
	details Details,
	status Status,
	orderIDs []kernel.UUID,
	createdAt time.Time,
	version int,
) (*Shipment, error) {
	s := &Shipment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setDetails(details),
		status.Validate(),
		s.setOrderIDs(orderIDs),
		s.setVersion(version),
	); err != nil {
		return nil, err
	}

	s.status = status
	s.createdAt = createdAt.UTC()
	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

func (s *Shipment) ID() kernel.UUID {
	return s.id
}

func (s *Shipment) Name() string {
	return s.details.Name
}

// Details returns a copy of the descriptive attributes.
func (s *Shipment) Details() Details {
	return s.details
}

func (s *Shipment) Status() Status {
	return s.status
}

func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Shipment) Version() int {
	return s.version
}

// IncrementVersion is called by the repository after a successful compare-and-swap write.
func (s *Shipment) IncrementVersion() {
	s.version++
}

// OrderIDs returns the member orders in the order they were attached.
func (s *Shipment) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(s.orderIDs))
	copy(ids, s.orderIDs)
	return ids
}

// Contains reports whether orderID is a member of the shipment.
func (s *Shipment) Contains(orderID kernel.UUID) bool {
	for _, id := range s.orderIDs {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// Start dispatches a Pending shipment.
func (s *Shipment) Start() error {
	if s.status != Pending {
		return errs.NewInvalidStateError("shipment", s.status.String(), "start")
	}
	s.status = InTransit
	return nil
}

// EnsureDeliverable checks that a member order can be confirmed as delivered:
// the shipment must be In Transit and the order must belong to it.
func (s *Shipment) EnsureDeliverable(orderID kernel.UUID) error {
	if s.status != InTransit {
		return errs.NewInvalidStateError("shipment", s.status.String(), "confirm deliveries of")
	}
	if !s.Contains(orderID) {
		return errs.NewObjectNotFoundErrorWithCause("orderId", orderID,
			fmt.Errorf("order is not part of shipment %q", s.details.Name))
	}
	return nil
}

// Complete closes an In Transit shipment. undelivered is the number of member
// orders that have not reached Delivered; any of them blocks completion.
func (s *Shipment) Complete(undelivered int) error {
	if s.status != InTransit {
		return errs.NewInvalidStateError("shipment", s.status.String(), "complete")
	}
	if undelivered > 0 {
		return errs.NewIncompleteDeliveriesError(s.id, undelivered)
	}
	s.status = Completed
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setDetails(d Details) error {
	d = Details{
		Name:        strings.TrimSpace(d.Name),
		Origin:      strings.TrimSpace(d.Origin),
		Destination: strings.TrimSpace(d.Destination),
		EmployeeID:  strings.TrimSpace(d.EmployeeID),
		Type:        strings.TrimSpace(d.Type),
	}

	var err error
	if d.Name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("name"))
	}
	if d.Destination == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("destination"))
	}
	if d.EmployeeID == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("employeeId"))
	}
	if err != nil {
		return err
	}

	s.details = d
	return nil
}

func (s *Shipment) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return ErrOrdersAreRequired
	}

	seen := make(map[kernel.UUID]struct{}, len(orderIDs))
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, dup := seen[id]; dup {
			return errs.NewValueIsInvalidErrorWithCause("orderIds", fmt.Errorf("order %s is listed twice", id))
		}
		seen[id] = struct{}{}
	}

	s.orderIDs = append([]kernel.UUID(nil), orderIDs...)
	return nil
}

func (s *Shipment) setVersion(version int) error {
	if version < 0 {
		return errs.NewValueIsInvalidErrorWithCause("version", fmt.Errorf("%d is negative", version))
	}
	s.version = version
	return nil
}
