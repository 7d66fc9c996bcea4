package shipment

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the shipment lifecycle state.
type Status int

const (
	Unknown Status = iota
	Pending
	InTransit
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "In Transit",
		Completed: "Completed",
	}
}

// ParseStatus matches case-insensitively, e.g. "in transit".
func ParseStatus(s string) (Status, error) {
	needle := strings.TrimSpace(s)
	for status, str := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(str, needle) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known shipment status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
