package pallet

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the handling state of a pallet. The lower-case spellings come from
// the warehouse screens; Empty is derived and written when quantity reaches zero.
type Status int

const (
	Unknown Status = iota
	Stored
	Shipping
	Processing
	Damaged
	Empty
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Stored:     "stored",
		Shipping:   "shipping",
		Processing: "processing",
		Damaged:    "damaged",
		Empty:      "Empty",
	}
}

// ParseStatus is case-insensitive, so "Stored" and "stored" both parse.
func ParseStatus(s string) (Status, error) {
	needle := strings.TrimSpace(s)
	for status, str := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(str, needle) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known pallet status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Empty {
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
