package commands

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrPurgeAllocationMarkersCommandIsNotConstructed = errors.New(
	"PurgeAllocationMarkersCommand must be created via NewPurgeAllocationMarkersCommand constructor",
)

// PurgeAllocationMarkersCommand removes consumed-pallet markers of settled
// orders once they are older than retention. Markers of open orders are kept
// because they are what makes a retried allocation a no-op.
type PurgeAllocationMarkersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration
	guard     guard.ConstructorGuard
}

func NewPurgeAllocationMarkersCommand(retention time.Duration) (PurgeAllocationMarkersCommand, error) {
	if retention <= 0 {
		return PurgeAllocationMarkersCommand{}, errs.NewValueIsInvalidErrorWithCause("retention",
			fmt.Errorf("%s is not positive", retention))
	}

	return PurgeAllocationMarkersCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PurgeAllocationMarkersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeAllocationMarkersCommandIsNotConstructed)
}

func (c PurgeAllocationMarkersCommand) Retention() time.Duration {
	return c.retention
}
