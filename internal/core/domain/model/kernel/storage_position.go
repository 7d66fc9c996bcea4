package kernel

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// unresolvedSlotName is the placeholder the warehouse-structure screens write
// for slots that were never named.
const unresolvedSlotName = "N/A"

// ErrStoragePositionIsNotConstructed is returned when validating a zero-value StoragePosition.
var ErrStoragePositionIsNotConstructed = errs.NewValueIsRequiredError(
	"storage position must be created via NewStoragePosition")

// StoragePosition is an opaque handle to a warehouse slot (area/row/bay/level/slot).
// Fulfillment only uses it as an identity and a display label; allocation logic
// never looks at its internal structure beyond IsResolved.
//
// Example:
//
//	pos, err := kernel.NewStoragePosition(kernel.NewUUID(), "A", "R1", "B3", 2, "S07")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(pos.Label()) // A/R1/B3/L2/S07
type StoragePosition struct { //nolint:recvcheck //using for validation
	id    UUID
	area  string
	row   string
	bay   string
	level int
	slot  string
	guard guard.ConstructorGuard
}

// NewStoragePosition validates the identity and level; names may be empty
// because the topology screens allow partially named positions.
func NewStoragePosition(id UUID, area, row, bay string, level int, slot string) (StoragePosition, error) {
	pos := StoragePosition{
		area:  strings.TrimSpace(area),
		row:   strings.TrimSpace(row),
		bay:   strings.TrimSpace(bay),
		slot:  strings.TrimSpace(slot),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(pos.setID(id), pos.setLevel(level)); err != nil {
		return StoragePosition{}, err
	}

	return pos, nil
}

func (p StoragePosition) Validate() error {
	return p.guard.Validate(ErrStoragePositionIsNotConstructed)
}

func (p StoragePosition) ID() UUID {
	return p.id
}

func (p StoragePosition) Area() string {
	return p.area
}

func (p StoragePosition) Row() string {
	return p.row
}

func (p StoragePosition) Bay() string {
	return p.bay
}

func (p StoragePosition) Level() int {
	return p.level
}

func (p StoragePosition) Slot() string {
	return p.slot
}

// IsResolved reports whether the position points at a named slot a picker can
// walk to. Unnamed slots and the "N/A" placeholder are unresolved.
func (p StoragePosition) IsResolved() bool {
	if p.Validate() != nil {
		return false
	}
	return p.slot != "" && !strings.EqualFold(p.slot, unresolvedSlotName)
}

// Label renders the position for pick lists, with "-" for missing parts.
func (p StoragePosition) Label() string {
	part := func(s string) string {
		if s == "" {
			return "-"
		}
		return s
	}
	return fmt.Sprintf("%s/%s/%s/L%d/%s", part(p.area), part(p.row), part(p.bay), p.level, part(p.slot))
}

// IsEqual compares positions by identity.
func (p StoragePosition) IsEqual(other StoragePosition) bool {
	return p.id.IsEqual(other.id)
}

func (p *StoragePosition) setID(id UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *StoragePosition) setLevel(level int) error {
	if level < 0 {
		return errs.NewValueIsInvalidErrorWithCause("level", fmt.Errorf("%d is negative", level))
	}
	p.level = level
	return nil
}
