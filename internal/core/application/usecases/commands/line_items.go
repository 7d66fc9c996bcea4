package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ErrLineItemsAreRequired is returned for an empty line item list.
var ErrLineItemsAreRequired = errs.NewValueIsRequiredError("lineItems")

// LineItemSpec describes one requested order line.
type LineItemSpec struct {
	ID        kernel.UUID
	ProductID kernel.ProductID
	Quantity  int
	UnitPrice kernel.Money
}

// buildLineItems turns specs into fresh, unallocated line items.
// All specs are checked; the returned error names every invalid line.
func buildLineItems(specs []LineItemSpec) ([]*order.LineItem, error) {
	if len(specs) == 0 {
		return nil, ErrLineItemsAreRequired
	}

	items := make([]*order.LineItem, 0, len(specs))
	var err error
	for i, spec := range specs {
		item, itemErr := order.NewLineItem(spec.ID, spec.ProductID, spec.Quantity, spec.UnitPrice)
		if itemErr != nil {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("lineItems[%d]", i), itemErr))
			continue
		}
		items = append(items, item)
	}
	if err != nil {
		return nil, err
	}

	return items, nil
}
