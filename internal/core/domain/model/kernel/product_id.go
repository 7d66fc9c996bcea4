package kernel

import (
	"fmt"
	"strconv"

	"fulfillment/internal/pkg/errs"
)

// ProductID references a catalog product. Catalog ids are positive integers
// issued by the product master-data service.
type ProductID int64

// NewProductID validates that id is positive.
func NewProductID(id int64) (ProductID, error) {
	p := ProductID(id)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p, nil
}

// Validate rejects zero and negative ids.
func (p ProductID) Validate() error {
	if p <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not greater than 0", int64(p)))
	}
	return nil
}

// Int64 returns the raw id.
func (p ProductID) Int64() int64 {
	return int64(p)
}

func (p ProductID) String() string {
	return strconv.FormatInt(int64(p), 10)
}
