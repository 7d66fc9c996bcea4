package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{errors.Join(errs.NewValueIsInvalidError("a"), errs.NewValueIsRequiredError("b")), http.StatusBadRequest},
		{errs.NewValueIsOutOfRangeError("quantity", 0, 1, 10), http.StatusBadRequest},
		{errs.NewForbiddenError("cancel order"), http.StatusForbidden},
		{errs.NewObjectNotFoundError("orderId", "x"), http.StatusNotFound},
		{errs.NewInvalidStateError("order", "Processing", "edit"), http.StatusConflict},
		{errs.NewInvalidTransitionError("order", "Pending", "Shipped"), http.StatusConflict},
		{errs.NewNotShippableError("x", "is Pending"), http.StatusConflict},
		{errs.NewIncompleteDeliveriesError("x", 2), http.StatusConflict},
		{errs.NewStaleAllocationError("p"), http.StatusConflict},
		{errs.NewVersionIsInvalidError("order"), http.StatusConflict},
		{errs.NewInsufficientStockError(7, "p", 3, 5), http.StatusUnprocessableEntity},
		{errs.NewNoStockLocationError(7), http.StatusUnprocessableEntity},
		{errs.NewTransportError("select", errors.New("eof")), http.StatusServiceUnavailable},
		{echo.NewHTTPError(http.StatusUnsupportedMediaType), http.StatusUnsupportedMediaType},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%T", tt.err), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err), tt.err.Error())
		})
	}
}
