package http

import (
	"net/http"
	"strconv"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the body into req and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	orderID, err := idOrNew(req.ID, "id")
	if err != nil {
		return err
	}
	items, err := toLineItemSpecs(req.LineItems)
	if err != nil {
		return err
	}
	orderedAt := time.Now().UTC()
	if req.OrderedAt != nil {
		orderedAt = *req.OrderedAt
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, commands.OrderDetails{
		CustomerName: req.CustomerName,
		UserID:       req.UserID,
		OrderedAt:    orderedAt,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		PaymentLast4: req.PaymentLast4,
	}, items)
	if err != nil {
		return err
	}

	o, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toOrderResponse(o))
}

// ListOrders handles GET /api/v1/orders?status=.
func (s *Server) ListOrders(c echo.Context) error {
	query, err := queries.NewListOrdersByStatusQuery(actorFrom(c), c.QueryParam("status"))
	if err != nil {
		return err
	}

	rows, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderSummaries(rows))
}

// EditLineItems handles PUT /api/v1/orders/:id/items.
func (s *Server) EditLineItems(c echo.Context) error {
	orderID, err := uuidParam(c, "id", "orderId")
	if err != nil {
		return err
	}

	var req EditLineItemsRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	items, err := toLineItemSpecs(req.LineItems)
	if err != nil {
		return err
	}

	cmd, err := commands.NewEditLineItemsCommand(actorFrom(c), orderID, items)
	if err != nil {
		return err
	}

	o, err := s.h.EditLineItems.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// TransitionOrder handles POST /api/v1/orders/:id/transitions.
func (s *Server) TransitionOrder(c echo.Context) error {
	orderID, err := uuidParam(c, "id", "orderId")
	if err != nil {
		return err
	}

	var req TransitionRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}
	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewTransitionOrderCommand(actorFrom(c), orderID, target)
	if err != nil {
		return err
	}

	o, err := s.h.TransitionOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := uuidParam(c, "id", "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCancelOrderCommand(actorFrom(c), orderID)
	if err != nil {
		return err
	}

	o, err := s.h.CancelOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(o))
}

// AllocateLineItem handles POST /api/v1/orders/:id/items/:itemId/allocation.
// A repeated call answers with the marker of the first allocation.
func (s *Server) AllocateLineItem(c echo.Context) error {
	orderID, err := uuidParam(c, "id", "orderId")
	if err != nil {
		return err
	}
	lineItemID, err := uuidParam(c, "itemId", "lineItemId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewAllocateLineItemCommand(actorFrom(c), orderID, lineItemID)
	if err != nil {
		return err
	}

	marker, err := s.h.AllocateLineItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAllocationResponse(marker))
}

// ProductLocations handles GET /api/v1/products/:id/locations.
func (s *Server) ProductLocations(c echo.Context) error {
	raw, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("productId", err)
	}

	query, err := queries.NewGetProductLocationsQuery(actorFrom(c), kernel.ProductID(raw))
	if err != nil {
		return err
	}

	rows, err := s.h.ProductLocations.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPalletLocations(rows))
}
