package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(c echo.Context) error {
	var req CreateShipmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shipmentID, err := idOrNew(req.ID, "id")
	if err != nil {
		return err
	}
	orderIDs := make([]kernel.UUID, 0, len(req.OrderIDs))
	for _, raw := range req.OrderIDs {
		id, parseErr := idOrNew(raw, "orderIds")
		if parseErr != nil {
			return parseErr
		}
		orderIDs = append(orderIDs, id)
	}

	cmd, err := commands.NewCreateShipmentCommand(actorFrom(c), shipmentID, shipment.Details{
		Name:        req.Name,
		Origin:      req.Origin,
		Destination: req.Destination,
		EmployeeID:  req.EmployeeID,
		Type:        req.Type,
	}, orderIDs)
	if err != nil {
		return err
	}

	sh, err := s.h.CreateShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toShipmentResponse(sh))
}

// StartDelivery handles POST /api/v1/shipments/:id/start.
func (s *Server) StartDelivery(c echo.Context) error {
	shipmentID, err := uuidParam(c, "id", "shipmentId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewStartDeliveryCommand(actorFrom(c), shipmentID)
	if err != nil {
		return err
	}

	sh, err := s.h.Shipments.StartDelivery(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(sh))
}

// MarkOrderDelivered handles POST /api/v1/shipments/:id/orders/:orderId/delivered.
func (s *Server) MarkOrderDelivered(c echo.Context) error {
	shipmentID, err := uuidParam(c, "id", "shipmentId")
	if err != nil {
		return err
	}
	orderID, err := uuidParam(c, "orderId", "orderId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkOrderDeliveredCommand(actorFrom(c), shipmentID, orderID)
	if err != nil {
		return err
	}

	if err = s.h.Shipments.MarkOrderDelivered(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CompleteShipment handles POST /api/v1/shipments/:id/complete.
func (s *Server) CompleteShipment(c echo.Context) error {
	shipmentID, err := uuidParam(c, "id", "shipmentId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewCompleteShipmentCommand(actorFrom(c), shipmentID)
	if err != nil {
		return err
	}

	sh, err := s.h.Shipments.CompleteShipment(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentResponse(sh))
}

// EmployeeShipments handles GET /api/v1/employees/:id/shipments.
func (s *Server) EmployeeShipments(c echo.Context) error {
	query, err := queries.NewListEmployeeShipmentsQuery(actorFrom(c), c.Param("id"))
	if err != nil {
		return err
	}

	rows, err := s.h.EmployeeShipments.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toShipmentSummaries(rows))
}
