// Package http is the REST transport of the fulfillment service. Handlers
// translate requests into commands and queries and map the error taxonomy
// onto status codes; all rules live in the core.
package http

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	EditLineItemsHandler interface {
		Handle(ctx context.Context, cmd commands.EditLineItemsCommand) (*order.Order, error)
	}
	TransitionOrderHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderCommand) (*order.Order, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	AllocateLineItemHandler interface {
		Handle(ctx context.Context, cmd commands.AllocateLineItemCommand) (*allocation.Commit, error)
	}
	CreateShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.CreateShipmentCommand) (*shipment.Shipment, error)
	}
	ShipmentOperations interface {
		StartDelivery(ctx context.Context, cmd commands.StartDeliveryCommand) (*shipment.Shipment, error)
		MarkOrderDelivered(ctx context.Context, cmd commands.MarkOrderDeliveredCommand) error
		CompleteShipment(ctx context.Context, cmd commands.CompleteShipmentCommand) (*shipment.Shipment, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersByStatusQuery) ([]queries.OrderSummary, error)
	}
	ProductLocationsHandler interface {
		Handle(ctx context.Context, query queries.GetProductLocationsQuery) ([]queries.PalletLocation, error)
	}
	EmployeeShipmentsHandler interface {
		Handle(ctx context.Context, query queries.ListEmployeeShipmentsQuery) ([]queries.ShipmentSummary, error)
	}
)

// Handlers bundles the use cases served over HTTP.
type Handlers struct {
	CreateOrder       CreateOrderHandler
	EditLineItems     EditLineItemsHandler
	TransitionOrder   TransitionOrderHandler
	CancelOrder       CancelOrderHandler
	AllocateLineItem  AllocateLineItemHandler
	CreateShipment    CreateShipmentHandler
	Shipments         ShipmentOperations
	ListOrders        ListOrdersHandler
	ProductLocations  ProductLocationsHandler
	EmployeeShipments EmployeeShipmentsHandler
}

// Server holds the use cases behind the REST routes.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// Register mounts the API routes under /api/v1.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.PUT("/orders/:id/items", s.EditLineItems)
	api.POST("/orders/:id/transitions", s.TransitionOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/items/:itemId/allocation", s.AllocateLineItem)

	api.GET("/products/:id/locations", s.ProductLocations)

	api.POST("/shipments", s.CreateShipment)
	api.POST("/shipments/:id/start", s.StartDelivery)
	api.POST("/shipments/:id/orders/:orderId/delivered", s.MarkOrderDelivered)
	api.POST("/shipments/:id/complete", s.CompleteShipment)
	api.GET("/employees/:id/shipments", s.EmployeeShipments)
}
