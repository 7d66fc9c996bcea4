package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

type LineItemRequest struct {
	ID        string `json:"id"        validate:"omitempty,uuid"`
	ProductID int64  `json:"productId" validate:"required,gt=0"`
	Quantity  int    `json:"quantity"  validate:"required,gt=0"`
	UnitPrice string `json:"unitPrice" validate:"required,numeric"`
}

type CreateOrderRequest struct {
	ID           string            `json:"id"           validate:"omitempty,uuid"`
	CustomerName string            `json:"customerName" validate:"required"`
	UserID       string            `json:"userId"       validate:"required"`
	OrderedAt    *time.Time        `json:"orderedAt"`
	Address      string            `json:"address"      validate:"required"`
	City         string            `json:"city"         validate:"required"`
	State        string            `json:"state"        validate:"required"`
	ZipCode      string            `json:"zipCode"      validate:"required"`
	PaymentLast4 string            `json:"paymentLast4" validate:"required,len=4,numeric"`
	LineItems    []LineItemRequest `json:"lineItems"    validate:"required,min=1,dive"`
}

type EditLineItemsRequest struct {
	LineItems []LineItemRequest `json:"lineItems" validate:"required,min=1,dive"`
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}

type CreateShipmentRequest struct {
	ID          string   `json:"id"          validate:"omitempty,uuid"`
	Name        string   `json:"name"        validate:"required"`
	Origin      string   `json:"origin"`
	Destination string   `json:"destination" validate:"required"`
	EmployeeID  string   `json:"employeeId"  validate:"required"`
	Type        string   `json:"type"`
	OrderIDs    []string `json:"orderIds"    validate:"required,min=1,dive,uuid"`
}

type LineItemResponse struct {
	ID                string  `json:"id"`
	ProductID         int64   `json:"productId"`
	Quantity          int     `json:"quantity"`
	UnitPrice         string  `json:"unitPrice"`
	Subtotal          string  `json:"subtotal"`
	AllocatedPalletID *string `json:"allocatedPalletId,omitempty"`
}

type OrderResponse struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"customerName"`
	UserID       string             `json:"userId"`
	OrderedAt    time.Time          `json:"orderedAt"`
	Address      string             `json:"address"`
	City         string             `json:"city"`
	State        string             `json:"state"`
	ZipCode      string             `json:"zipCode"`
	PaymentLast4 string             `json:"paymentLast4"`
	Status       string             `json:"status"`
	Total        string             `json:"total"`
	ItemCount    int                `json:"itemCount"`
	ShipmentName *string            `json:"shipmentName,omitempty"`
	LineItems    []LineItemResponse `json:"lineItems"`
}

type AllocationResponse struct {
	OrderID        string    `json:"orderId"`
	LineItemID     string    `json:"lineItemId"`
	PalletID       string    `json:"palletId"`
	ProductID      int64     `json:"productId"`
	Quantity       int       `json:"quantity"`
	QuantityBefore int       `json:"quantityBefore"`
	QuantityAfter  int       `json:"quantityAfter"`
	CommittedAt    time.Time `json:"committedAt"`
}

type ShipmentResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	EmployeeID  string    `json:"employeeId"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	OrderIDs    []string  `json:"orderIds"`
}

type OrderSummaryResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	UserID       string    `json:"userId"`
	OrderedAt    time.Time `json:"orderedAt"`
	Status       string    `json:"status"`
	Total        string    `json:"total"`
	ItemCount    int       `json:"itemCount"`
	ShipmentName *string   `json:"shipmentName,omitempty"`
}

type PalletLocationResponse struct {
	PalletID string `json:"palletId"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
	Position string `json:"position,omitempty"`
	Resolved bool   `json:"resolved"`
}

type ShipmentSummaryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	OrderCount  int       `json:"orderCount"`
}

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// idOrNew parses an optional client-supplied id.
func idOrNew(raw, param string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.NewUUID(), nil
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(param, err)
	}
	return id, nil
}

func toLineItemSpecs(items []LineItemRequest) ([]commands.LineItemSpec, error) {
	specs := make([]commands.LineItemSpec, 0, len(items))
	for _, item := range items {
		id, err := idOrNew(item.ID, "lineItems.id")
		if err != nil {
			return nil, err
		}
		price, err := kernel.MoneyFromString(item.UnitPrice)
		if err != nil {
			return nil, err
		}
		specs = append(specs, commands.LineItemSpec{
			ID:        id,
			ProductID: kernel.ProductID(item.ProductID),
			Quantity:  item.Quantity,
			UnitPrice: price,
		})
	}
	return specs, nil
}

func toOrderResponse(o *order.Order) OrderResponse {
	address := o.ShippingAddress()
	items := make([]LineItemResponse, 0, len(o.LineItems()))
	for _, item := range o.LineItems() {
		var palletID *string
		if p := item.AllocatedPallet(); p != nil {
			s := p.String()
			palletID = &s
		}
		items = append(items, LineItemResponse{
			ID:                item.ID().String(),
			ProductID:         item.ProductID().Int64(),
			Quantity:          item.Quantity(),
			UnitPrice:         item.UnitPrice().String(),
			Subtotal:          item.Subtotal().String(),
			AllocatedPalletID: palletID,
		})
	}

	return OrderResponse{
		ID:           o.ID().String(),
		CustomerName: o.CustomerName(),
		UserID:       o.UserID(),
		OrderedAt:    o.OrderedAt(),
		Address:      address.Address(),
		City:         address.City(),
		State:        address.State(),
		ZipCode:      address.ZipCode(),
		PaymentLast4: o.Payment().String(),
		Status:       o.Status().String(),
		Total:        o.Total().String(),
		ItemCount:    o.ItemCount(),
		ShipmentName: o.ShipmentName(),
		LineItems:    items,
	}
}

func toAllocationResponse(c *allocation.Commit) AllocationResponse {
	return AllocationResponse{
		OrderID:        c.OrderID().String(),
		LineItemID:     c.LineItemID().String(),
		PalletID:       c.PalletID().String(),
		ProductID:      c.ProductID().Int64(),
		Quantity:       c.Quantity(),
		QuantityBefore: c.QuantityBefore(),
		QuantityAfter:  c.QuantityAfter(),
		CommittedAt:    c.CommittedAt(),
	}
}

func toShipmentResponse(s *shipment.Shipment) ShipmentResponse {
	details := s.Details()
	orderIDs := make([]string, 0, len(s.OrderIDs()))
	for _, id := range s.OrderIDs() {
		orderIDs = append(orderIDs, id.String())
	}

	return ShipmentResponse{
		ID:          s.ID().String(),
		Name:        details.Name,
		Origin:      details.Origin,
		Destination: details.Destination,
		EmployeeID:  details.EmployeeID,
		Type:        details.Type,
		Status:      s.Status().String(),
		CreatedAt:   s.CreatedAt(),
		OrderIDs:    orderIDs,
	}
}

func toOrderSummaries(rows []queries.OrderSummary) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = OrderSummaryResponse{
			ID:           row.ID.String(),
			CustomerName: row.CustomerName,
			UserID:       row.UserID,
			OrderedAt:    row.OrderedAt,
			Status:       row.Status.String(),
			Total:        row.Total.String(),
			ItemCount:    row.ItemCount,
			ShipmentName: row.ShipmentName,
		}
	}
	return response
}

func toPalletLocations(rows []queries.PalletLocation) []PalletLocationResponse {
	response := make([]PalletLocationResponse, len(rows))
	for i, row := range rows {
		response[i] = PalletLocationResponse{
			PalletID: row.PalletID.String(),
			Name:     row.Name,
			Quantity: row.Quantity,
			Status:   row.Status.String(),
			Position: row.Position,
			Resolved: row.Resolved,
		}
	}
	return response
}

func toShipmentSummaries(rows []queries.ShipmentSummary) []ShipmentSummaryResponse {
	response := make([]ShipmentSummaryResponse, len(rows))
	for i, row := range rows {
		response[i] = ShipmentSummaryResponse{
			ID:          row.ID.String(),
			Name:        row.Name,
			Origin:      row.Origin,
			Destination: row.Destination,
			Type:        row.Type,
			Status:      row.Status.String(),
			CreatedAt:   row.CreatedAt,
			OrderCount:  row.OrderCount,
		}
	}
	return response
}
