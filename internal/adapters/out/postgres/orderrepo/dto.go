// Package orderrepo persists order aggregates and their line items.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Status is stored with its display spelling.
type OrderDTO struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	CustomerName string             `gorm:"type:varchar(255);not null"`
	UserID       string             `gorm:"type:varchar(255);not null;index"`
	OrderedAt    time.Time          `gorm:"not null"`
	Shipping     ShippingAddressDTO `gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentLast4 string             `gorm:"type:char(4);not null"`
	Total        decimal.Decimal    `gorm:"type:numeric(14,2);not null"`
	ItemCount    int                `gorm:"not null"`
	Status       string             `gorm:"type:varchar(32);not null;index"`
	ShipmentName *string            `gorm:"type:varchar(255);index"`
	Version      int                `gorm:"not null;default:0"`
	LineItems    []LineItemDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ShippingAddressDTO struct {
	Address string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(128)"`
	State   string `gorm:"type:varchar(64)"`
	ZipCode string `gorm:"type:varchar(16)"`
}

// LineItemDTO is the order_line_items row. Position keeps the order of
// items as entered.
type LineItemDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position          int             `gorm:"not null"`
	ProductID         int64           `gorm:"not null;index"`
	Quantity          int             `gorm:"not null"`
	UnitPrice         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AllocatedPalletID *uuid.UUID      `gorm:"type:uuid"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()
	address := o.ShippingAddress()

	items := make([]LineItemDTO, 0, len(o.LineItems()))
	for i, item := range o.LineItems() {
		var palletID *uuid.UUID
		if p := item.AllocatedPallet(); p != nil {
			raw := p.Bytes()
			palletID = &raw
		}
		items = append(items, LineItemDTO{
			ID:                item.ID().Bytes(),
			OrderID:           orderID,
			Position:          i,
			ProductID:         item.ProductID().Int64(),
			Quantity:          item.Quantity(),
			UnitPrice:         item.UnitPrice().Decimal(),
			AllocatedPalletID: palletID,
		})
	}

	return OrderDTO{
		ID:           orderID,
		CustomerName: o.CustomerName(),
		UserID:       o.UserID(),
		OrderedAt:    o.OrderedAt(),
		Shipping: ShippingAddressDTO{
			Address: address.Address(),
			City:    address.City(),
			State:   address.State(),
			ZipCode: address.ZipCode(),
		},
		PaymentLast4: o.Payment().String(),
		Total:        o.Total().Decimal(),
		ItemCount:    o.ItemCount(),
		Status:       o.Status().String(),
		ShipmentName: o.ShipmentName(),
		Version:      o.Version(),
		LineItems:    items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	address, err := order.NewShippingAddress(dto.Shipping.Address, dto.Shipping.City, dto.Shipping.State, dto.Shipping.ZipCode)
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, itemDTO := range dto.LineItems {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		dto.UserID,
		dto.OrderedAt,
		address,
		order.PaymentReference(dto.PaymentLast4),
		items,
		status,
		dto.ShipmentName,
		dto.Version,
	)
}

func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	var palletID *kernel.UUID
	if dto.AllocatedPalletID != nil {
		pID, palletErr := kernel.UUIDFromBytes((*dto.AllocatedPalletID)[:])
		if palletErr != nil {
			return nil, palletErr
		}
		palletID = &pID
	}

	return order.RestoreLineItem(id, kernel.ProductID(dto.ProductID), dto.Quantity, price, palletID)
}
