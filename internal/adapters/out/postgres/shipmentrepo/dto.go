// Package shipmentrepo persists shipments and their member order lists.
package shipmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

type ShipmentDTO struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Name        string             `gorm:"type:varchar(255);not null"`
	Origin      string             `gorm:"type:varchar(255)"`
	Destination string             `gorm:"type:varchar(255);not null"`
	EmployeeID  string             `gorm:"type:varchar(255);not null;index"`
	Type        string             `gorm:"type:varchar(64)"`
	Status      string             `gorm:"type:varchar(32);not null"`
	CreatedAt   time.Time          `gorm:"not null"`
	Version     int                `gorm:"not null;default:0"`
	Orders      []ShipmentOrderDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

// ShipmentOrderDTO links a member order to its shipment. The unique index on
// OrderID keeps an order in at most one shipment.
type ShipmentOrderDTO struct {
	ShipmentID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex"`
	Position   int       `gorm:"not null"`
}

func (ShipmentOrderDTO) TableName() string {
	return "shipment_orders"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	shipmentID := s.ID().Bytes()
	details := s.Details()

	members := make([]ShipmentOrderDTO, 0, len(s.OrderIDs()))
	for i, orderID := range s.OrderIDs() {
		members = append(members, ShipmentOrderDTO{
			ShipmentID: shipmentID,
			OrderID:    orderID.Bytes(),
			Position:   i,
		})
	}

	return ShipmentDTO{
		ID:          shipmentID,
		Name:        details.Name,
		Origin:      details.Origin,
		Destination: details.Destination,
		EmployeeID:  details.EmployeeID,
		Type:        details.Type,
		Status:      s.Status().String(),
		CreatedAt:   s.CreatedAt(),
		Version:     s.Version(),
		Orders:      members,
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.Orders))
	for _, member := range dto.Orders {
		orderID, idErr := kernel.UUIDFromBytes(member.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	return shipment.RestoreShipment(
		id,
		shipment.Details{
			Name:        dto.Name,
			Origin:      dto.Origin,
			Destination: dto.Destination,
			EmployeeID:  dto.EmployeeID,
			Type:        dto.Type,
		},
		status,
		orderIDs,
		dto.CreatedAt,
		dto.Version,
	)
}
