// Package allocationrepo persists consumed-pallet markers.
package allocationrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/allocation"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CommitDTO is the allocation_commits row, one per allocated line item.
type CommitDTO struct {
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineItemID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	PalletID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID      int64     `gorm:"not null"`
	Quantity       int       `gorm:"not null"`
	QuantityBefore int       `gorm:"not null"`
	QuantityAfter  int       `gorm:"not null"`
	CommittedAt    time.Time `gorm:"not null;index"`
}

func (CommitDTO) TableName() string {
	return "allocation_commits"
}

func fromDomain(c *allocation.Commit) CommitDTO {
	return CommitDTO{
		OrderID:        c.OrderID().Bytes(),
		LineItemID:     c.LineItemID().Bytes(),
		PalletID:       c.PalletID().Bytes(),
		ProductID:      c.ProductID().Int64(),
		Quantity:       c.Quantity(),
		QuantityBefore: c.QuantityBefore(),
		QuantityAfter:  c.QuantityAfter(),
		CommittedAt:    c.CommittedAt(),
	}
}

func toDomain(dto CommitDTO) (*allocation.Commit, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	lineItemID, err := kernel.UUIDFromBytes(dto.LineItemID[:])
	if err != nil {
		return nil, err
	}
	palletID, err := kernel.UUIDFromBytes(dto.PalletID[:])
	if err != nil {
		return nil, err
	}

	return allocation.RestoreCommit(
		orderID,
		lineItemID,
		palletID,
		kernel.ProductID(dto.ProductID),
		dto.Quantity,
		dto.QuantityBefore,
		dto.QuantityAfter,
		dto.CommittedAt,
	)
}
