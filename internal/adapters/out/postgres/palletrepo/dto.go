// Package palletrepo persists pallets and their storage positions.
package palletrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pallet"

	"github.com/google/uuid"
)

// PalletDTO is the pallets row. CreatedAt gives GetByProduct its stable
// store order.
type PalletDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name        string      `gorm:"type:varchar(255);not null"`
	ProductID   int64       `gorm:"not null;index"`
	Quantity    int         `gorm:"not null"`
	MaxCapacity int         `gorm:"not null"`
	Status      string      `gorm:"type:varchar(32);not null"`
	Position    PositionDTO `gorm:"embedded;embeddedPrefix:position_"`
	Version     int         `gorm:"not null;default:0"`
	CreatedAt   time.Time   `gorm:"autoCreateTime"`
}

func (PalletDTO) TableName() string {
	return "pallets"
}

// PositionDTO holds the storage position columns; all of them are NULL for
// pallets that are not stored.
type PositionDTO struct {
	ID    *uuid.UUID `gorm:"type:uuid"`
	Area  *string    `gorm:"type:varchar(64)"`
	Row   *string    `gorm:"type:varchar(64)"`
	Bay   *string    `gorm:"type:varchar(64)"`
	Level *int
	Slot  *string `gorm:"type:varchar(64)"`
}

func fromDomain(p *pallet.Pallet) PalletDTO {
	dto := PalletDTO{
		ID:          p.ID().Bytes(),
		Name:        p.Name(),
		ProductID:   p.ProductID().Int64(),
		Quantity:    p.Quantity(),
		MaxCapacity: p.MaxCapacity(),
		Status:      p.Status().String(),
		Version:     p.Version(),
	}

	if pos := p.Position(); pos != nil {
		id := pos.ID().Bytes()
		area, row, bay, slot, level := pos.Area(), pos.Row(), pos.Bay(), pos.Slot(), pos.Level()
		dto.Position = PositionDTO{
			ID:    &id,
			Area:  &area,
			Row:   &row,
			Bay:   &bay,
			Level: &level,
			Slot:  &slot,
		}
	}

	return dto
}

func toDomain(dto PalletDTO) (*pallet.Pallet, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := pallet.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var position *kernel.StoragePosition
	if dto.Position.ID != nil {
		positionID, idErr := kernel.UUIDFromBytes((*dto.Position.ID)[:])
		if idErr != nil {
			return nil, idErr
		}
		pos, posErr := kernel.NewStoragePosition(
			positionID,
			deref(dto.Position.Area),
			deref(dto.Position.Row),
			deref(dto.Position.Bay),
			derefInt(dto.Position.Level),
			deref(dto.Position.Slot),
		)
		if posErr != nil {
			return nil, posErr
		}
		position = &pos
	}

	return pallet.RestorePallet(
		id,
		dto.Name,
		kernel.ProductID(dto.ProductID),
		dto.Quantity,
		dto.MaxCapacity,
		status,
		position,
		dto.Version,
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
