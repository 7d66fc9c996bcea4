package postgres

import (
	"fulfillment/internal/adapters/out/postgres/allocationrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/palletrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every fulfillment table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&palletrepo.PalletDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ShipmentOrderDTO{},
		&allocationrepo.CommitDTO{},
	)
}

// Tables lists the fulfillment tables, children first.
func Tables() []string {
	return []string{
		"allocation_commits",
		"shipment_orders",
		"shipments",
		"order_line_items",
		"orders",
		"pallets",
	}
}
