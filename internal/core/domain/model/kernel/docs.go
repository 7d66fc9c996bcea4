// Package kernel provides the shared value objects of the fulfillment domain.
//
// The package includes:
//   - UUID: identifier of orders, line items, pallets, shipments and positions
//   - ProductID: reference to a catalog product (the catalog itself lives elsewhere)
//   - Money: non-negative monetary amount backed by shopspring/decimal
//   - StoragePosition: opaque warehouse slot handle used as identity and display label
//
// Zero values of these types are invalid; use the constructors.
package kernel
