// Package services provides domain services that coordinate several aggregates
// of the fulfillment domain without touching persistence.
//
// The package includes:
//   - PalletAllocator: picks the pallet a line item is taken from and consumes it
//   - ShipmentAggregator: groups shippable orders and drives them through delivery
package services
