// Package order contains the Order aggregate and its lifecycle.
//
// An order is created Pending by the commerce flow and then walks a strict chain:
//
//	Pending ──> Processing ──> Ready for Pickup ──> Ready for Shipping ──> Shipped ──> Delivered
//	   │
//	   └──> Canceled
//
// Line items can be edited only while the order is Pending and none of them has
// been allocated against a pallet. Totals (item count and value) are always
// recomputed from the current line items and never set directly.
//
// Status changes are recorded on the aggregate and collected by the unit of
// work after commit so that they can be published as order-changed events.
package order
