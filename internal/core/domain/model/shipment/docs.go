// Package shipment contains the Shipment aggregate: a named group of orders
// dispatched together to one destination under one employee.
//
// State transitions:
//
//	Pending ──> In Transit ──> Completed
//
// A shipment can only be completed once every member order was delivered;
// that check needs the member orders and lives in services.ShipmentAggregator.
package shipment
