// Package queries contains the read side of the fulfillment service: the
// warehouse worklists. Queries read straight from the database into read
// models and never go through a unit of work.
package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrListOrdersByStatusQueryIsNotConstructed = errors.New(
	"ListOrdersByStatusQuery must be created via NewListOrdersByStatusQuery constructor",
)

// ListOrdersByStatusQuery asks for every order currently in one status, the
// worklist an employee picks the next order from.
//
// Example:
//
//	query, err := NewListOrdersByStatusQuery(actor, "ready for pickup")
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersByStatusQuery struct {
	actor  access.Actor
	status order.Status
	guard  guard.ConstructorGuard
}

// NewListOrdersByStatusQuery parses status case-insensitively.
func NewListOrdersByStatusQuery(actor access.Actor, status string) (ListOrdersByStatusQuery, error) {
	parsed, err := order.ParseStatus(status)
	if err != nil {
		return ListOrdersByStatusQuery{}, err
	}

	return ListOrdersByStatusQuery{
		actor:  actor,
		status: parsed,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStatusQueryIsNotConstructed)
}

func (q ListOrdersByStatusQuery) Actor() access.Actor {
	return q.actor
}

func (q ListOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// OrderSummary is one worklist row.
type OrderSummary struct {
	ID           kernel.UUID
	CustomerName string
	UserID       string
	OrderedAt    time.Time
	Status       order.Status
	Total        kernel.Money
	ItemCount    int
	ShipmentName *string
}
