package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersByStatusQueryHandler reads the order worklist with plain SQL.
// Orders come back oldest first.
type ListOrdersByStatusQueryHandler struct {
	db   *gorm.DB
	gate *access.Gate
}

func NewListOrdersByStatusQueryHandler(db *gorm.DB, gate *access.Gate) ListOrdersByStatusQueryHandler {
	return ListOrdersByStatusQueryHandler{db: db, gate: gate}
}

func (h ListOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByStatusQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.CanViewWarehouse(query.Actor()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_name,
			user_id,
			ordered_at,
			status,
			total,
			item_count,
			shipment_name
		FROM orders
		WHERE status = ?
		ORDER BY ordered_at, id
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, errs.NewTransportError("select orders by status", err)
	}
	defer rows.Close()

	summaries := make([]OrderSummary, 0)
	for rows.Next() {
		var summary OrderSummary
		var id uuid.UUID
		var status string
		var total decimal.Decimal

		err = rows.Scan(
			&id,
			&summary.CustomerName,
			&summary.UserID,
			&summary.OrderedAt,
			&status,
			&total,
			&summary.ItemCount,
			&summary.ShipmentName,
		)
		if err != nil {
			return nil, errs.NewTransportError("scan order row", err)
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if summary.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewTransportError("read order rows", err)
	}

	return summaries, nil
}
