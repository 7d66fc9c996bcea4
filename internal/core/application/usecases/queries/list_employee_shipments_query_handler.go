package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/access"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListEmployeeShipmentsQueryHandler returns an employee's shipments, open
// ones first and then by creation time.
type ListEmployeeShipmentsQueryHandler struct {
	db   *gorm.DB
	gate *access.Gate
}

func NewListEmployeeShipmentsQueryHandler(db *gorm.DB, gate *access.Gate) ListEmployeeShipmentsQueryHandler {
	return ListEmployeeShipmentsQueryHandler{db: db, gate: gate}
}

func (h ListEmployeeShipmentsQueryHandler) Handle(
	ctx context.Context,
	query ListEmployeeShipmentsQuery,
) ([]ShipmentSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.gate.CanViewShipments(query.Actor(), query.EmployeeID()); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.origin,
			s.destination,
			s.type,
			s.status,
			s.created_at,
			COUNT(so.order_id)
		FROM shipments s
		LEFT JOIN shipment_orders so ON so.shipment_id = s.id
		WHERE s.employee_id = ?
		GROUP BY s.id
		ORDER BY s.status = ?, s.created_at, s.id
	`, query.EmployeeID(), shipment.Completed.String()).Rows()
	if err != nil {
		return nil, errs.NewTransportError("select shipments by employee", err)
	}
	defer rows.Close()

	summaries := make([]ShipmentSummary, 0)
	for rows.Next() {
		var summary ShipmentSummary
		var id uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&summary.Name,
			&summary.Origin,
			&summary.Destination,
			&summary.Type,
			&status,
			&summary.CreatedAt,
			&summary.OrderCount,
		)
		if err != nil {
			return nil, errs.NewTransportError("scan shipment row", err)
		}

		if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if summary.Status, err = shipment.ParseStatus(status); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewTransportError("read shipment rows", err)
	}

	return summaries, nil
}
