package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// OrderEventPublisher sends order status changes to interested systems.
// It is called after commit; failures are logged and never undo the change.
type OrderEventPublisher interface {
	PublishStatusChanges(ctx context.Context, changes []order.StatusChanged) error
}
