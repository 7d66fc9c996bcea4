// Package kafka publishes order status changes to the order-changed topic.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

const (
	eventType   = "fulfillment.order.status_changed"
	contentType = "application/json"
)

// OrderStatusChangedMessage is the JSON payload of one message. Statuses use
// their persisted spelling, e.g. "Ready for Pickup".
type OrderStatusChangedMessage struct {
	EventID    string    `json:"eventId"`
	OrderID    string    `json:"orderId"`
	UserID     string    `json:"userId"`
	OldStatus  string    `json:"oldStatus"`
	NewStatus  string    `json:"newStatus"`
	OccurredAt time.Time `json:"occurredAt"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderChangedProducer implements ports.OrderEventPublisher on a kafka.Writer.
// Messages are keyed by order id so one order's changes stay in one partition.
type OrderChangedProducer struct {
	writer messageWriter
}

func NewOrderChangedProducer(brokers []string, topic string) (*OrderChangedProducer, error) {
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	return newOrderChangedProducer(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}), nil
}

func newOrderChangedProducer(writer messageWriter) *OrderChangedProducer {
	return &OrderChangedProducer{writer: writer}
}

// PublishStatusChanges writes all changes in one batch.
func (p *OrderChangedProducer) PublishStatusChanges(ctx context.Context, changes []order.StatusChanged) error {
	if len(changes) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(changes))
	for _, change := range changes {
		msg, err := toMessage(change)
		if err != nil {
			return err
		}
		messages = append(messages, msg)
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return errs.NewTransportError("publish order status changes", err)
	}
	return nil
}

func (p *OrderChangedProducer) Close() error {
	return p.writer.Close()
}

func toMessage(change order.StatusChanged) (kafka.Message, error) {
	payload := OrderStatusChangedMessage{
		EventID:    uuid.NewString(),
		OrderID:    change.OrderID.String(),
		UserID:     change.UserID,
		OldStatus:  change.From.String(),
		NewStatus:  change.To.String(),
		OccurredAt: change.OccurredAt.UTC(),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, errs.NewValueIsInvalidErrorWithCause("orderStatusChanged", err)
	}

	return kafka.Message{
		Key:   []byte(payload.OrderID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "ce-type", Value: []byte(eventType)},
			{Key: "ce-id", Value: []byte(payload.EventID)},
			{Key: "ce-time", Value: []byte(payload.OccurredAt.Format(time.RFC3339))},
			{Key: "content-type", Value: []byte(contentType)},
		},
		Time: payload.OccurredAt,
	}, nil
}
