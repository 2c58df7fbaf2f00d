package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"

	"menu-composer/internal/compose"
)

// DeliveryAdapter wraps a RabbitMQ delivery behind the local compose.Source
// interface, so the rest of the system never sees the broker's types. The
// message body is a JSON compose request; the correlation id becomes the
// request id, with a generated fallback for publishers that leave it blank.
type DeliveryAdapter struct {
	delivery  amqp091.Delivery
	requestID string
}

var _ compose.Source = (*DeliveryAdapter)(nil)

// NewDeliveryAdapter wraps one delivery.
func NewDeliveryAdapter(d amqp091.Delivery) *DeliveryAdapter {
	requestID := d.CorrelationId
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return &DeliveryAdapter{
		delivery:  d,
		requestID: requestID,
	}
}

// RequestID returns the delivery's correlation id.
func (a *DeliveryAdapter) RequestID() string {
	return a.requestID
}

// Request decodes the delivery body into a compose request.
func (a *DeliveryAdapter) Request() (*compose.Request, error) {
	var req compose.Request
	if err := json.Unmarshal(a.delivery.Body, &req); err != nil {
		return nil, fmt.Errorf("failed to decode compose request: %w", err)
	}
	return &req, nil
}
