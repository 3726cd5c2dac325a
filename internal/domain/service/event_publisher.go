package service

import (
	"context"
)

// OrderEventKind names what happened to an order.
type OrderEventKind string

const (
	// OrderEventPaid fires once, when the paid transition is applied.
	OrderEventPaid OrderEventKind = "order.paid"
	// OrderEventStatusChanged fires when an admin changes the fulfillment status.
	OrderEventStatusChanged OrderEventKind = "order.status_changed"
)

// OrderEvent is published after an order transition that the customer should hear about.
type OrderEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	EventID    string         `json:"event_id"`
	Kind       OrderEventKind `json:"kind"`
	OrderID    string         `json:"order_id"`
	FriendlyID string         `json:"friendly_id"`
	PaymentID  string         `json:"payment_id,omitempty"`
	Status     string         `json:"status,omitempty"`
}

// EventPublisher defines the interface for publishing order events
type EventPublisher interface {
	// PublishOrderEvent hands an event to the configured dispatcher
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// OrderEventHandler consumes order events, either inline or from a queue push.
type OrderEventHandler interface {
	HandleOrderEvent(ctx context.Context, event *OrderEvent) error
}
