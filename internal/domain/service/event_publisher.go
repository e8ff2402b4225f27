package service

import (
	"context"
	"time"
)

// CartEventType names a cart mutation.
type CartEventType string

const (
	CartEventItemAdded   CartEventType = "cart.item_added"
	CartEventItemUpdated CartEventType = "cart.item_updated"
	CartEventItemRemoved CartEventType = "cart.item_removed"
	CartEventCleared     CartEventType = "cart.cleared"
	CartEventMerged      CartEventType = "cart.merged"
)

// CartEvent is emitted after a cart mutation has been committed.
type CartEvent struct {
	RequestID   string        `json:"request_id,omitempty"` // For distributed tracing
	EventID     string        `json:"event_id"`
	Type        CartEventType `json:"type"`
	UserID      string        `json:"user_id"`
	ItemID      string        `json:"item_id,omitempty"`
	Quantity    int           `json:"quantity,omitempty"`
	CartCount   int           `json:"cart_count"`
	TotalAmount string        `json:"total_amount"`
	OccurredAt  time.Time     `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCartEvent publishes a cart event for downstream consumers
	PublishCartEvent(ctx context.Context, event *CartEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
