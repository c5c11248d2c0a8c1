package service

import (
	"context"
	"time"
)

// Cart event types.
const (
	CartEventMerged  = "cart.merged"
	CartEventCleared = "cart.cleared"
)

// CartEvent is emitted after a guest cart was merged into a server cart or a cart was cleared.
type CartEvent struct {
	Type        string    `json:"type"`
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	DeviceID    string    `json:"device_id"`
	UserID      string    `json:"user_id,omitempty"`
	CartID      string    `json:"cart_id,omitempty"`
	MergedLines int       `json:"merged_lines"`
	FailedLines int       `json:"failed_lines"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// CartEventPublisher defines the interface for publishing cart events to a message queue.
// Publishing is best effort; callers log failures and carry on.
type CartEventPublisher interface {
	// PublishCartEvent publishes a single cart event
	PublishCartEvent(ctx context.Context, event *CartEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
