package service

import (
	"context"
)

// OrderEvent represents an order lifecycle event fanned out to interested
// parties (buyer receipts, vendor dashboards) after a payment transition.
type OrderEvent struct {
	RequestID    string `json:"request_id,omitempty"` // For distributed tracing
	EventType    string `json:"event_type"`
	OrderID      string `json:"order_id,omitempty"`
	SessionID    string `json:"session_id,omitempty"`
	BuyerUserID  string `json:"buyer_user_id,omitempty"`
	VendorUserID string `json:"vendor_user_id,omitempty"`
	TotalPrice   int64  `json:"total_price"`
	Currency     string `json:"currency"`
}

// Order event types. OrderEventPaid goes out once per vendor order;
// OrderEventCheckoutCompleted goes out once per payment, to the buyer.
const (
	OrderEventPaid              = "order.paid"
	OrderEventCheckoutCompleted = "checkout.completed"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for async processing
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
