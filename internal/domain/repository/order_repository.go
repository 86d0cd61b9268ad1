package repository

import (
	"context"
	"errors"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order entity.
	Create(ctx context.Context, order *entity.Order) error

	// CreateItems persists the items of an order in one batch.
	CreateItems(ctx context.Context, items []entity.OrderItem) error

	// SetSessionID stamps the shared gateway session id onto the given orders.
	SetSessionID(ctx context.Context, orderIDs []uuid.UUID, sessionID string) error

	// FindBySessionID retrieves every order created under one checkout session.
	FindBySessionID(ctx context.Context, sessionID string) ([]entity.Order, error)

	// FindByPaymentIntent retrieves every order attached to a payment intent.
	FindByPaymentIntent(ctx context.Context, paymentIntent string) ([]entity.Order, error)

	// FindItems retrieves the items of an order.
	FindItems(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error)

	// MarkPaid transitions a draft order to paid and stamps the payment intent.
	// It reports whether the transition happened; false means the order was
	// already paid and the caller must not repeat side effects.
	MarkPaid(ctx context.Context, orderID uuid.UUID, paymentIntent string) (bool, error)

	// RecordSettlement writes the fee breakdown of an unsettled order. It
	// reports whether the write happened; false means the order was already
	// settled and the breakdown was left untouched.
	RecordSettlement(ctx context.Context, orderID uuid.UUID, processingFee, platformFee, vendorSubtotal int64, settledAt time.Time) (bool, error)

	// SumVendorSubtotal sums the settled vendor subtotals of a vendor's paid
	// orders created in [from, until).
	SumVendorSubtotal(ctx context.Context, vendorUserID uuid.UUID, from, until time.Time) (int64, error)
}
