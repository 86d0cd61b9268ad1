package usecase

import (
	"context"

	"bazaar/internal/domain/service"
)

// SettlementUsecase defines the interface for reconciling gateway webhook
// events into order state. Both handlers are idempotent: the gateway may
// deliver any event more than once.
type SettlementUsecase interface {
	// HandleCheckoutSessionCompleted marks the session's orders paid,
	// decrements tracked stock, removes the purchased lines from the buyer's
	// cart and publishes order events for the newly paid orders.
	HandleCheckoutSessionCompleted(ctx context.Context, event *service.CheckoutSessionCompleted) error

	// HandleChargeSettled splits the charge's processor fee across the
	// payment's orders in proportion to their totals and records each order's
	// fee breakdown.
	HandleChargeSettled(ctx context.Context, event *service.ChargeSettled) error
}
