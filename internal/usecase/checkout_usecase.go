package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutUsecase defines the interface for turning a cart into draft orders
// and a hosted payment session.
type CheckoutUsecase interface {
	// Checkout creates one draft order per vendor in the identity's cart,
	// opens a single gateway session covering all of them and stamps the
	// session id onto every order, all inside one transaction. Nothing is
	// persisted if any step fails. A non-nil vendorFilter restricts the
	// checkout to that vendor's slice of the cart.
	Checkout(ctx context.Context, identity entity.Identity, vendorFilter *uuid.UUID) (*CheckoutResult, error)
}

// CheckoutResult carries the gateway redirect for the shopper.
type CheckoutResult struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}
