// Package service defines interfaces for core, stateless domain logic.
// These services abstract external systems (payment gateway, message queue),
// keeping the domain pure.
package service

import "context"

// CheckoutLineItem is one displayable line of a hosted checkout session.
// UnitAmount is minor currency units.
type CheckoutLineItem struct {
	Name        string
	Description string
	ImageURL    string
	UnitAmount  int64
	Quantity    int32
	Currency    string
}

// CheckoutSessionParams carries everything needed to open a hosted checkout
// session with the gateway.
type CheckoutSessionParams struct {
	LineItems     []CheckoutLineItem
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// CheckoutSession is the gateway's handle on an opened session: the id the
// webhook will reference and the URL the shopper is redirected to.
type CheckoutSession struct {
	ID  string
	URL string
}

// FeeDetail is one component of a balance transaction's fee.
type FeeDetail struct {
	Type   string
	Amount int64
}

// BalanceTransaction is the gateway's record of a settled charge, carrying
// the processor fee taken from the gross amount.
type BalanceTransaction struct {
	ID         string
	Amount     int64
	Fee        int64
	FeeDetails []FeeDetail
}

// ProcessorFee returns the gateway's own fee component. When the fee details
// do not break the fee down, the total fee is the processor fee.
func (t *BalanceTransaction) ProcessorFee() int64 {
	for _, detail := range t.FeeDetails {
		if detail.Type == "stripe_fee" {
			return detail.Amount
		}
	}

	return t.Fee
}

// Transfer is a completed movement of funds to a vendor's connected account.
type Transfer struct {
	ID string
}

// PaymentGateway defines the interface for the hosted-checkout payment
// provider. The application layer depends on this interface, not on the HTTP
// client that implements it.
type PaymentGateway interface {
	// CreateCheckoutSession opens a hosted checkout session covering the
	// given line items.
	CreateCheckoutSession(ctx context.Context, params *CheckoutSessionParams) (*CheckoutSession, error)

	// GetBalanceTransaction retrieves a settled charge's balance transaction.
	GetBalanceTransaction(ctx context.Context, id string) (*BalanceTransaction, error)

	// CreateTransfer moves amount (minor units) to a vendor's connected
	// account.
	CreateTransfer(ctx context.Context, accountID string, amount int64, currency, description string) (*Transfer, error)
}
