package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is one vendor's slice of a checkout. A single checkout produces one
// order per vendor in the cart; all of them share the same gateway session id
// so a webhook can locate the whole group. Monetary fields are minor currency
// units.
type Order struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	VendorUserID    uuid.UUID
	Status          OrderStatus
	TotalPrice      int64
	StripeSessionID *string
	PaymentIntent   *string

	// Settlement breakdown, recorded once when the charge settles.
	// TotalPrice == ProcessingFee + PlatformFee + VendorSubtotal afterwards.
	ProcessingFee  *int64
	PlatformFee    *int64
	VendorSubtotal *int64
	SettledAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []OrderItem
}

// Settled reports whether the settlement breakdown has been recorded.
func (o *Order) Settled() bool {
	return o.SettledAt != nil
}

// OrderItem is one purchased line of an order, frozen at checkout time with
// the cart's snapshotted unit price.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID int64
	OptionIDs OptionSet
	Quantity  int32
	Price     int64
	CreatedAt time.Time
}
