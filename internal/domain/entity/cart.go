package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is one entry of a shopper's cart: a product, a normalized option
// selection, a quantity and the unit price snapshotted when the line was
// added. The snapshot is a quote, not a live reference: later catalog price
// changes do not touch existing lines.
//
// At most one line exists per (owner, product, normalized option set).
type CartLine struct {
	ID            uuid.UUID
	UserID        uuid.UUID // zero for lines held in the ephemeral backend
	ProductID     int64
	OptionIDs     OptionSet
	Quantity      int32
	Price         int64
	SavedForLater bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Key returns the normalized (product, option set) key of the line.
func (l *CartLine) Key() string {
	return LineKey(l.ProductID, l.OptionIDs)
}
