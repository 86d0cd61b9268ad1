package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor is a seller account. A vendor is keyed by the owning user id; the
// gateway account fields gate payout eligibility.
type Vendor struct {
	UserID              uuid.UUID
	StoreName           string
	Status              VendorStatus
	StripeAccountID     *string
	StripeAccountActive bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// PayoutEligible reports whether the vendor can receive transfers: approved,
// with an active gateway account on file.
func (v *Vendor) PayoutEligible() bool {
	return v.Status == VendorStatusApproved && v.StripeAccountID != nil && v.StripeAccountActive
}
