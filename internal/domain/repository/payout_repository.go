package repository

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// PayoutRepository defines the standard operations for payout persistence.
type PayoutRepository interface {
	// Create persists a new payout row.
	Create(ctx context.Context, payout *entity.Payout) error

	// LatestUntil returns the end of the vendor's most recent payout window,
	// or the zero time when the vendor has never been paid out.
	LatestUntil(ctx context.Context, vendorUserID uuid.UUID) (time.Time, error)
}
