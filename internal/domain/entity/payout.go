package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payout records one transfer of settled vendor earnings. Windows are
// half-open [StartingFrom, Until) and contiguous per vendor: each payout
// starts exactly where the previous one ended.
type Payout struct {
	ID           uuid.UUID
	VendorUserID uuid.UUID
	Amount       int64
	StartingFrom time.Time
	Until        time.Time
	TransferID   string
	CreatedAt    time.Time
}
