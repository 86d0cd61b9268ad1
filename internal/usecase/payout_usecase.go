package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PayoutUsecase defines the interface for the monthly-arrears payout batch.
type PayoutUsecase interface {
	// RunBatch processes every eligible vendor for the window ending at the
	// start of the month before now. Each vendor runs in its own transaction;
	// one vendor's failure does not stop the rest.
	RunBatch(ctx context.Context, now time.Time) (*PayoutBatchResult, error)
}

// VendorPayoutResult is the outcome for one vendor in a batch run.
type VendorPayoutResult struct {
	VendorUserID uuid.UUID `json:"vendor_user_id"`
	Amount       int64     `json:"amount"`
	TransferID   string    `json:"transfer_id,omitempty"`
	Skipped      bool      `json:"skipped"`
	Err          error     `json:"-"`
}

// PayoutBatchResult summarizes one batch run.
type PayoutBatchResult struct {
	Until   time.Time            `json:"until"`
	Vendors []VendorPayoutResult `json:"vendors"`
}
