package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"go.uber.org/fx"
)

type payoutService struct {
	txManager  repository.TransactionManager
	vendorRepo repository.VendorRepository
	gateway    service.PaymentGateway
	config     *config.Config
	logger     *slog.Logger
}

// PayoutServiceParams holds dependencies for PayoutService, injected by Fx.
type PayoutServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	VendorRepo repository.VendorRepository
	Gateway    service.PaymentGateway
	Config     *config.Config
	Logger     *slog.Logger
}

// NewPayoutService creates a new payout service instance
func NewPayoutService(params PayoutServiceParams) usecase.PayoutUsecase {
	return &payoutService{
		txManager:  params.TxManager,
		vendorRepo: params.VendorRepo,
		gateway:    params.Gateway,
		config:     params.Config,
		logger:     params.Logger,
	}
}

// RunBatch processes every eligible vendor for the window ending at the start
// of the month before now. Earnings are always paid one month in arrears so
// late settlements have time to land inside their window.
func (s *payoutService) RunBatch(ctx context.Context, now time.Time) (*usecase.PayoutBatchResult, error) {
	// Truncate to the month first: subtracting a month from a day-one date
	// never overflows into the wrong month the way "31st minus one month" does.
	until := startOfMonth(now.UTC()).AddDate(0, -1, 0)

	vendors, err := s.vendorRepo.FindEligible(ctx)
	if err != nil {
		return nil, err
	}

	result := &usecase.PayoutBatchResult{Until: until}

	for i := range vendors {
		vendor := &vendors[i]

		vendorResult := s.processVendor(ctx, vendor, until)
		if vendorResult.Err != nil {
			// One vendor's failure must not starve the rest of the batch.
			s.logger.Error("vendor payout failed",
				slog.String("vendorUserID", vendor.UserID.String()),
				slog.String("error", vendorResult.Err.Error()),
			)
		}

		result.Vendors = append(result.Vendors, vendorResult)
	}

	return result, nil
}

// processVendor runs one vendor's payout in its own transaction: the window
// computation, the transfer and the payout row commit or roll back together.
func (s *payoutService) processVendor(ctx context.Context, vendor *entity.Vendor, until time.Time) usecase.VendorPayoutResult {
	result := usecase.VendorPayoutResult{VendorUserID: vendor.UserID}

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		payoutRepo := f.NewPayoutRepository()

		startingFrom, err := payoutRepo.LatestUntil(ctx, vendor.UserID)
		if err != nil {
			return err
		}
		if startingFrom.IsZero() {
			startingFrom = s.config.Payout.Epoch
		}

		if !startingFrom.Before(until) {
			// This window was already paid, or the window is empty.
			result.Skipped = true

			return nil
		}

		amount, err := f.NewOrderRepository().SumVendorSubtotal(ctx, vendor.UserID, startingFrom, until)
		if err != nil {
			return err
		}
		if amount == 0 {
			// Nothing earned: no transfer, no payout row. The window stays
			// open and the next run covers it from the same starting point.
			result.Skipped = true

			return nil
		}

		transfer, err := s.gateway.CreateTransfer(ctx, *vendor.StripeAccountID, amount, s.config.Checkout.Currency,
			fmt.Sprintf("payout %s to %s", startingFrom.Format(time.DateOnly), until.Format(time.DateOnly)),
		)
		if err != nil {
			return err
		}

		payout := &entity.Payout{
			VendorUserID: vendor.UserID,
			Amount:       amount,
			StartingFrom: startingFrom,
			Until:        until,
			TransferID:   transfer.ID,
		}
		if err := payoutRepo.Create(ctx, payout); err != nil {
			return err
		}

		result.Amount = amount
		result.TransferID = transfer.ID

		return nil
	})
	if err != nil {
		result.Err = err
	}

	return result
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
