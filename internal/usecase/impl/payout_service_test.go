package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	mockrepo "bazaar/internal/mocks/repository"
	mockservice "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type payoutServiceMocks struct {
	vendorRepo *mockrepo.MockVendorRepository
	payoutRepo *mockrepo.MockPayoutRepository
	orderRepo  *mockrepo.MockOrderRepository
	gateway    *mockservice.MockPaymentGateway
	txManager  *fakeTransactionManager
}

func newPayoutService(t *testing.T) (usecase.PayoutUsecase, *payoutServiceMocks) {
	t.Helper()

	mocks := &payoutServiceMocks{
		vendorRepo: mockrepo.NewMockVendorRepository(t),
		payoutRepo: mockrepo.NewMockPayoutRepository(t),
		orderRepo:  mockrepo.NewMockOrderRepository(t),
		gateway:    mockservice.NewMockPaymentGateway(t),
	}
	mocks.txManager = &fakeTransactionManager{factory: &fakeRepositoryFactory{
		payoutRepo: mocks.payoutRepo,
		orderRepo:  mocks.orderRepo,
	}}

	svc := NewPayoutService(PayoutServiceParams{
		TxManager:  mocks.txManager,
		VendorRepo: mocks.vendorRepo,
		Gateway:    mocks.gateway,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return svc, mocks
}

func eligibleVendor(id string) entity.Vendor {
	vendorID := uuid.MustParse(id)

	return entity.Vendor{
		UserID:              vendorID,
		StoreName:           "Oak & Iron",
		Status:              entity.VendorStatusApproved,
		StripeAccountID:     strPtr("acct_" + id[:8]),
		StripeAccountActive: true,
	}
}

func TestPayoutRunBatch(t *testing.T) {
	ctx := context.Background()

	// Runs mid August pay the window that closed at the start of July.
	now := time.Date(2026, time.August, 15, 9, 30, 0, 0, time.UTC)
	until := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	epoch := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

	t.Run("first payout starts from the configured epoch", func(t *testing.T) {
		svc, mocks := newPayoutService(t)
		vendor := eligibleVendor("11111111-1111-1111-1111-111111111111")

		mocks.vendorRepo.EXPECT().FindEligible(mock.Anything).Return([]entity.Vendor{vendor}, nil)
		mocks.payoutRepo.EXPECT().LatestUntil(mock.Anything, vendor.UserID).Return(time.Time{}, nil)
		mocks.orderRepo.EXPECT().
			SumVendorSubtotal(mock.Anything, vendor.UserID, epoch, until).
			Return(int64(48250), nil)
		mocks.gateway.EXPECT().
			CreateTransfer(mock.Anything, *vendor.StripeAccountID, int64(48250), "usd", "payout 2000-01-01 to 2026-07-01").
			Return(&service.Transfer{ID: "tr_1"}, nil)

		var created *entity.Payout
		mocks.payoutRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Payout")).
			Run(func(_ context.Context, payout *entity.Payout) {
				created = payout
			}).
			Return(nil)

		result, err := svc.RunBatch(ctx, now)

		require.NoError(t, err)
		assert.Equal(t, until, result.Until)
		require.Len(t, result.Vendors, 1)
		assert.Equal(t, int64(48250), result.Vendors[0].Amount)
		assert.Equal(t, "tr_1", result.Vendors[0].TransferID)
		assert.False(t, result.Vendors[0].Skipped)

		require.NotNil(t, created)
		assert.Equal(t, vendor.UserID, created.VendorUserID)
		assert.Equal(t, epoch, created.StartingFrom)
		assert.Equal(t, until, created.Until)
		assert.Equal(t, "tr_1", created.TransferID)
	})

	t.Run("subsequent payouts resume from the last window's end", func(t *testing.T) {
		svc, mocks := newPayoutService(t)
		vendor := eligibleVendor("11111111-1111-1111-1111-111111111111")
		lastUntil := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

		mocks.vendorRepo.EXPECT().FindEligible(mock.Anything).Return([]entity.Vendor{vendor}, nil)
		mocks.payoutRepo.EXPECT().LatestUntil(mock.Anything, vendor.UserID).Return(lastUntil, nil)
		mocks.orderRepo.EXPECT().
			SumVendorSubtotal(mock.Anything, vendor.UserID, lastUntil, until).
			Return(int64(12000), nil)
		mocks.gateway.EXPECT().
			CreateTransfer(mock.Anything, *vendor.StripeAccountID, int64(12000), "usd", "payout 2026-06-01 to 2026-07-01").
			Return(&service.Transfer{ID: "tr_2"}, nil)
		mocks.payoutRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Payout")).
			Return(nil)

		result, err := svc.RunBatch(ctx, now)

		require.NoError(t, err)
		assert.Equal(t, int64(12000), result.Vendors[0].Amount)
	})

	t.Run("an already covered window is skipped", func(t *testing.T) {
		svc, mocks := newPayoutService(t)
		vendor := eligibleVendor("11111111-1111-1111-1111-111111111111")

		mocks.vendorRepo.EXPECT().FindEligible(mock.Anything).Return([]entity.Vendor{vendor}, nil)
		mocks.payoutRepo.EXPECT().LatestUntil(mock.Anything, vendor.UserID).Return(until, nil)

		result, err := svc.RunBatch(ctx, now)

		require.NoError(t, err)
		require.Len(t, result.Vendors, 1)
		assert.True(t, result.Vendors[0].Skipped)
		assert.Zero(t, result.Vendors[0].Amount)
	})

	t.Run("zero earnings produce no transfer and no payout row", func(t *testing.T) {
		svc, mocks := newPayoutService(t)
		vendor := eligibleVendor("11111111-1111-1111-1111-111111111111")

		mocks.vendorRepo.EXPECT().FindEligible(mock.Anything).Return([]entity.Vendor{vendor}, nil)
		mocks.payoutRepo.EXPECT().LatestUntil(mock.Anything, vendor.UserID).Return(time.Time{}, nil)
		mocks.orderRepo.EXPECT().
			SumVendorSubtotal(mock.Anything, vendor.UserID, epoch, until).
			Return(int64(0), nil)

		result, err := svc.RunBatch(ctx, now)

		require.NoError(t, err)
		require.Len(t, result.Vendors, 1)
		assert.True(t, result.Vendors[0].Skipped)
	})

	t.Run("one vendor's failure does not stop the batch", func(t *testing.T) {
		svc, mocks := newPayoutService(t)
		failing := eligibleVendor("11111111-1111-1111-1111-111111111111")
		healthy := eligibleVendor("33333333-3333-3333-3333-333333333333")

		mocks.vendorRepo.EXPECT().FindEligible(mock.Anything).
			Return([]entity.Vendor{failing, healthy}, nil)

		mocks.payoutRepo.EXPECT().LatestUntil(mock.Anything, failing.UserID).Return(time.Time{}, nil)
		mocks.orderRepo.EXPECT().
			SumVendorSubtotal(mock.Anything, failing.UserID, epoch, until).
			Return(int64(5000), nil)
		mocks.gateway.EXPECT().
			CreateTransfer(mock.Anything, *failing.StripeAccountID, int64(5000), "usd", mock.AnythingOfType("string")).
			Return(nil, assert.AnError)

		mocks.payoutRepo.EXPECT().LatestUntil(mock.Anything, healthy.UserID).Return(time.Time{}, nil)
		mocks.orderRepo.EXPECT().
			SumVendorSubtotal(mock.Anything, healthy.UserID, epoch, until).
			Return(int64(7000), nil)
		mocks.gateway.EXPECT().
			CreateTransfer(mock.Anything, *healthy.StripeAccountID, int64(7000), "usd", mock.AnythingOfType("string")).
			Return(&service.Transfer{ID: "tr_3"}, nil)
		mocks.payoutRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Payout")).
			Return(nil)

		result, err := svc.RunBatch(ctx, now)

		require.NoError(t, err)
		require.Len(t, result.Vendors, 2)
		assert.Error(t, result.Vendors[0].Err)
		assert.NoError(t, result.Vendors[1].Err)
		assert.Equal(t, "tr_3", result.Vendors[1].TransferID)
	})

	t.Run("a month-end run still pays the previous month's window", func(t *testing.T) {
		svc, mocks := newPayoutService(t)

		// March 31 minus one month would overflow into March again if the
		// subtraction happened before the truncation.
		monthEndNow := time.Date(2026, time.March, 31, 23, 0, 0, 0, time.UTC)
		monthEndUntil := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

		mocks.vendorRepo.EXPECT().FindEligible(mock.Anything).Return(nil, nil)

		result, err := svc.RunBatch(ctx, monthEndNow)

		require.NoError(t, err)
		assert.Equal(t, monthEndUntil, result.Until)
	})

	t.Run("december runs pay the window ending November first", func(t *testing.T) {
		svc, mocks := newPayoutService(t)
		decemberNow := time.Date(2026, time.December, 3, 0, 0, 0, 0, time.UTC)
		decemberUntil := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)

		mocks.vendorRepo.EXPECT().FindEligible(mock.Anything).Return(nil, nil)

		result, err := svc.RunBatch(ctx, decemberNow)

		require.NoError(t, err)
		assert.Equal(t, decemberUntil, result.Until)
		assert.Empty(t, result.Vendors)
	})
}
