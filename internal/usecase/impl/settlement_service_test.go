package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	mockrepo "bazaar/internal/mocks/repository"
	mockservice "bazaar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settlementServiceMocks struct {
	orderRepo   *mockrepo.MockOrderRepository
	productRepo *mockrepo.MockProductRepository
	cartRepo    *mockrepo.MockCartRepository
	webhookRepo *mockrepo.MockWebhookEventRepository
	gateway     *mockservice.MockPaymentGateway
	publisher   *mockservice.MockEventPublisher
	txManager   *fakeTransactionManager
}

func newSettlementService(t *testing.T) (*settlementService, *settlementServiceMocks) {
	t.Helper()

	mocks := &settlementServiceMocks{
		orderRepo:   mockrepo.NewMockOrderRepository(t),
		productRepo: mockrepo.NewMockProductRepository(t),
		cartRepo:    mockrepo.NewMockCartRepository(t),
		webhookRepo: mockrepo.NewMockWebhookEventRepository(t),
		gateway:     mockservice.NewMockPaymentGateway(t),
		publisher:   mockservice.NewMockEventPublisher(t),
	}
	mocks.txManager = &fakeTransactionManager{factory: &fakeRepositoryFactory{
		orderRepo:   mocks.orderRepo,
		productRepo: mocks.productRepo,
		cartRepo:    mocks.cartRepo,
		webhookRepo: mocks.webhookRepo,
	}}

	service := NewSettlementService(SettlementServiceParams{
		TxManager: mocks.txManager,
		Gateway:   mocks.gateway,
		Publisher: mocks.publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*settlementService)

	return service, mocks
}

func TestHandleCheckoutSessionCompleted(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	event := &service.CheckoutSessionCompleted{
		EventID:       "evt_1",
		SessionID:     "cs_test_123",
		PaymentIntent: "pi_456",
	}

	t.Run("marks orders paid, decrements stock and clears purchased lines", func(t *testing.T) {
		svc, mocks := newSettlementService(t)

		product := testProduct()
		product.Quantity = int32Ptr(50)
		product.Variations[0].Quantity = int32Ptr(10)

		order := entity.Order{
			ID:           uuid.New(),
			UserID:       buyerID,
			VendorUserID: testVendorID,
			Status:       entity.OrderStatusDraft,
			TotalPrice:   17500,
		}

		mocks.webhookRepo.EXPECT().Exists(mock.Anything, "evt_1").Return(false, nil)
		mocks.orderRepo.EXPECT().FindBySessionID(mock.Anything, "cs_test_123").Return([]entity.Order{order}, nil)
		mocks.orderRepo.EXPECT().MarkPaid(mock.Anything, order.ID, "pi_456").Return(true, nil)
		mocks.orderRepo.EXPECT().FindItems(mock.Anything, order.ID).Return([]entity.OrderItem{
			{OrderID: order.ID, ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Quantity: 2, Price: 6000},
			{OrderID: order.ID, ProductID: 42, OptionIDs: entity.OptionSet{4, 8}, Quantity: 1, Price: 5500},
		}, nil)
		mocks.productRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(product, nil)

		// The {3,7} selection hits the stock-tracked variation; the {4,8}
		// selection has no variation and falls back to product stock.
		mocks.productRepo.EXPECT().DecrementVariationStock(mock.Anything, int64(11), int32(2)).Return(nil)
		mocks.productRepo.EXPECT().DecrementStock(mock.Anything, int64(42), int32(1)).Return(nil)

		mocks.cartRepo.EXPECT().
			DeletePurchased(mock.Anything, buyerID, []string{"42_[3,7]", "42_[4,8]"}).
			Return(nil)
		mocks.webhookRepo.EXPECT().MarkProcessed(mock.Anything, "evt_1").Return(nil)

		var published []*service.OrderEvent
		mocks.publisher.EXPECT().
			PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
			Run(func(_ context.Context, orderEvent *service.OrderEvent) {
				published = append(published, orderEvent)
			}).
			Return(nil)

		err := svc.HandleCheckoutSessionCompleted(ctx, event)

		require.NoError(t, err)
		require.Len(t, published, 2)

		assert.Equal(t, service.OrderEventPaid, published[0].EventType)
		assert.Equal(t, order.ID.String(), published[0].OrderID)
		assert.Equal(t, buyerID.String(), published[0].BuyerUserID)
		assert.Equal(t, testVendorID.String(), published[0].VendorUserID)
		assert.Equal(t, int64(17500), published[0].TotalPrice)
		assert.Equal(t, "usd", published[0].Currency)

		// The buyer's aggregate receipt follows the per-vendor events.
		assert.Equal(t, service.OrderEventCheckoutCompleted, published[1].EventType)
		assert.Equal(t, "cs_test_123", published[1].SessionID)
		assert.Equal(t, buyerID.String(), published[1].BuyerUserID)
		assert.Equal(t, int64(17500), published[1].TotalPrice)
	})

	t.Run("a redelivered event short-circuits on the ledger", func(t *testing.T) {
		svc, mocks := newSettlementService(t)

		mocks.webhookRepo.EXPECT().Exists(mock.Anything, "evt_1").Return(true, nil)

		err := svc.HandleCheckoutSessionCompleted(ctx, event)

		require.NoError(t, err)
	})

	t.Run("an already paid order produces no side effects", func(t *testing.T) {
		svc, mocks := newSettlementService(t)

		order := entity.Order{
			ID:         uuid.New(),
			UserID:     buyerID,
			Status:     entity.OrderStatusPaid,
			TotalPrice: 17500,
		}

		mocks.webhookRepo.EXPECT().Exists(mock.Anything, "evt_1").Return(false, nil)
		mocks.orderRepo.EXPECT().FindBySessionID(mock.Anything, "cs_test_123").Return([]entity.Order{order}, nil)
		mocks.orderRepo.EXPECT().MarkPaid(mock.Anything, order.ID, "pi_456").Return(false, nil)
		mocks.webhookRepo.EXPECT().MarkProcessed(mock.Anything, "evt_1").Return(nil)

		err := svc.HandleCheckoutSessionCompleted(ctx, event)

		require.NoError(t, err)
	})

	t.Run("fails when the session has no orders", func(t *testing.T) {
		svc, mocks := newSettlementService(t)

		mocks.webhookRepo.EXPECT().Exists(mock.Anything, "evt_1").Return(false, nil)
		mocks.orderRepo.EXPECT().FindBySessionID(mock.Anything, "cs_test_123").Return(nil, nil)

		err := svc.HandleCheckoutSessionCompleted(ctx, event)

		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})

	t.Run("a publish failure does not fail the handler", func(t *testing.T) {
		svc, mocks := newSettlementService(t)

		product := testProduct()

		order := entity.Order{
			ID:           uuid.New(),
			UserID:       buyerID,
			VendorUserID: testVendorID,
			Status:       entity.OrderStatusDraft,
			TotalPrice:   6000,
		}

		mocks.webhookRepo.EXPECT().Exists(mock.Anything, "evt_1").Return(false, nil)
		mocks.orderRepo.EXPECT().FindBySessionID(mock.Anything, "cs_test_123").Return([]entity.Order{order}, nil)
		mocks.orderRepo.EXPECT().MarkPaid(mock.Anything, order.ID, "pi_456").Return(true, nil)
		mocks.orderRepo.EXPECT().FindItems(mock.Anything, order.ID).Return([]entity.OrderItem{
			{OrderID: order.ID, ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Quantity: 1, Price: 6000},
		}, nil)
		// Neither the variation nor the product tracks stock: no decrement.
		mocks.productRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(product, nil)
		mocks.cartRepo.EXPECT().
			DeletePurchased(mock.Anything, buyerID, []string{"42_[3,7]"}).
			Return(nil)
		mocks.webhookRepo.EXPECT().MarkProcessed(mock.Anything, "evt_1").Return(nil)
		mocks.publisher.EXPECT().
			PublishOrderEvent(mock.Anything, mock.AnythingOfType("*service.OrderEvent")).
			Return(assert.AnError)

		err := svc.HandleCheckoutSessionCompleted(ctx, event)

		require.NoError(t, err)
	})
}

func TestHandleChargeSettled(t *testing.T) {
	ctx := context.Background()

	event := &service.ChargeSettled{
		EventID:              "evt_2",
		PaymentIntent:        "pi_456",
		BalanceTransactionID: "txn_789",
	}

	t.Run("splits the processor fee in proportion to order totals", func(t *testing.T) {
		svc, mocks := newSettlementService(t)

		settledAt := time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return settledAt }

		order1 := entity.Order{ID: uuid.New(), Status: entity.OrderStatusPaid, TotalPrice: 10000}
		order2 := entity.Order{ID: uuid.New(), Status: entity.OrderStatusPaid, TotalPrice: 20000}

		mocks.gateway.EXPECT().GetBalanceTransaction(mock.Anything, "txn_789").Return(&service.BalanceTransaction{
			ID:         "txn_789",
			Amount:     30000,
			Fee:        900,
			FeeDetails: []service.FeeDetail{{Type: "stripe_fee", Amount: 900}},
		}, nil)
		mocks.webhookRepo.EXPECT().Exists(mock.Anything, "evt_2").Return(false, nil)
		mocks.orderRepo.EXPECT().FindByPaymentIntent(mock.Anything, "pi_456").
			Return([]entity.Order{order1, order2}, nil)

		// A $100 order on a $300 payment carries a third of the $9 fee; the 10%
		// platform commission applies to what remains after the processor fee.
		mocks.orderRepo.EXPECT().
			RecordSettlement(mock.Anything, order1.ID, int64(300), int64(970), int64(8730), settledAt).
			Return(true, nil)
		mocks.orderRepo.EXPECT().
			RecordSettlement(mock.Anything, order2.ID, int64(600), int64(1940), int64(16860), settledAt).
			Return(true, nil)
		mocks.webhookRepo.EXPECT().MarkProcessed(mock.Anything, "evt_2").Return(nil)

		err := svc.HandleChargeSettled(ctx, event)

		require.NoError(t, err)
	})

	t.Run("fails when the payment intent has no orders yet", func(t *testing.T) {
		svc, mocks := newSettlementService(t)

		mocks.gateway.EXPECT().GetBalanceTransaction(mock.Anything, "txn_789").Return(&service.BalanceTransaction{
			ID:  "txn_789",
			Fee: 900,
		}, nil)
		mocks.webhookRepo.EXPECT().Exists(mock.Anything, "evt_2").Return(false, nil)
		mocks.orderRepo.EXPECT().FindByPaymentIntent(mock.Anything, "pi_456").Return(nil, nil)

		err := svc.HandleChargeSettled(ctx, event)

		assert.ErrorIs(t, err, domainerrors.ErrSettlementNotReady)
	})

	t.Run("a redelivered event short-circuits on the ledger", func(t *testing.T) {
		svc, mocks := newSettlementService(t)

		mocks.gateway.EXPECT().GetBalanceTransaction(mock.Anything, "txn_789").Return(&service.BalanceTransaction{
			ID:  "txn_789",
			Fee: 900,
		}, nil)
		mocks.webhookRepo.EXPECT().Exists(mock.Anything, "evt_2").Return(true, nil)

		err := svc.HandleChargeSettled(ctx, event)

		require.NoError(t, err)
	})
}

func TestSplitFees(t *testing.T) {
	tests := []struct {
		name           string
		orderTotal     int64
		aggregate      int64
		processorFee   int64
		platformFeePct float64
		processingFee  int64
		platformFee    int64
		vendorSubtotal int64
	}{
		{
			name:           "single order carries the whole fee",
			orderTotal:     30000,
			aggregate:      30000,
			processorFee:   900,
			platformFeePct: 10,
			processingFee:  900,
			platformFee:    2910,
			vendorSubtotal: 26190,
		},
		{
			name:           "one third share of the fee",
			orderTotal:     10000,
			aggregate:      30000,
			processorFee:   900,
			platformFeePct: 10,
			processingFee:  300,
			platformFee:    970,
			vendorSubtotal: 8730,
		},
		{
			name:           "fractional share rounds to the nearest cent",
			orderTotal:     1000,
			aggregate:      3000,
			processorFee:   100,
			platformFeePct: 10,
			processingFee:  33,
			platformFee:    97,
			vendorSubtotal: 870,
		},
		{
			name:           "zero commission leaves everything after the fee",
			orderTotal:     10000,
			aggregate:      10000,
			processorFee:   320,
			platformFeePct: 0,
			processingFee:  320,
			platformFee:    0,
			vendorSubtotal: 9680,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processingFee, platformFee, vendorSubtotal := splitFees(tt.orderTotal, tt.aggregate, tt.processorFee, tt.platformFeePct)

			assert.Equal(t, tt.processingFee, processingFee)
			assert.Equal(t, tt.platformFee, platformFee)
			assert.Equal(t, tt.vendorSubtotal, vendorSubtotal)

			// The three parts always reassemble the order total.
			assert.Equal(t, tt.orderTotal, processingFee+platformFee+vendorSubtotal)
		})
	}
}
