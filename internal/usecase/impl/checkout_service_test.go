package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	mockrepo "bazaar/internal/mocks/repository"
	mockservice "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutServiceMocks struct {
	cartRepo    *mockrepo.MockCartRepository
	productRepo *mockrepo.MockProductRepository
	orderRepo   *mockrepo.MockOrderRepository
	gateway     *mockservice.MockPaymentGateway
	txManager   *fakeTransactionManager
}

func newCheckoutService(t *testing.T) (usecase.CheckoutUsecase, *checkoutServiceMocks) {
	t.Helper()

	mocks := &checkoutServiceMocks{
		cartRepo:    mockrepo.NewMockCartRepository(t),
		productRepo: mockrepo.NewMockProductRepository(t),
		orderRepo:   mockrepo.NewMockOrderRepository(t),
		gateway:     mockservice.NewMockPaymentGateway(t),
	}
	mocks.txManager = &fakeTransactionManager{factory: &fakeRepositoryFactory{
		orderRepo: mocks.orderRepo,
	}}

	cart := NewCartService(CartServiceParams{
		CartRepo:    mocks.cartRepo,
		CookieStore: mockrepo.NewMockCartRepository(t),
		ProductRepo: mocks.productRepo,
		Logger:      newDiscardLogger(),
	})

	svc := NewCheckoutService(CheckoutServiceParams{
		Cart:      cart,
		TxManager: mocks.txManager,
		Gateway:   mocks.gateway,
		Config:    newTestConfig(),
	})

	return svc, mocks
}

func TestCheckoutRequiresAuthentication(t *testing.T) {
	svc, _ := newCheckoutService(t)

	_, err := svc.Checkout(context.Background(), entity.AnonymousIdentity(), nil)

	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	identity := entity.UserIdentity(uuid.MustParse("22222222-2222-2222-2222-222222222222"), "shopper@example.com")

	mocks.cartRepo.EXPECT().Lines(mock.Anything, identity).Return(nil, nil)

	_, err := svc.Checkout(context.Background(), identity, nil)

	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	assert.Zero(t, mocks.txManager.calls)
}

func TestCheckoutCreatesOneOrderPerVendor(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	identity := entity.UserIdentity(uuid.MustParse("22222222-2222-2222-2222-222222222222"), "shopper@example.com")

	otherVendorID := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	otherProduct := entity.Product{
		ID:           77,
		Title:        "Ceramic Mug",
		Slug:         "ceramic-mug",
		Price:        1800,
		Status:       entity.ProductStatusPublished,
		VendorUserID: otherVendorID,
		Vendor: &entity.Vendor{
			UserID:    otherVendorID,
			StoreName: "Kiln House",
			Status:    entity.VendorStatusApproved,
		},
	}

	mocks.cartRepo.EXPECT().Lines(mock.Anything, identity).Return([]entity.CartLine{
		{UserID: identity.UserID, ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Quantity: 2, Price: 6000},
		{UserID: identity.UserID, ProductID: 77, OptionIDs: entity.OptionSet{}, Quantity: 1, Price: 1800},
	}, nil)
	mocks.productRepo.EXPECT().FindVisibleByIDs(mock.Anything, []int64{42, 77}).
		Return([]entity.Product{*testProduct(), otherProduct}, nil)

	var createdOrders []*entity.Order
	mocks.orderRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
			createdOrders = append(createdOrders, order)
		}).
		Return(nil).
		Times(2)

	var createdItems [][]entity.OrderItem
	mocks.orderRepo.EXPECT().
		CreateItems(mock.Anything, mock.AnythingOfType("[]entity.OrderItem")).
		Run(func(_ context.Context, items []entity.OrderItem) {
			createdItems = append(createdItems, items)
		}).
		Return(nil).
		Times(2)

	var sessionLineItems []service.CheckoutLineItem
	mocks.gateway.EXPECT().
		CreateCheckoutSession(mock.Anything, mock.AnythingOfType("*service.CheckoutSessionParams")).
		Run(func(_ context.Context, params *service.CheckoutSessionParams) {
			sessionLineItems = params.LineItems
			assert.Equal(t, "shopper@example.com", params.CustomerEmail)
			assert.Equal(t, "https://shop.example.com/checkout/success", params.SuccessURL)
		}).
		Return(&service.CheckoutSession{ID: "cs_test_123", URL: "https://pay.example.com/cs_test_123"}, nil)

	var stampedIDs []uuid.UUID
	mocks.orderRepo.EXPECT().
		SetSessionID(mock.Anything, mock.AnythingOfType("[]uuid.UUID"), "cs_test_123").
		Run(func(_ context.Context, orderIDs []uuid.UUID, _ string) {
			stampedIDs = orderIDs
		}).
		Return(nil)

	result, err := svc.Checkout(context.Background(), identity, nil)

	require.NoError(t, err)
	assert.Equal(t, "cs_test_123", result.SessionID)
	assert.Equal(t, "https://pay.example.com/cs_test_123", result.RedirectURL)

	require.Len(t, createdOrders, 2)
	assert.Equal(t, testVendorID, createdOrders[0].VendorUserID)
	assert.Equal(t, int64(12000), createdOrders[0].TotalPrice)
	assert.Equal(t, entity.OrderStatusDraft, createdOrders[0].Status)
	assert.Equal(t, otherVendorID, createdOrders[1].VendorUserID)
	assert.Equal(t, int64(1800), createdOrders[1].TotalPrice)

	require.Len(t, createdItems, 2)
	assert.Equal(t, createdOrders[0].ID, createdItems[0][0].OrderID)

	// One session covers both vendors' line items.
	assert.Len(t, sessionLineItems, 2)

	require.Len(t, stampedIDs, 2)
	assert.Equal(t, createdOrders[0].ID, stampedIDs[0])
	assert.Equal(t, createdOrders[1].ID, stampedIDs[1])
}

func TestCheckoutVendorFilter(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	identity := entity.UserIdentity(uuid.MustParse("22222222-2222-2222-2222-222222222222"), "shopper@example.com")

	otherVendorID := uuid.MustParse("33333333-3333-3333-3333-333333333333")
	otherProduct := entity.Product{
		ID:           77,
		Title:        "Ceramic Mug",
		Slug:         "ceramic-mug",
		Price:        1800,
		Status:       entity.ProductStatusPublished,
		VendorUserID: otherVendorID,
		Vendor: &entity.Vendor{
			UserID:    otherVendorID,
			StoreName: "Kiln House",
			Status:    entity.VendorStatusApproved,
		},
	}

	mocks.cartRepo.EXPECT().Lines(mock.Anything, identity).Return([]entity.CartLine{
		{UserID: identity.UserID, ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Quantity: 2, Price: 6000},
		{UserID: identity.UserID, ProductID: 77, OptionIDs: entity.OptionSet{}, Quantity: 1, Price: 1800},
	}, nil)
	mocks.productRepo.EXPECT().FindVisibleByIDs(mock.Anything, []int64{42, 77}).
		Return([]entity.Product{*testProduct(), otherProduct}, nil)

	var createdOrders []*entity.Order
	mocks.orderRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
			createdOrders = append(createdOrders, order)
		}).
		Return(nil)
	mocks.orderRepo.EXPECT().
		CreateItems(mock.Anything, mock.AnythingOfType("[]entity.OrderItem")).
		Return(nil)
	mocks.gateway.EXPECT().
		CreateCheckoutSession(mock.Anything, mock.AnythingOfType("*service.CheckoutSessionParams")).
		Return(&service.CheckoutSession{ID: "cs_test_456", URL: "https://pay.example.com/cs_test_456"}, nil)
	mocks.orderRepo.EXPECT().
		SetSessionID(mock.Anything, mock.AnythingOfType("[]uuid.UUID"), "cs_test_456").
		Return(nil)

	result, err := svc.Checkout(context.Background(), identity, &otherVendorID)

	require.NoError(t, err)
	assert.Equal(t, "cs_test_456", result.SessionID)
	require.Len(t, createdOrders, 1)
	assert.Equal(t, otherVendorID, createdOrders[0].VendorUserID)
	assert.Equal(t, int64(1800), createdOrders[0].TotalPrice)
}

func TestCheckoutVendorFilterWithoutMatch(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	identity := entity.UserIdentity(uuid.MustParse("22222222-2222-2222-2222-222222222222"), "shopper@example.com")

	mocks.cartRepo.EXPECT().Lines(mock.Anything, identity).Return([]entity.CartLine{
		{UserID: identity.UserID, ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Quantity: 1, Price: 6000},
	}, nil)
	mocks.productRepo.EXPECT().FindVisibleByIDs(mock.Anything, []int64{42}).
		Return([]entity.Product{*testProduct()}, nil)

	absentVendorID := uuid.MustParse("44444444-4444-4444-4444-444444444444")
	_, err := svc.Checkout(context.Background(), identity, &absentVendorID)

	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	assert.Zero(t, mocks.txManager.calls)
}

func TestCheckoutGatewayFailureLeavesNoOrders(t *testing.T) {
	svc, mocks := newCheckoutService(t)
	identity := entity.UserIdentity(uuid.MustParse("22222222-2222-2222-2222-222222222222"), "shopper@example.com")

	mocks.cartRepo.EXPECT().Lines(mock.Anything, identity).Return([]entity.CartLine{
		{UserID: identity.UserID, ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Quantity: 1, Price: 6000},
	}, nil)
	mocks.productRepo.EXPECT().FindVisibleByIDs(mock.Anything, []int64{42}).
		Return([]entity.Product{*testProduct()}, nil)

	mocks.orderRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) { order.ID = uuid.New() }).
		Return(nil)
	mocks.orderRepo.EXPECT().
		CreateItems(mock.Anything, mock.AnythingOfType("[]entity.OrderItem")).
		Return(nil)

	mocks.gateway.EXPECT().
		CreateCheckoutSession(mock.Anything, mock.AnythingOfType("*service.CheckoutSessionParams")).
		Return(nil, domainerrors.ErrGatewayUnavailable)

	// SetSessionID is never expected: the transaction function fails before it
	// and the rollback discards the draft orders.
	_, err := svc.Checkout(context.Background(), identity, nil)

	assert.ErrorIs(t, err, domainerrors.ErrGatewayUnavailable)
	assert.Equal(t, 1, mocks.txManager.calls)
}
