package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockrepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testVendorID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func testProduct() *entity.Product {
	return &entity.Product{
		ID:           42,
		Title:        "Walnut Desk Organizer",
		Slug:         "walnut-desk-organizer",
		Price:        5500,
		Status:       entity.ProductStatusPublished,
		VendorUserID: testVendorID,
		ImageURL:     "https://cdn.example.com/desk.jpg",
		Vendor: &entity.Vendor{
			UserID:    testVendorID,
			StoreName: "Oak & Iron",
			Status:    entity.VendorStatusApproved,
		},
		VariationTypes: []entity.VariationType{
			{ID: 1, ProductID: 42, Name: "Color", Options: []entity.VariationTypeOption{
				{ID: 3, VariationTypeID: 1, Name: "Walnut"},
				{ID: 4, VariationTypeID: 1, Name: "Oak"},
			}},
			{ID: 2, ProductID: 42, Name: "Size", Options: []entity.VariationTypeOption{
				{ID: 7, VariationTypeID: 2, Name: "Large", ImageURL: "https://cdn.example.com/desk-large.jpg"},
				{ID: 8, VariationTypeID: 2, Name: "Small"},
			}},
		},
		Variations: []entity.ProductVariation{
			{ID: 11, ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Price: int64Ptr(6000)},
		},
	}
}

type cartServiceMocks struct {
	cartRepo    *mockrepo.MockCartRepository
	cookieStore *mockrepo.MockCartRepository
	productRepo *mockrepo.MockProductRepository
}

func newCartService(t *testing.T) (usecase.CartUsecase, *cartServiceMocks) {
	t.Helper()

	mocks := &cartServiceMocks{
		cartRepo:    mockrepo.NewMockCartRepository(t),
		cookieStore: mockrepo.NewMockCartRepository(t),
		productRepo: mockrepo.NewMockProductRepository(t),
	}

	service := NewCartService(CartServiceParams{
		CartRepo:    mocks.cartRepo,
		CookieStore: mocks.cookieStore,
		ProductRepo: mocks.productRepo,
		Logger:      newDiscardLogger(),
	})

	return service, mocks
}

func TestCartServiceAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshots the variation price override for the selection", func(t *testing.T) {
		service, mocks := newCartService(t)
		mocks.productRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(testProduct(), nil)

		var added *entity.CartLine
		mocks.cookieStore.EXPECT().
			Add(mock.Anything, entity.AnonymousIdentity(), mock.AnythingOfType("*entity.CartLine")).
			Run(func(_ context.Context, _ entity.Identity, line *entity.CartLine) {
				added = line
			}).
			Return(nil)

		err := service.Add(ctx, entity.AnonymousIdentity(), &usecase.AddToCartInput{
			ProductID: 42,
			OptionIDs: []int64{7, 3}, // shopper picked in reverse order
			Quantity:  2,
		})

		require.NoError(t, err)
		require.NotNil(t, added)
		assert.Equal(t, int64(6000), added.Price)
		assert.Equal(t, entity.OptionSet{3, 7}, added.OptionIDs)
		assert.Equal(t, int32(2), added.Quantity)
	})

	t.Run("falls back to the base price when no variation matches", func(t *testing.T) {
		service, mocks := newCartService(t)
		mocks.productRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(testProduct(), nil)

		var added *entity.CartLine
		mocks.cookieStore.EXPECT().
			Add(mock.Anything, entity.AnonymousIdentity(), mock.AnythingOfType("*entity.CartLine")).
			Run(func(_ context.Context, _ entity.Identity, line *entity.CartLine) {
				added = line
			}).
			Return(nil)

		err := service.Add(ctx, entity.AnonymousIdentity(), &usecase.AddToCartInput{
			ProductID: 42,
			OptionIDs: []int64{4, 8},
			Quantity:  1,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(5500), added.Price)
	})

	t.Run("uses the default option selection when none is given", func(t *testing.T) {
		service, mocks := newCartService(t)
		mocks.productRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(testProduct(), nil)

		var added *entity.CartLine
		mocks.cookieStore.EXPECT().
			Add(mock.Anything, entity.AnonymousIdentity(), mock.AnythingOfType("*entity.CartLine")).
			Run(func(_ context.Context, _ entity.Identity, line *entity.CartLine) {
				added = line
			}).
			Return(nil)

		err := service.Add(ctx, entity.AnonymousIdentity(), &usecase.AddToCartInput{
			ProductID: 42,
			Quantity:  1,
		})

		require.NoError(t, err)
		// First option of each type: Walnut (3) and Large (7), which also hits
		// the variation price override.
		assert.Equal(t, entity.OptionSet{3, 7}, added.OptionIDs)
		assert.Equal(t, int64(6000), added.Price)
	})

	t.Run("rejects an option that does not belong to the product", func(t *testing.T) {
		service, mocks := newCartService(t)
		mocks.productRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(testProduct(), nil)

		err := service.Add(ctx, entity.AnonymousIdentity(), &usecase.AddToCartInput{
			ProductID: 42,
			OptionIDs: []int64{3, 999},
			Quantity:  1,
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidOptionSelection)
	})

	t.Run("rejects an unpublished product", func(t *testing.T) {
		service, mocks := newCartService(t)
		product := testProduct()
		product.Status = entity.ProductStatusDraft
		mocks.productRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(product, nil)

		err := service.Add(ctx, entity.AnonymousIdentity(), &usecase.AddToCartInput{
			ProductID: 42,
			Quantity:  1,
		})

		assert.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
	})

	t.Run("rejects a product whose vendor is not approved", func(t *testing.T) {
		service, mocks := newCartService(t)
		product := testProduct()
		product.Vendor.Status = entity.VendorStatusPending
		mocks.productRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(product, nil)

		err := service.Add(ctx, entity.AnonymousIdentity(), &usecase.AddToCartInput{
			ProductID: 42,
			Quantity:  1,
		})

		assert.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
	})

	t.Run("maps a missing product to the domain error", func(t *testing.T) {
		service, mocks := newCartService(t)
		mocks.productRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(nil, repository.ErrProductNotFound)

		err := service.Add(ctx, entity.AnonymousIdentity(), &usecase.AddToCartInput{
			ProductID: 42,
			Quantity:  1,
		})

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("routes an authenticated shopper to the database cart", func(t *testing.T) {
		service, mocks := newCartService(t)
		identity := entity.UserIdentity(uuid.MustParse("22222222-2222-2222-2222-222222222222"), "shopper@example.com")

		mocks.productRepo.EXPECT().FindByID(mock.Anything, int64(42)).Return(testProduct(), nil)
		mocks.cartRepo.EXPECT().
			Add(mock.Anything, identity, mock.AnythingOfType("*entity.CartLine")).
			Return(nil)

		err := service.Add(ctx, identity, &usecase.AddToCartInput{
			ProductID: 42,
			Quantity:  1,
		})

		require.NoError(t, err)
	})
}

func TestCartServiceUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("maps a missing line to the domain error", func(t *testing.T) {
		service, mocks := newCartService(t)
		mocks.cookieStore.EXPECT().
			SetQuantity(mock.Anything, entity.AnonymousIdentity(), int64(42), entity.OptionSet{3, 7}, int32(5)).
			Return(repository.ErrCartLineNotFound)

		err := service.UpdateQuantity(ctx, entity.AnonymousIdentity(), 42, []int64{3, 7}, 5)

		assert.ErrorIs(t, err, domainerrors.ErrCartLineNotFound)
	})

	t.Run("delegates to the identity's store", func(t *testing.T) {
		service, mocks := newCartService(t)
		mocks.cookieStore.EXPECT().
			SetQuantity(mock.Anything, entity.AnonymousIdentity(), int64(42), entity.OptionSet{3, 7}, int32(5)).
			Return(nil)

		err := service.UpdateQuantity(ctx, entity.AnonymousIdentity(), 42, []int64{3, 7}, 5)

		require.NoError(t, err)
	})
}

func TestCartServiceItems(t *testing.T) {
	ctx := context.Background()

	t.Run("joins lines with live catalog data", func(t *testing.T) {
		service, mocks := newCartService(t)
		mocks.cookieStore.EXPECT().Lines(mock.Anything, entity.AnonymousIdentity()).Return([]entity.CartLine{
			{ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Quantity: 2, Price: 6000},
		}, nil)
		mocks.productRepo.EXPECT().FindVisibleByIDs(mock.Anything, []int64{42}).Return([]entity.Product{*testProduct()}, nil)

		items, err := service.Items(ctx, entity.AnonymousIdentity())

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Walnut Desk Organizer", items[0].Title)
		assert.Equal(t, int64(12000), items[0].Subtotal)
		assert.Equal(t, "Oak & Iron", items[0].StoreName)
		// The selected Large option carries its own image.
		assert.Equal(t, "https://cdn.example.com/desk-large.jpg", items[0].ImageURL)
		require.Len(t, items[0].Options, 2)
		assert.Equal(t, "Color", items[0].Options[0].Type)
		assert.Equal(t, "Walnut", items[0].Options[0].Name)
	})

	t.Run("drops lines whose product vanished from the catalog", func(t *testing.T) {
		service, mocks := newCartService(t)
		mocks.cookieStore.EXPECT().Lines(mock.Anything, entity.AnonymousIdentity()).Return([]entity.CartLine{
			{ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Quantity: 2, Price: 6000},
			{ProductID: 99, OptionIDs: entity.OptionSet{}, Quantity: 1, Price: 1000},
		}, nil)
		mocks.productRepo.EXPECT().FindVisibleByIDs(mock.Anything, []int64{42, 99}).Return([]entity.Product{*testProduct()}, nil)

		items, err := service.Items(ctx, entity.AnonymousIdentity())

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int64(42), items[0].ProductID)
	})

	t.Run("returns an empty slice for an empty cart", func(t *testing.T) {
		service, mocks := newCartService(t)
		mocks.cookieStore.EXPECT().Lines(mock.Anything, entity.AnonymousIdentity()).Return(nil, nil)

		items, err := service.Items(ctx, entity.AnonymousIdentity())

		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("degrades to an empty cart when the lines cannot be read", func(t *testing.T) {
		service, mocks := newCartService(t)
		identity := entity.Identity{UserID: uuid.MustParse("22222222-2222-2222-2222-222222222222")}
		mocks.cartRepo.EXPECT().Lines(mock.Anything, identity).Return(nil, assert.AnError)

		items, err := service.Items(ctx, identity)

		require.NoError(t, err)
		require.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("degrades to an empty cart when the catalog read fails", func(t *testing.T) {
		service, mocks := newCartService(t)
		mocks.cookieStore.EXPECT().Lines(mock.Anything, entity.AnonymousIdentity()).Return([]entity.CartLine{
			{ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Quantity: 2, Price: 6000},
		}, nil)
		mocks.productRepo.EXPECT().FindVisibleByIDs(mock.Anything, []int64{42}).Return(nil, assert.AnError)

		items, err := service.Items(ctx, entity.AnonymousIdentity())

		require.NoError(t, err)
		require.NotNil(t, items)
		assert.Empty(t, items)
	})
}

func TestCartServiceGroupedByVendor(t *testing.T) {
	ctx := context.Background()

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

	service, mocks := newCartService(t)
	mocks.cookieStore.EXPECT().Lines(mock.Anything, entity.AnonymousIdentity()).Return([]entity.CartLine{
		{ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Quantity: 2, Price: 6000},
		{ProductID: 77, OptionIDs: entity.OptionSet{}, Quantity: 3, Price: 1800},
		{ProductID: 42, OptionIDs: entity.OptionSet{4, 8}, Quantity: 1, Price: 5500},
	}, nil)
	mocks.productRepo.EXPECT().FindVisibleByIDs(mock.Anything, []int64{42, 77}).
		Return([]entity.Product{*testProduct(), otherProduct}, nil)

	groups, err := service.GroupedByVendor(ctx, entity.AnonymousIdentity())

	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Groups follow each vendor's first appearance in the cart.
	assert.Equal(t, testVendorID, groups[0].VendorUserID)
	assert.Equal(t, "Oak & Iron", groups[0].StoreName)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, int32(3), groups[0].TotalQuantity)
	assert.Equal(t, int64(17500), groups[0].TotalPrice)

	assert.Equal(t, otherVendorID, groups[1].VendorUserID)
	assert.Equal(t, int32(3), groups[1].TotalQuantity)
	assert.Equal(t, int64(5400), groups[1].TotalPrice)
}

func TestCartServiceSummary(t *testing.T) {
	ctx := context.Background()

	service, mocks := newCartService(t)
	mocks.cookieStore.EXPECT().Lines(mock.Anything, entity.AnonymousIdentity()).Return([]entity.CartLine{
		{ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Quantity: 2, Price: 6000},
		{ProductID: 42, OptionIDs: entity.OptionSet{4, 8}, Quantity: 1, Price: 5500},
	}, nil)
	mocks.productRepo.EXPECT().FindVisibleByIDs(mock.Anything, []int64{42}).Return([]entity.Product{*testProduct()}, nil)

	summary, err := service.Summary(ctx, entity.AnonymousIdentity())

	require.NoError(t, err)
	assert.Equal(t, int32(3), summary.TotalQuantity)
	assert.Equal(t, int64(17500), summary.TotalPrice)
}

func TestCartServiceMigrate(t *testing.T) {
	ctx := context.Background()

	t.Run("requires an authenticated identity", func(t *testing.T) {
		service, _ := newCartService(t)

		err := service.Migrate(ctx, entity.AnonymousIdentity())

		assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
	})

	t.Run("moves every cookie line into the database cart and clears the cookie", func(t *testing.T) {
		service, mocks := newCartService(t)
		identity := entity.UserIdentity(uuid.MustParse("22222222-2222-2222-2222-222222222222"), "shopper@example.com")

		mocks.cookieStore.EXPECT().Lines(mock.Anything, identity).Return([]entity.CartLine{
			{ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Quantity: 2, Price: 6000},
			{ProductID: 77, OptionIDs: entity.OptionSet{}, Quantity: 1, Price: 1800},
		}, nil)

		var migrated []entity.CartLine
		mocks.cartRepo.EXPECT().
			Add(mock.Anything, identity, mock.AnythingOfType("*entity.CartLine")).
			Run(func(_ context.Context, _ entity.Identity, line *entity.CartLine) {
				migrated = append(migrated, *line)
			}).
			Return(nil).
			Times(2)
		mocks.cookieStore.EXPECT().Clear(mock.Anything, identity).Return(nil)

		err := service.Migrate(ctx, identity)

		require.NoError(t, err)
		require.Len(t, migrated, 2)
		for _, line := range migrated {
			assert.Equal(t, identity.UserID, line.UserID)
		}
	})

	t.Run("keeps the cookie when a database insert fails", func(t *testing.T) {
		service, mocks := newCartService(t)
		identity := entity.UserIdentity(uuid.MustParse("22222222-2222-2222-2222-222222222222"), "shopper@example.com")

		mocks.cookieStore.EXPECT().Lines(mock.Anything, identity).Return([]entity.CartLine{
			{ProductID: 42, OptionIDs: entity.OptionSet{3, 7}, Quantity: 2, Price: 6000},
		}, nil)
		mocks.cartRepo.EXPECT().
			Add(mock.Anything, identity, mock.AnythingOfType("*entity.CartLine")).
			Return(assert.AnError)

		err := service.Migrate(ctx, identity)

		assert.Error(t, err)
	})
}
