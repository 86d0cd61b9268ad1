// Package impl contains the concrete implementations of the usecase interfaces.
package impl

import (
	"context"
	"log/slog"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo    repository.CartRepository
	cookieStore repository.CartLineStore
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	CookieStore repository.CartLineStore `name:"cookieCartStore"`
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		cookieStore: params.CookieStore,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// store picks the backend for the identity. This is the only place the
// anonymous/authenticated distinction exists; everything below works against
// the CartLineStore contract.
func (s *cartService) store(identity entity.Identity) repository.CartLineStore {
	if identity.Authenticated() {
		return s.cartRepo
	}

	return s.cookieStore
}

// Add resolves the product and option selection, snapshots the unit price and
// adds the line to the identity's cart.
func (s *cartService) Add(ctx context.Context, identity entity.Identity, input *usecase.AddToCartInput) error {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to load product for cart add")
	}

	if !purchasable(product) {
		return domainerrors.ErrProductUnavailable
	}

	optionIDs := entity.OptionSet(input.OptionIDs)
	if len(optionIDs) == 0 {
		// No explicit selection: fall back to the first option of every
		// variation type, matching what the product page preselects.
		optionIDs = product.DefaultOptionSelection()
	}

	for _, optionID := range optionIDs {
		if option, _ := product.OptionByID(optionID); option == nil {
			return domainerrors.ErrInvalidOptionSelection
		}
	}

	line := &entity.CartLine{
		ProductID: product.ID,
		OptionIDs: optionIDs.Normalize(),
		Quantity:  input.Quantity,
		Price:     product.PriceForOptions(optionIDs),
	}

	if err := s.store(identity).Add(ctx, identity, line); err != nil {
		return errors.Wrap(err, "failed to add cart line")
	}

	return nil
}

// UpdateQuantity replaces the quantity of an existing line; zero removes it.
func (s *cartService) UpdateQuantity(ctx context.Context, identity entity.Identity, productID int64, optionIDs []int64, quantity int32) error {
	err := s.store(identity).SetQuantity(ctx, identity, productID, entity.OptionSet(optionIDs), quantity)
	if err != nil {
		if errors.Is(err, repository.ErrCartLineNotFound) {
			return domainerrors.ErrCartLineNotFound
		}

		return errors.Wrap(err, "failed to update cart line quantity")
	}

	return nil
}

// Remove deletes a line from the cart.
func (s *cartService) Remove(ctx context.Context, identity entity.Identity, productID int64, optionIDs []int64) error {
	if err := s.store(identity).Remove(ctx, identity, productID, entity.OptionSet(optionIDs)); err != nil {
		return errors.Wrap(err, "failed to remove cart line")
	}

	return nil
}

// Items returns the cart's lines joined with live catalog data, in
// first-added order. A failing backend degrades to an empty cart instead of
// an error: the storefront keeps rendering, and the lines themselves are
// still in place for the next read.
func (s *cartService) Items(ctx context.Context, identity entity.Identity) ([]usecase.CartItem, error) {
	lines, err := s.store(identity).Lines(ctx, identity)
	if err != nil {
		s.logger.Error("failed to load cart lines, serving an empty cart",
			slog.String("error", err.Error()),
		)

		return []usecase.CartItem{}, nil
	}

	if len(lines) == 0 {
		return []usecase.CartItem{}, nil
	}

	productIDs := make([]int64, 0, len(lines))
	seen := make(map[int64]bool, len(lines))
	for _, line := range lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			productIDs = append(productIDs, line.ProductID)
		}
	}

	// Only storefront-visible products come back; a line whose product was
	// unpublished or whose vendor lost approval is dropped from the view
	// without deleting the underlying line.
	products, err := s.productRepo.FindVisibleByIDs(ctx, productIDs)
	if err != nil {
		s.logger.Error("failed to load cart products, serving an empty cart",
			slog.String("error", err.Error()),
		)

		return []usecase.CartItem{}, nil
	}

	productsByID := make(map[int64]*entity.Product, len(products))
	for i := range products {
		productsByID[products[i].ID] = &products[i]
	}

	items := make([]usecase.CartItem, 0, len(lines))
	for _, line := range lines {
		product, ok := productsByID[line.ProductID]
		if !ok {
			// The product was removed from the catalog after the line was
			// added. The cart stays usable; the vanished line is dropped.
			s.logger.Warn("dropping cart line for missing product",
				slog.Int64("productID", line.ProductID),
			)

			continue
		}

		items = append(items, buildCartItem(product, &line))
	}

	return items, nil
}

// GroupedByVendor splits the cart's items into per-vendor groups, ordered by
// each vendor's first appearance in the cart.
func (s *cartService) GroupedByVendor(ctx context.Context, identity entity.Identity) ([]usecase.VendorGroup, error) {
	items, err := s.Items(ctx, identity)
	if err != nil {
		return nil, err
	}

	groups := make([]usecase.VendorGroup, 0)
	indexByVendor := make(map[string]int)

	for _, item := range items {
		key := item.VendorUserID.String()
		i, ok := indexByVendor[key]
		if !ok {
			i = len(groups)
			indexByVendor[key] = i
			groups = append(groups, usecase.VendorGroup{
				VendorUserID: item.VendorUserID,
				StoreName:    item.StoreName,
			})
		}

		groups[i].Items = append(groups[i].Items, item)
		groups[i].TotalQuantity += item.Quantity
		groups[i].TotalPrice += item.Subtotal
	}

	return groups, nil
}

// Summary returns the cart's total quantity and total price.
func (s *cartService) Summary(ctx context.Context, identity entity.Identity) (*usecase.CartSummary, error) {
	items, err := s.Items(ctx, identity)
	if err != nil {
		return nil, err
	}

	summary := &usecase.CartSummary{}
	for _, item := range items {
		summary.TotalQuantity += item.Quantity
		summary.TotalPrice += item.Subtotal
	}

	return summary, nil
}

// Migrate moves the cookie cart into the database cart at login, merging
// quantities on colliding lines, then empties the cookie.
func (s *cartService) Migrate(ctx context.Context, identity entity.Identity) error {
	if !identity.Authenticated() {
		return domainerrors.ErrAuthenticationRequired
	}

	lines, err := s.cookieStore.Lines(ctx, identity)
	if err != nil {
		return errors.Wrap(err, "failed to read cookie cart for migration")
	}

	for i := range lines {
		line := lines[i]
		line.UserID = identity.UserID
		// The database Add merges quantities on the same (product, option
		// set) key, which is exactly the collision rule migration needs. The
		// database keeps its own price snapshot on collision.
		if err := s.cartRepo.Add(ctx, identity, &line); err != nil {
			return errors.Wrap(err, "failed to migrate cart line")
		}
	}

	if err := s.cookieStore.Clear(ctx, identity); err != nil {
		return errors.Wrap(err, "failed to clear cookie cart after migration")
	}

	return nil
}

func purchasable(product *entity.Product) bool {
	if product.Status != entity.ProductStatusPublished {
		return false
	}

	return product.Vendor == nil || product.Vendor.Status == entity.VendorStatusApproved
}

func buildCartItem(product *entity.Product, line *entity.CartLine) usecase.CartItem {
	options := make([]usecase.SelectedOption, 0, len(line.OptionIDs))
	for _, optionID := range line.OptionIDs {
		if option, variationType := product.OptionByID(optionID); option != nil {
			options = append(options, usecase.SelectedOption{
				ID:   option.ID,
				Type: variationType.Name,
				Name: option.Name,
			})
		}
	}

	item := usecase.CartItem{
		ProductID:    product.ID,
		Title:        product.Title,
		Slug:         product.Slug,
		ImageURL:     product.ImageForOptions(line.OptionIDs),
		Options:      options,
		OptionIDs:    line.OptionIDs,
		Quantity:     line.Quantity,
		Price:        line.Price,
		Subtotal:     line.Price * int64(line.Quantity),
		VendorUserID: product.VendorUserID,
	}
	if product.Vendor != nil {
		item.StoreName = product.Vendor.StoreName
	}

	return item
}
