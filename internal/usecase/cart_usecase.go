// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the interface for cart-related business operations. The
// same operations serve anonymous shoppers (cookie backend) and signed-in
// shoppers (database backend); the identity decides which, once, per call.
type CartUsecase interface {
	// Add resolves the product and option selection, snapshots the unit price
	// and adds the line to the identity's cart.
	Add(ctx context.Context, identity entity.Identity, input *AddToCartInput) error

	// UpdateQuantity replaces the quantity of an existing line; zero removes it.
	UpdateQuantity(ctx context.Context, identity entity.Identity, productID int64, optionIDs []int64, quantity int32) error

	// Remove deletes a line from the cart.
	Remove(ctx context.Context, identity entity.Identity, productID int64, optionIDs []int64) error

	// Items returns the cart's lines joined with live catalog data, in
	// first-added order. Lines whose product has vanished are dropped.
	Items(ctx context.Context, identity entity.Identity) ([]CartItem, error)

	// GroupedByVendor splits the cart's items into per-vendor groups, ordered
	// by each vendor's first appearance in the cart.
	GroupedByVendor(ctx context.Context, identity entity.Identity) ([]VendorGroup, error)

	// Summary returns the cart's total quantity and total price.
	Summary(ctx context.Context, identity entity.Identity) (*CartSummary, error)

	// Migrate moves the cookie cart into the database cart at login, merging
	// quantities on colliding lines, then empties the cookie.
	Migrate(ctx context.Context, identity entity.Identity) error
}

// --- Input DTOs ---

// AddToCartInput defines the data required to add a product to the cart. An
// empty option selection falls back to the product's default options.
type AddToCartInput struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	OptionIDs []int64 `json:"option_ids"`
	Quantity  int32   `json:"quantity" validate:"required,gt=0"`
}

// --- Output DTOs ---

// SelectedOption is one resolved option of a cart item.
type SelectedOption struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// CartItem is one cart line joined with its live catalog data.
type CartItem struct {
	ProductID    int64            `json:"product_id"`
	Title        string           `json:"title"`
	Slug         string           `json:"slug"`
	ImageURL     string           `json:"image_url"`
	Options      []SelectedOption `json:"options"`
	OptionIDs    []int64          `json:"option_ids"`
	Quantity     int32            `json:"quantity"`
	Price        int64            `json:"price"`
	Subtotal     int64            `json:"subtotal"`
	VendorUserID uuid.UUID        `json:"vendor_user_id"`
	StoreName    string           `json:"store_name"`
}

// VendorGroup is the slice of the cart belonging to one vendor.
type VendorGroup struct {
	VendorUserID  uuid.UUID  `json:"vendor_user_id"`
	StoreName     string     `json:"store_name"`
	Items         []CartItem `json:"items"`
	TotalQuantity int32      `json:"total_quantity"`
	TotalPrice    int64      `json:"total_price"`
}

// CartSummary is the cart's badge data.
type CartSummary struct {
	TotalQuantity int32 `json:"total_quantity"`
	TotalPrice    int64 `json:"total_price"`
}
