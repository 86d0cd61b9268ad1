// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for catalog persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ProductRepository interface {
	// FindByID retrieves a single product with its variation types, options and
	// variations preloaded.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// FindVisibleByIDs retrieves only published products of approved vendors,
	// variations preloaded. Missing or hidden ids are silently omitted.
	FindVisibleByIDs(ctx context.Context, ids []int64) ([]entity.Product, error)

	// DecrementStock atomically subtracts quantity from the product's tracked
	// stock. Products with untracked stock are left untouched.
	DecrementStock(ctx context.Context, productID int64, quantity int32) error

	// DecrementVariationStock atomically subtracts quantity from a variation's
	// tracked stock. Variations with untracked stock are left untouched.
	DecrementVariationStock(ctx context.Context, variationID int64, quantity int32) error
}
