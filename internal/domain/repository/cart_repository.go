package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartLineNotFound is returned when a cart line does not exist for the
// given owner and line key.
var ErrCartLineNotFound = errors.New("cart line not found")

// CartLineStore is the backend-neutral contract for holding cart lines. Both
// the database-backed store (signed-in shoppers) and the cookie-backed store
// (anonymous shoppers) implement it, so the cart service never branches on
// where lines live beyond picking the store once per call.
type CartLineStore interface {
	// Add inserts the line or, when a line with the same (product, option set)
	// key already exists, adds the quantity onto it.
	Add(ctx context.Context, identity entity.Identity, line *entity.CartLine) error

	// SetQuantity replaces the quantity of an existing line. A quantity of
	// zero or less removes the line.
	SetQuantity(ctx context.Context, identity entity.Identity, productID int64, optionIDs entity.OptionSet, quantity int32) error

	// Remove deletes the line for the given (product, option set) key.
	Remove(ctx context.Context, identity entity.Identity, productID int64, optionIDs entity.OptionSet) error

	// Lines returns every line of the identity's cart, oldest first.
	Lines(ctx context.Context, identity entity.Identity) ([]entity.CartLine, error)

	// Clear removes every line of the identity's cart.
	Clear(ctx context.Context, identity entity.Identity) error
}

// CartRepository is the persistent half of the cart on top of CartLineStore,
// with the operations only the database backend supports.
type CartRepository interface {
	CartLineStore

	// DeletePurchased removes the user's active lines for the given line keys,
	// leaving saved-for-later lines in place.
	DeletePurchased(ctx context.Context, userID uuid.UUID, lineKeys []string) error
}
