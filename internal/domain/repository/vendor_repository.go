package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVendorNotFound is returned when a vendor account does not exist.
var ErrVendorNotFound = errors.New("vendor not found")

// VendorRepository defines the standard operations for vendor persistence.
type VendorRepository interface {
	// FindByUserID retrieves a vendor by its owning user id.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error)

	// FindEligible retrieves every approved vendor with an active gateway
	// account, the population the payout run iterates over.
	FindEligible(ctx context.Context) ([]entity.Vendor, error)
}
