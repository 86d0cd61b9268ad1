package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// vendorRepository implements the repository.VendorRepository interface.
type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{
		db: db,
	}
}

// FindByUserID retrieves a vendor by its owning user id.
func (repo *vendorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor by user id")
	}

	return toVendorDomain(&vendorM), nil
}

// FindEligible retrieves every approved vendor with an active gateway account.
func (repo *vendorRepository) FindEligible(ctx context.Context) ([]entity.Vendor, error) {
	var vendorModels []*model.VendorModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.VendorStatusApproved.String()).
		Where("stripe_account_id IS NOT NULL").
		Where("stripe_account_active = ?", true).
		Order("created_at ASC").
		Find(&vendorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find eligible vendors")
	}

	vendors := make([]entity.Vendor, 0, len(vendorModels))
	for _, vendorM := range vendorModels {
		vendors = append(vendors, *toVendorDomain(vendorM))
	}

	return vendors, nil
}

// --- Mapper Functions ---

// toVendorDomain converts a GORM VendorModel to a domain Vendor entity.
func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	return &entity.Vendor{
		UserID:              data.UserID,
		StoreName:           data.StoreName,
		Status:              entity.VendorStatus(data.Status),
		StripeAccountID:     data.StripeAccountID,
		StripeAccountActive: data.StripeAccountActive,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}
