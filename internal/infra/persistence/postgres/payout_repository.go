package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// payoutRepository implements the repository.PayoutRepository interface.
type payoutRepository struct {
	db *gorm.DB
}

// NewPayoutRepository is the constructor for payoutRepository.
func NewPayoutRepository(db *gorm.DB) repository.PayoutRepository {
	return &payoutRepository{
		db: db,
	}
}

// Create persists a new payout row.
func (repo *payoutRepository) Create(ctx context.Context, payout *entity.Payout) error {
	payoutM := fromPayoutDomain(payout)

	if err := repo.db.WithContext(ctx).Create(payoutM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVendorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payout")
	}

	payout.ID = payoutM.ID
	payout.CreatedAt = payoutM.CreatedAt

	return nil
}

// LatestUntil returns the end of the vendor's most recent payout window, or
// the zero time when the vendor has never been paid out.
func (repo *payoutRepository) LatestUntil(ctx context.Context, vendorUserID uuid.UUID) (time.Time, error) {
	var payoutM model.PayoutModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_user_id = ?", vendorUserID).
		Order("until DESC").
		First(&payoutM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, nil
		}

		return time.Time{}, errors.Wrap(err, "failed to find latest payout")
	}

	return payoutM.Until, nil
}

// --- Mapper Functions ---

// fromPayoutDomain converts a domain Payout entity to a GORM PayoutModel.
func fromPayoutDomain(data *entity.Payout) *model.PayoutModel {
	return &model.PayoutModel{
		ID:           data.ID,
		VendorUserID: data.VendorUserID,
		Amount:       data.Amount,
		StartingFrom: data.StartingFrom,
		Until:        data.Until,
		TransferID:   data.TransferID,
	}
}
