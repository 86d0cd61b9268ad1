package postgres

import (
	"context"
	"time"

	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// webhookEventRepository implements the repository.WebhookEventRepository
// interface. It is the processed-event ledger backing webhook idempotency.
type webhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository is the constructor for webhookEventRepository.
func NewWebhookEventRepository(db *gorm.DB) repository.WebhookEventRepository {
	return &webhookEventRepository{
		db: db,
	}
}

// Exists reports whether the event id has been processed before.
func (repo *webhookEventRepository) Exists(ctx context.Context, eventID string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.WebhookEventModel{}).
		Where("id = ?", eventID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check webhook event")
	}

	return count > 0, nil
}

// MarkProcessed records the event id. A duplicate insert is swallowed so a
// concurrent redelivery cannot fail the whole transaction.
func (repo *webhookEventRepository) MarkProcessed(ctx context.Context, eventID string) error {
	eventM := &model.WebhookEventModel{
		ID:          eventID,
		ProcessedAt: time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(eventM).Error; err != nil {
		return errors.Wrap(err, "failed to mark webhook event processed")
	}

	return nil
}
