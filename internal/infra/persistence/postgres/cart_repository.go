package postgres

import (
	"context"
	"strings"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface. It is the
// persistent cart backend used for signed-in shoppers.
type cartRepository struct {
	db *gorm.DB

	// refreshPriceOnRepeatAdd decides what a repeat add does to the
	// snapshotted unit price. The persistent cart keeps the quote the shopper
	// was first shown; the cookie backend refreshes it instead. The two
	// constructors set the rule for their backend.
	refreshPriceOnRepeatAdd bool
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db:                      db,
		refreshPriceOnRepeatAdd: false,
	}
}

// Add inserts the line or, when the (user, product, option set) key already
// exists, adds the quantity onto the existing row. What happens to the price
// snapshot of an existing row is governed by refreshPriceOnRepeatAdd.
func (repo *cartRepository) Add(ctx context.Context, identity entity.Identity, line *entity.CartLine) error {
	lineM := fromCartLineDomain(identity.UserID, line)

	assignments := map[string]any{
		"quantity":   gorm.Expr("cart_lines.quantity + EXCLUDED.quantity"),
		"updated_at": gorm.Expr("now()"),
	}
	if repo.refreshPriceOnRepeatAdd {
		assignments["price"] = gorm.Expr("EXCLUDED.price")
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "user_id"},
				{Name: "product_id"},
				{Name: "option_ids"},
				{Name: "saved_for_later"},
			},
			DoUpdates: clause.Assignments(assignments),
		}).
		Create(lineM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to add cart line")
	}

	line.ID = lineM.ID
	line.UserID = lineM.UserID
	line.CreatedAt = lineM.CreatedAt
	line.UpdatedAt = lineM.UpdatedAt

	return nil
}

// SetQuantity replaces the quantity of an existing active line. A quantity of
// zero or less removes the line instead.
func (repo *cartRepository) SetQuantity(ctx context.Context, identity entity.Identity, productID int64, optionIDs entity.OptionSet, quantity int32) error {
	if quantity <= 0 {
		return repo.Remove(ctx, identity, productID, optionIDs)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("user_id = ? AND product_id = ? AND option_ids = ? AND saved_for_later = ?",
			identity.UserID, productID, optionIDs.Key(), false).
		Update("quantity", quantity)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cart line quantity")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// Remove deletes the active line for the given (product, option set) key.
// Removing a line that does not exist is a no-op.
func (repo *cartRepository) Remove(ctx context.Context, identity entity.Identity, productID int64, optionIDs entity.OptionSet) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ? AND option_ids = ? AND saved_for_later = ?",
			identity.UserID, productID, optionIDs.Key(), false).
		Delete(&model.CartLineModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove cart line")
	}

	return nil
}

// Lines returns every active line of the user's cart, oldest first.
func (repo *cartRepository) Lines(ctx context.Context, identity entity.Identity) ([]entity.CartLine, error) {
	var lineModels []*model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND saved_for_later = ?", identity.UserID, false).
		Order("created_at ASC").
		Find(&lineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines")
	}

	lines := make([]entity.CartLine, 0, len(lineModels))
	for _, lineM := range lineModels {
		line, err := toCartLineDomain(lineM)
		if err != nil {
			return nil, err
		}

		lines = append(lines, *line)
	}

	return lines, nil
}

// Clear removes every active line of the user's cart.
func (repo *cartRepository) Clear(ctx context.Context, identity entity.Identity) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND saved_for_later = ?", identity.UserID, false).
		Delete(&model.CartLineModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// DeletePurchased removes the user's active lines for the given line keys,
// leaving saved-for-later lines in place.
func (repo *cartRepository) DeletePurchased(ctx context.Context, userID uuid.UUID, lineKeys []string) error {
	for _, key := range lineKeys {
		productID, optionIDs, ok := splitLineKey(key)
		if !ok {
			continue
		}

		if err := repo.db.WithContext(ctx).
			Where("user_id = ? AND product_id = ? AND option_ids = ? AND saved_for_later = ?",
				userID, productID, optionIDs, false).
			Delete(&model.CartLineModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete purchased cart line")
		}
	}

	return nil
}

// splitLineKey splits "<productID>_<canonical option JSON>" into its parts.
func splitLineKey(key string) (string, string, bool) {
	parts := strings.SplitN(key, "_", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	return parts[0], parts[1], true
}

// --- Mapper Functions ---

// toCartLineDomain converts a GORM CartLineModel to a domain CartLine entity.
func toCartLineDomain(data *model.CartLineModel) (*entity.CartLine, error) {
	optionIDs, err := entity.OptionSetFromKey(data.OptionIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse cart line option ids")
	}

	return &entity.CartLine{
		ID:            data.ID,
		UserID:        data.UserID,
		ProductID:     data.ProductID,
		OptionIDs:     optionIDs,
		Quantity:      data.Quantity,
		Price:         data.Price,
		SavedForLater: data.SavedForLater,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

// fromCartLineDomain converts a domain CartLine entity to a GORM CartLineModel.
func fromCartLineDomain(userID uuid.UUID, data *entity.CartLine) *model.CartLineModel {
	return &model.CartLineModel{
		ID:            data.ID,
		UserID:        userID,
		ProductID:     data.ProductID,
		OptionIDs:     data.OptionIDs.Key(),
		Quantity:      data.Quantity,
		Price:         data.Price,
		SavedForLater: data.SavedForLater,
	}
}
