package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// FindByID retrieves a single product with its variation types, options and variations preloaded.
func (repo *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Vendor").
		Preload("VariationTypes.Options").
		Preload("Variations").
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindVisibleByIDs retrieves only published products of approved vendors.
func (repo *productRepository) FindVisibleByIDs(ctx context.Context, ids []int64) ([]entity.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Vendor").
		Preload("VariationTypes.Options").
		Preload("Variations").
		Joins("JOIN vendors ON vendors.user_id = products.vendor_user_id").
		Where("products.id IN ?", ids).
		Where("products.status = ?", entity.ProductStatusPublished.String()).
		Where("vendors.status = ?", entity.VendorStatusApproved.String()).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visible products by ids")
	}

	return toProductDomainSlice(productModels), nil
}

// DecrementStock atomically subtracts quantity from the product's tracked stock.
// Untracked products (NULL quantity) match zero rows and stay untouched.
func (repo *productRepository) DecrementStock(ctx context.Context, productID int64, quantity int32) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND quantity IS NOT NULL", productID).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity)).Error; err != nil {
		return errors.Wrap(err, "failed to decrement product stock")
	}

	return nil
}

// DecrementVariationStock atomically subtracts quantity from a variation's tracked stock.
func (repo *productRepository) DecrementVariationStock(ctx context.Context, variationID int64, quantity int32) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductVariationModel{}).
		Where("id = ? AND quantity IS NOT NULL", variationID).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity)).Error; err != nil {
		return errors.Wrap(err, "failed to decrement variation stock")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toProductDomainSlice(models []*model.ProductModel) []entity.Product {
	products := make([]entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, *toProductDomain(productM))
	}

	return products
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	variationTypes := make([]entity.VariationType, 0, len(data.VariationTypes))
	for _, typeM := range data.VariationTypes {
		options := make([]entity.VariationTypeOption, 0, len(typeM.Options))
		for _, optionM := range typeM.Options {
			options = append(options, entity.VariationTypeOption{
				ID:              optionM.ID,
				VariationTypeID: optionM.VariationTypeID,
				Name:            optionM.Name,
				ImageURL:        optionM.ImageURL,
			})
		}

		variationTypes = append(variationTypes, entity.VariationType{
			ID:        typeM.ID,
			ProductID: typeM.ProductID,
			Name:      typeM.Name,
			Options:   options,
		})
	}

	variations := make([]entity.ProductVariation, 0, len(data.Variations))
	for _, variationM := range data.Variations {
		optionIDs, err := entity.OptionSetFromKey(variationM.OptionIDs)
		if err != nil {
			// A row that fails to parse cannot match any selection; skip it.
			continue
		}

		variations = append(variations, entity.ProductVariation{
			ID:        variationM.ID,
			ProductID: variationM.ProductID,
			OptionIDs: optionIDs,
			Price:     variationM.Price,
			Quantity:  variationM.Quantity,
		})
	}

	return &entity.Product{
		ID:             data.ID,
		Title:          data.Title,
		Slug:           data.Slug,
		Price:          data.Price,
		Quantity:       data.Quantity,
		Status:         entity.ProductStatus(data.Status),
		VendorUserID:   data.VendorUserID,
		ImageURL:       data.ImageURL,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		Vendor:         toVendorDomain(data.Vendor),
		VariationTypes: variationTypes,
		Variations:     variations,
	}
}
