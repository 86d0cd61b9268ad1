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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists a new order entity.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCheckoutFailed.WrapMessage("invalid buyer or vendor reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCheckoutFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CreateItems persists the items of an order in one batch.
func (repo *orderRepository) CreateItems(ctx context.Context, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderItemModel, 0, len(items))
	for i := range items {
		itemModels = append(itemModels, fromOrderItemDomain(&items[i]))
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	for i := range items {
		items[i].ID = itemModels[i].ID
		items[i].CreatedAt = itemModels[i].CreatedAt
	}

	return nil
}

// SetSessionID stamps the shared gateway session id onto the given orders.
func (repo *orderRepository) SetSessionID(ctx context.Context, orderIDs []uuid.UUID, sessionID string) error {
	if len(orderIDs) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id IN ?", orderIDs).
		Update("stripe_session_id", sessionID).Error; err != nil {
		return errors.Wrap(err, "failed to set order session id")
	}

	return nil
}

// FindBySessionID retrieves every order created under one checkout session.
func (repo *orderRepository) FindBySessionID(ctx context.Context, sessionID string) ([]entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("stripe_session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by session id")
	}

	return toOrderDomainSlice(orderModels), nil
}

// FindByPaymentIntent retrieves every order attached to a payment intent.
func (repo *orderRepository) FindByPaymentIntent(ctx context.Context, paymentIntent string) ([]entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("payment_intent = ?", paymentIntent).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by payment intent")
	}

	return toOrderDomainSlice(orderModels), nil
}

// FindItems retrieves the items of an order.
func (repo *orderRepository) FindItems(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	var itemModels []*model.OrderItemModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order items")
	}

	items := make([]entity.OrderItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		item, err := toOrderItemDomain(itemM)
		if err != nil {
			return nil, err
		}

		items = append(items, *item)
	}

	return items, nil
}

// MarkPaid transitions a draft order to paid and stamps the payment intent.
// The status guard in the WHERE clause is what makes redelivered webhooks
// harmless: a second delivery matches zero rows and reports false.
func (repo *orderRepository) MarkPaid(ctx context.Context, orderID uuid.UUID, paymentIntent string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", orderID, entity.OrderStatusDraft.String()).
		Updates(map[string]any{
			"status":         entity.OrderStatusPaid.String(),
			"payment_intent": paymentIntent,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to mark order paid")
	}

	return result.RowsAffected > 0, nil
}

// RecordSettlement writes the fee breakdown of an unsettled order. The
// settled_at guard keeps a redelivered settlement event from overwriting the
// original breakdown.
func (repo *orderRepository) RecordSettlement(ctx context.Context, orderID uuid.UUID, processingFee, platformFee, vendorSubtotal int64, settledAt time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ? AND settled_at IS NULL", orderID).
		Updates(map[string]any{
			"processing_fee":  processingFee,
			"platform_fee":    platformFee,
			"vendor_subtotal": vendorSubtotal,
			"settled_at":      settledAt,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to record order settlement")
	}

	return result.RowsAffected > 0, nil
}

// SumVendorSubtotal sums the settled vendor subtotals of a vendor's paid
// orders created in [from, until). The window keys off order creation time so
// an order whose settlement lands after its window closes is still paid out
// with the month it was placed in.
func (repo *orderRepository) SumVendorSubtotal(ctx context.Context, vendorUserID uuid.UUID, from, until time.Time) (int64, error) {
	var total *int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("SUM(vendor_subtotal)").
		Where("vendor_user_id = ?", vendorUserID).
		Where("status = ?", entity.OrderStatusPaid.String()).
		Where("created_at >= ? AND created_at < ?", from, until).
		Scan(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to sum vendor subtotal")
	}

	if total == nil {
		return 0, nil
	}

	return *total, nil
}

// --- Mapper Functions ---

func toOrderDomainSlice(models []*model.OrderModel) []entity.Order {
	orders := make([]entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, *toOrderDomain(orderM))
	}

	return orders
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:              data.ID,
		UserID:          data.UserID,
		VendorUserID:    data.VendorUserID,
		Status:          entity.OrderStatus(data.Status),
		TotalPrice:      data.TotalPrice,
		StripeSessionID: data.StripeSessionID,
		PaymentIntent:   data.PaymentIntent,
		ProcessingFee:   data.ProcessingFee,
		PlatformFee:     data.PlatformFee,
		VendorSubtotal:  data.VendorSubtotal,
		SettledAt:       data.SettledAt,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	return &model.OrderModel{
		ID:              data.ID,
		UserID:          data.UserID,
		VendorUserID:    data.VendorUserID,
		Status:          data.Status.String(),
		TotalPrice:      data.TotalPrice,
		StripeSessionID: data.StripeSessionID,
		PaymentIntent:   data.PaymentIntent,
		ProcessingFee:   data.ProcessingFee,
		PlatformFee:     data.PlatformFee,
		VendorSubtotal:  data.VendorSubtotal,
		SettledAt:       data.SettledAt,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) (*entity.OrderItem, error) {
	optionIDs, err := entity.OptionSetFromKey(data.OptionIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse order item option ids")
	}

	return &entity.OrderItem{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		OptionIDs: optionIDs,
		Quantity:  data.Quantity,
		Price:     data.Price,
		CreatedAt: data.CreatedAt,
	}, nil
}

// fromOrderItemDomain converts a domain OrderItem entity to a GORM OrderItemModel.
func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	return &model.OrderItemModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		OptionIDs: data.OptionIDs.Key(),
		Quantity:  data.Quantity,
		Price:     data.Price,
	}
}
