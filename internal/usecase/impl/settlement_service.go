package impl

import (
	"context"
	"log/slog"
	"math"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type settlementService struct {
	txManager repository.TransactionManager
	gateway   service.PaymentGateway
	publisher service.EventPublisher
	config    *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// SettlementServiceParams holds dependencies for SettlementService, injected by Fx.
type SettlementServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Gateway   service.PaymentGateway
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSettlementService creates a new settlement service instance
func NewSettlementService(params SettlementServiceParams) usecase.SettlementUsecase {
	return &settlementService{
		txManager: params.TxManager,
		gateway:   params.Gateway,
		publisher: params.Publisher,
		config:    params.Config,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// HandleCheckoutSessionCompleted marks the session's orders paid, decrements
// tracked stock, removes the purchased lines from the buyer's cart and
// publishes order events for the newly paid orders.
//
// The processed-event ledger plus the draft-to-paid status guard make the
// handler safe under redelivery: a duplicate event either short-circuits on
// the ledger or transitions zero orders, and side effects only fire for
// orders that actually transitioned.
func (s *settlementService) HandleCheckoutSessionCompleted(ctx context.Context, event *service.CheckoutSessionCompleted) error {
	var paidOrders []entity.Order

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		webhookRepo := f.NewWebhookEventRepository()

		processed, err := webhookRepo.Exists(ctx, event.EventID)
		if err != nil {
			return err
		}
		if processed {
			return nil
		}

		orderRepo := f.NewOrderRepository()

		orders, err := orderRepo.FindBySessionID(ctx, event.SessionID)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			return domainerrors.ErrOrderNotFound.WrapMessage("no orders for checkout session " + event.SessionID)
		}

		productRepo := f.NewProductRepository()
		purchasedKeys := make([]string, 0)

		for _, order := range orders {
			transitioned, err := orderRepo.MarkPaid(ctx, order.ID, event.PaymentIntent)
			if err != nil {
				return err
			}
			if !transitioned {
				// Already paid by an earlier delivery; no side effects.
				continue
			}

			items, err := orderRepo.FindItems(ctx, order.ID)
			if err != nil {
				return err
			}

			for i := range items {
				if err := s.decrementStock(ctx, productRepo, &items[i]); err != nil {
					return err
				}

				purchasedKeys = append(purchasedKeys, entity.LineKey(items[i].ProductID, items[i].OptionIDs))
			}

			order.Status = entity.OrderStatusPaid
			paidOrders = append(paidOrders, order)
		}

		if len(paidOrders) > 0 {
			// The purchased lines leave the buyer's cart; saved-for-later
			// lines are untouched.
			cartRepo := f.NewCartRepository()
			if err := cartRepo.DeletePurchased(ctx, paidOrders[0].UserID, purchasedKeys); err != nil {
				return err
			}
		}

		return webhookRepo.MarkProcessed(ctx, event.EventID)
	})
	if err != nil {
		return err
	}

	// Events go out after the commit so a publish failure can never roll back
	// the payment state. Failures are logged, not returned.
	var checkoutTotal int64
	for _, order := range paidOrders {
		checkoutTotal += order.TotalPrice

		publishErr := s.publisher.PublishOrderEvent(ctx, &service.OrderEvent{
			EventType:    service.OrderEventPaid,
			OrderID:      order.ID.String(),
			BuyerUserID:  order.UserID.String(),
			VendorUserID: order.VendorUserID.String(),
			TotalPrice:   order.TotalPrice,
			Currency:     s.config.Checkout.Currency,
		})
		if publishErr != nil {
			s.logger.Error("failed to publish order paid event",
				slog.String("orderID", order.ID.String()),
				slog.String("error", publishErr.Error()),
			)
		}
	}

	// One aggregate receipt event for the buyer covering the whole payment.
	if len(paidOrders) > 0 {
		publishErr := s.publisher.PublishOrderEvent(ctx, &service.OrderEvent{
			EventType:   service.OrderEventCheckoutCompleted,
			SessionID:   event.SessionID,
			BuyerUserID: paidOrders[0].UserID.String(),
			TotalPrice:  checkoutTotal,
			Currency:    s.config.Checkout.Currency,
		})
		if publishErr != nil {
			s.logger.Error("failed to publish checkout completed event",
				slog.String("sessionID", event.SessionID),
				slog.String("error", publishErr.Error()),
			)
		}
	}

	return nil
}

// decrementStock subtracts the purchased quantity from the matching variation
// when it tracks stock, otherwise from the product when it tracks stock.
// Untracked stock is never touched, and no floor is applied: overselling shows
// up as negative stock rather than a failed payment.
func (s *settlementService) decrementStock(ctx context.Context, productRepo repository.ProductRepository, item *entity.OrderItem) error {
	product, err := productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			// The product vanished between checkout and payment; the order
			// stands, there is just no stock row to adjust.
			s.logger.Warn("purchased product no longer exists, skipping stock decrement",
				slog.Int64("productID", item.ProductID),
			)

			return nil
		}

		return err
	}

	if variation := product.VariationForOptions(item.OptionIDs); variation != nil {
		if variation.Quantity != nil {
			return productRepo.DecrementVariationStock(ctx, variation.ID, item.Quantity)
		}

		return nil
	}

	if product.Quantity != nil {
		return productRepo.DecrementStock(ctx, product.ID, item.Quantity)
	}

	return nil
}

// HandleChargeSettled splits the charge's processor fee across the payment's
// orders in proportion to their totals and records each order's breakdown.
func (s *settlementService) HandleChargeSettled(ctx context.Context, event *service.ChargeSettled) error {
	// The balance transaction fetch happens before the transaction opens; it
	// is a read against the gateway and safe to repeat.
	transaction, err := s.gateway.GetBalanceTransaction(ctx, event.BalanceTransactionID)
	if err != nil {
		return err
	}

	return s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		webhookRepo := f.NewWebhookEventRepository()

		processed, err := webhookRepo.Exists(ctx, event.EventID)
		if err != nil {
			return err
		}
		if processed {
			return nil
		}

		orderRepo := f.NewOrderRepository()

		orders, err := orderRepo.FindByPaymentIntent(ctx, event.PaymentIntent)
		if err != nil {
			return err
		}
		if len(orders) == 0 {
			// The settlement event arrived before the session-completed event
			// stamped the payment intent. Failing here makes the gateway
			// redeliver after the other event lands.
			return domainerrors.ErrSettlementNotReady
		}

		var aggregate int64
		for _, order := range orders {
			aggregate += order.TotalPrice
		}
		if aggregate <= 0 {
			return domainerrors.ErrSettlementNotReady.WithDetails("orders have no payable total")
		}

		processorFee := transaction.ProcessorFee()
		settledAt := s.now().UTC()

		for _, order := range orders {
			processingFee, platformFee, vendorSubtotal := splitFees(
				order.TotalPrice, aggregate, processorFee, s.config.Checkout.PlatformFeePct,
			)

			// The settled-at guard inside RecordSettlement keeps a redelivery
			// from overwriting an existing breakdown.
			if _, err := orderRepo.RecordSettlement(ctx, order.ID, processingFee, platformFee, vendorSubtotal, settledAt); err != nil {
				return err
			}
		}

		return webhookRepo.MarkProcessed(ctx, event.EventID)
	})
}

// splitFees computes one order's share of the charge's fees, all in minor
// currency units. The processor fee is split in proportion to the order's
// share of the aggregate; the platform commission applies to what remains.
func splitFees(orderTotal, aggregate, processorFee int64, platformFeePct float64) (processingFee, platformFee, vendorSubtotal int64) {
	share := float64(orderTotal) / float64(aggregate)
	processingFee = int64(math.Round(share * float64(processorFee)))
	platformFee = int64(math.Round(float64(orderTotal-processingFee) * platformFeePct / 100))
	vendorSubtotal = orderTotal - processingFee - platformFee

	return processingFee, platformFee, vendorSubtotal
}
