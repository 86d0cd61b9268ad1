package impl

import (
	"context"
	"strings"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type checkoutService struct {
	cart      usecase.CartUsecase
	txManager repository.TransactionManager
	gateway   service.PaymentGateway
	config    *config.Config
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Cart      usecase.CartUsecase
	TxManager repository.TransactionManager
	Gateway   service.PaymentGateway
	Config    *config.Config
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		cart:      params.Cart,
		txManager: params.TxManager,
		gateway:   params.Gateway,
		config:    params.Config,
	}
}

// Checkout creates one draft order per vendor in the cart, opens a single
// gateway session covering all of them and stamps the session id onto every
// order. The whole sequence runs inside one transaction: if the gateway call
// or any insert fails, no order survives.
func (s *checkoutService) Checkout(ctx context.Context, identity entity.Identity, vendorFilter *uuid.UUID) (*usecase.CheckoutResult, error) {
	if !identity.Authenticated() {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	groups, err := s.cart.GroupedByVendor(ctx, identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart for checkout")
	}
	if vendorFilter != nil {
		filtered := groups[:0]
		for _, group := range groups {
			if group.VendorUserID == *vendorFilter {
				filtered = append(filtered, group)
			}
		}
		groups = filtered
	}
	if len(groups) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	currency := s.config.Checkout.Currency

	var result *usecase.CheckoutResult
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		orderRepo := f.NewOrderRepository()

		orderIDs := make([]uuid.UUID, 0, len(groups))
		lineItems := make([]service.CheckoutLineItem, 0)

		for _, group := range groups {
			order := &entity.Order{
				UserID:       identity.UserID,
				VendorUserID: group.VendorUserID,
				Status:       entity.OrderStatusDraft,
				TotalPrice:   group.TotalPrice,
			}
			if err := orderRepo.Create(ctx, order); err != nil {
				return err
			}
			orderIDs = append(orderIDs, order.ID)

			items := make([]entity.OrderItem, 0, len(group.Items))
			for _, item := range group.Items {
				items = append(items, entity.OrderItem{
					OrderID:   order.ID,
					ProductID: item.ProductID,
					OptionIDs: item.OptionIDs,
					Quantity:  item.Quantity,
					Price:     item.Price,
				})

				lineItems = append(lineItems, service.CheckoutLineItem{
					Name:        item.Title,
					Description: optionDescription(item.Options),
					ImageURL:    item.ImageURL,
					UnitAmount:  item.Price,
					Quantity:    item.Quantity,
					Currency:    currency,
				})
			}
			if err := orderRepo.CreateItems(ctx, items); err != nil {
				return err
			}
		}

		// The gateway call is deliberately inside the transaction: a gateway
		// failure must leave no draft orders behind.
		session, err := s.gateway.CreateCheckoutSession(ctx, &service.CheckoutSessionParams{
			LineItems:     lineItems,
			CustomerEmail: identity.Email,
			SuccessURL:    s.config.Stripe.SuccessURL,
			CancelURL:     s.config.Stripe.CancelURL,
		})
		if err != nil {
			return err
		}

		if err := orderRepo.SetSessionID(ctx, orderIDs, session.ID); err != nil {
			return err
		}

		result = &usecase.CheckoutResult{
			SessionID:   session.ID,
			RedirectURL: session.URL,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// optionDescription renders the selected option names as the line's display
// description, for example "Color: Walnut, Size: Large".
func optionDescription(options []usecase.SelectedOption) string {
	if len(options) == 0 {
		return ""
	}

	parts := make([]string, 0, len(options))
	for _, option := range options {
		parts = append(parts, option.Type+": "+option.Name)
	}

	return strings.Join(parts, ", ")
}
