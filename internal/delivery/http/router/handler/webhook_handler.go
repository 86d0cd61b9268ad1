package handler

import (
	"io"
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/stripe"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	SettlementUC usecase.SettlementUsecase
	Verifier     *stripe.WebhookVerifier
	Logger       *slog.Logger
}

// WebhookHandler receives the payment gateway's webhook deliveries.
type WebhookHandler struct {
	settlementUC usecase.SettlementUsecase
	verifier     *stripe.WebhookVerifier
	logger       *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	return &WebhookHandler{
		settlementUC: params.SettlementUC,
		verifier:     params.Verifier,
		logger:       params.Logger,
	}
}

// HandleStripeEvent verifies the delivery's signature, decodes the event and
// dispatches it. A non-2xx response makes the gateway redeliver, so only
// errors that a retry can fix propagate; events the reconciler does not
// consume are acknowledged untouched.
func (h *WebhookHandler) HandleStripeEvent(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_PAYLOAD", "failed to read webhook payload")
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if err := h.verifier.VerifySignature(payload, signature); err != nil {
		return response.HandleAppError(c, err)
	}

	event, err := h.verifier.ParseEvent(payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	switch typed := event.(type) {
	case *service.CheckoutSessionCompleted:
		h.logger.Info("processing checkout session completed",
			slog.String("eventID", typed.EventID),
			slog.String("sessionID", typed.SessionID),
		)
		err = h.settlementUC.HandleCheckoutSessionCompleted(c.Request().Context(), typed)

	case *service.ChargeSettled:
		h.logger.Info("processing charge settlement",
			slog.String("eventID", typed.EventID),
			slog.String("paymentIntent", typed.PaymentIntent),
		)
		err = h.settlementUC.HandleChargeSettled(c.Request().Context(), typed)

	default:
		// Event types outside the reconciler's interest are acknowledged so
		// the gateway stops redelivering them.
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"received": "true"})
}
