package stripe

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
)

// Event names the two webhook deliveries the reconciler consumes.
const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
	EventChargeUpdated            = "charge.updated"
)

// WebhookVerifier checks the Stripe-Signature header and decodes the payload
// into domain webhook events. Verification always happens before any payload
// field is trusted.
type WebhookVerifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewWebhookVerifier builds a verifier from the Stripe configuration.
func NewWebhookVerifier(cfg *config.StripeConfig) *WebhookVerifier {
	return &WebhookVerifier{
		secret:    []byte(cfg.WebhookSecret),
		tolerance: cfg.WebhookTolerance,
		now:       time.Now,
	}
}

// VerifySignature validates the "t=<unix>,v1=<hex>" signature header against
// the raw payload. Multiple v1 entries are accepted if any verifies.
func (v *WebhookVerifier) VerifySignature(payload []byte, header string) error {
	var timestamp string
	var signatures [][]byte

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}

		switch key {
		case "t":
			timestamp = value
		case "v1":
			signature, err := hex.DecodeString(value)
			if err == nil {
				signatures = append(signatures, signature)
			}
		}
	}

	if timestamp == "" || len(signatures) == 0 {
		return domainerrors.ErrWebhookSignatureInvalid
	}

	if v.tolerance > 0 {
		unix, err := strconv.ParseInt(timestamp, 10, 64)
		if err != nil {
			return domainerrors.ErrWebhookSignatureInvalid
		}
		if v.now().Sub(time.Unix(unix, 0)).Abs() > v.tolerance {
			return domainerrors.ErrWebhookSignatureInvalid.WithDetails("signed timestamp outside tolerance")
		}
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	expected := mac.Sum(nil)

	for _, signature := range signatures {
		if hmac.Equal(expected, signature) {
			return nil
		}
	}

	return domainerrors.ErrWebhookSignatureInvalid
}

// webhookEnvelope is the wire shape shared by every Stripe event.
type webhookEnvelope struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

// ParseEvent decodes a verified payload into one of the domain webhook event
// types. Event types the reconciler does not consume return (nil, nil) so the
// handler can acknowledge them without acting.
func (v *WebhookVerifier) ParseEvent(payload []byte) (any, error) {
	var envelope webhookEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, domainerrors.ErrWebhookSignatureInvalid.WithDetails("malformed event payload")
	}

	switch envelope.Type {
	case EventCheckoutSessionCompleted:
		var object struct {
			ID            string `json:"id"`
			PaymentIntent string `json:"payment_intent"`
		}
		if err := json.Unmarshal(envelope.Data.Object, &object); err != nil {
			return nil, domainerrors.ErrWebhookSignatureInvalid.WithDetails("malformed checkout session object")
		}

		return &service.CheckoutSessionCompleted{
			EventID:       envelope.ID,
			SessionID:     object.ID,
			PaymentIntent: object.PaymentIntent,
		}, nil

	case EventChargeUpdated:
		var object struct {
			PaymentIntent      string `json:"payment_intent"`
			BalanceTransaction string `json:"balance_transaction"`
		}
		if err := json.Unmarshal(envelope.Data.Object, &object); err != nil {
			return nil, domainerrors.ErrWebhookSignatureInvalid.WithDetails("malformed charge object")
		}

		// The charge may be updated before funds settle; without a balance
		// transaction there is nothing to reconcile yet.
		if object.BalanceTransaction == "" {
			return nil, nil
		}

		return &service.ChargeSettled{
			EventID:              envelope.ID,
			PaymentIntent:        object.PaymentIntent,
			BalanceTransactionID: object.BalanceTransaction,
		}, nil

	default:
		return nil, nil
	}
}
