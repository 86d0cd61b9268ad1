// Package stripe implements the payment gateway port against the Stripe HTTP
// API. Requests are form-encoded per the Stripe wire format; amounts are minor
// currency units throughout, so no float conversion happens anywhere.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bazaar/config"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
)

const (
	defaultBaseAPIURL = "https://api.stripe.com"
	requestTimeout    = 30 * time.Second
)

// Client is the HTTP implementation of service.PaymentGateway.
type Client struct {
	httpClient *http.Client
	baseAPIURL string
	secretKey  string
}

// NewClient builds a gateway client from the Stripe configuration.
func NewClient(cfg *config.StripeConfig) *Client {
	baseAPIURL := cfg.BaseAPIURL
	if baseAPIURL == "" {
		baseAPIURL = defaultBaseAPIURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		baseAPIURL: strings.TrimRight(baseAPIURL, "/"),
		secretKey:  cfg.SecretKey,
	}
}

// CreateCheckoutSession opens a hosted checkout session covering the given
// line items.
func (c *Client) CreateCheckoutSession(ctx context.Context, params *service.CheckoutSessionParams) (*service.CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	if params.CustomerEmail != "" {
		form.Set("customer_email", params.CustomerEmail)
	}

	for i, item := range params.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[quantity]", strconv.FormatInt(int64(item.Quantity), 10))
		form.Set(prefix+"[price_data][currency]", item.Currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		if item.Description != "" {
			form.Set(prefix+"[price_data][product_data][description]", item.Description)
		}
		if item.ImageURL != "" {
			form.Set(prefix+"[price_data][product_data][images][0]", item.ImageURL)
		}
	}

	var session struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/checkout/sessions", form, &session); err != nil {
		return nil, err
	}

	return &service.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// GetBalanceTransaction retrieves a settled charge's balance transaction.
func (c *Client) GetBalanceTransaction(ctx context.Context, id string) (*service.BalanceTransaction, error) {
	var transaction struct {
		ID         string `json:"id"`
		Amount     int64  `json:"amount"`
		Fee        int64  `json:"fee"`
		FeeDetails []struct {
			Type   string `json:"type"`
			Amount int64  `json:"amount"`
		} `json:"fee_details"`
	}
	if err := c.do(ctx, http.MethodGet, "/v1/balance_transactions/"+url.PathEscape(id), nil, &transaction); err != nil {
		return nil, err
	}

	feeDetails := make([]service.FeeDetail, 0, len(transaction.FeeDetails))
	for _, detail := range transaction.FeeDetails {
		feeDetails = append(feeDetails, service.FeeDetail{Type: detail.Type, Amount: detail.Amount})
	}

	return &service.BalanceTransaction{
		ID:         transaction.ID,
		Amount:     transaction.Amount,
		Fee:        transaction.Fee,
		FeeDetails: feeDetails,
	}, nil
}

// CreateTransfer moves amount (minor units) to a vendor's connected account.
func (c *Client) CreateTransfer(ctx context.Context, accountID string, amount int64, currency, description string) (*service.Transfer, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("destination", accountID)
	if description != "" {
		form.Set("description", description)
	}

	var transfer struct {
		ID string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/transfers", form, &transfer); err != nil {
		return nil, err
	}

	return &service.Transfer{ID: transfer.ID}, nil
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseAPIURL+path, body)
	if err != nil {
		return errors.Wrap(err, "failed to build stripe request")
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.ErrGatewayUnavailable.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiError struct {
			Error struct {
				Type    string `json:"type"`
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiError)

		return domainerrors.ErrGatewayUnavailable.WithDetails(
			fmt.Sprintf("stripe %s %s: status %d: %s", method, path, resp.StatusCode, apiError.Error.Message),
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode stripe response")
	}

	return nil
}
