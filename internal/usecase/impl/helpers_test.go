package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/repository"
	mockrepo "bazaar/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Stripe = &config.StripeConfig{
		SuccessURL: "https://shop.example.com/checkout/success",
		CancelURL:  "https://shop.example.com/checkout/cancel",
	}
	cfg.Checkout = &config.CheckoutConfig{
		Currency:       "usd",
		PlatformFeePct: 10,
	}
	cfg.Payout = &config.PayoutConfig{
		Epoch: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	return cfg
}

// fakeRepositoryFactory hands the test's mocks to transactional code.
type fakeRepositoryFactory struct {
	productRepo *mockrepo.MockProductRepository
	cartRepo    *mockrepo.MockCartRepository
	orderRepo   *mockrepo.MockOrderRepository
	payoutRepo  *mockrepo.MockPayoutRepository
	vendorRepo  *mockrepo.MockVendorRepository
	webhookRepo *mockrepo.MockWebhookEventRepository
}

func (f *fakeRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.productRepo
}

func (f *fakeRepositoryFactory) NewCartRepository() repository.CartRepository {
	return f.cartRepo
}

func (f *fakeRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.orderRepo
}

func (f *fakeRepositoryFactory) NewPayoutRepository() repository.PayoutRepository {
	return f.payoutRepo
}

func (f *fakeRepositoryFactory) NewVendorRepository() repository.VendorRepository {
	return f.vendorRepo
}

func (f *fakeRepositoryFactory) NewWebhookEventRepository() repository.WebhookEventRepository {
	return f.webhookRepo
}

// fakeTransactionManager runs the function directly against the fake factory.
// An error from the function surfaces like a rolled back transaction.
type fakeTransactionManager struct {
	factory *fakeRepositoryFactory
	calls   int
}

func (m *fakeTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.calls++

	return fn(m.factory)
}

func int64Ptr(v int64) *int64 { return &v }

func int32Ptr(v int32) *int32 { return &v }

func strPtr(v string) *string { return &v }
