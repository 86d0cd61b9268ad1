package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0o600))
}

func TestLoadWithEnv(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "test", `
env:
  env: test
  serviceName: bazaar
http:
  port: 8080
stripe:
  secretKey: sk_test_123
  webhookSecret: whsec_123
  webhookTolerance: 5m
checkout:
  currency: usd
  platformFeePct: 10
cart:
  cookieSecret: cart-secret
`)

	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "bazaar", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Stripe)
	assert.Equal(t, "sk_test_123", cfg.Stripe.SecretKey)
	assert.Equal(t, 5*time.Minute, cfg.Stripe.WebhookTolerance)
	require.NotNil(t, cfg.Checkout)
	assert.InDelta(t, 10.0, cfg.Checkout.PlatformFeePct, 0.0001)
}

func TestLoadWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "test", `
http:
  port: 8080
stripe:
  secretKey: from-file
`)
	t.Setenv("STRIPE_SECRETKEY", "from-env")
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	require.NotNil(t, cfg.Stripe)
	assert.Equal(t, "from-env", cfg.Stripe.SecretKey)
}

func TestLoadWithEnvMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("nope")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, defaultCartCookieName, cfg.Cart.CookieName)
	assert.Equal(t, defaultCartCookieTTL, cfg.Cart.CookieTTL)
	assert.Equal(t, defaultCurrency, cfg.Checkout.Currency)
	assert.Equal(t, time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC), cfg.Payout.Epoch)
	assert.Zero(t, cfg.Payout.Interval)
}
