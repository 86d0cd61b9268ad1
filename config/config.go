// Package config loads the service configuration from YAML files with
// environment variable overrides.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port"`
	} `json:"http" yaml:"http"`

	Postgres *PostgresConfig `json:"postgres" yaml:"postgres"`

	Stripe *StripeConfig `json:"stripe" yaml:"stripe"`

	Checkout *CheckoutConfig `json:"checkout" yaml:"checkout"`

	Cart *CartConfig `json:"cart" yaml:"cart"`

	Payout *PayoutConfig `json:"payout" yaml:"payout"`

	// SecretKey signs the access tokens whose claims carry the shopper identity.
	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PostgresConfig holds the database connection settings.
type PostgresConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	User     string `json:"user" yaml:"user"`
	Password string `json:"password" yaml:"password"`
	DBName   string `json:"dbName" yaml:"dbName"`
	SSLMode  string `json:"sslMode" yaml:"sslMode"`

	MaxIdleConns    int           `json:"maxIdleConns" yaml:"maxIdleConns"`
	MaxOpenConns    int           `json:"maxOpenConns" yaml:"maxOpenConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime" yaml:"connMaxLifetime"`
}

// StripeConfig holds the payment gateway credentials and webhook settings.
type StripeConfig struct {
	BaseAPIURL    string `json:"baseApiUrl" yaml:"baseApiUrl"`
	SecretKey     string `json:"secretKey" yaml:"secretKey"`
	WebhookSecret string `json:"webhookSecret" yaml:"webhookSecret"`
	SuccessURL    string `json:"successUrl" yaml:"successUrl"`
	CancelURL     string `json:"cancelUrl" yaml:"cancelUrl"`

	// Tolerance for the signed webhook timestamp. Zero disables the check.
	WebhookTolerance time.Duration `json:"webhookTolerance" yaml:"webhookTolerance"`
}

// CheckoutConfig holds settlement constants.
type CheckoutConfig struct {
	// ISO currency code used for sessions, transfers and line items.
	Currency string `json:"currency" yaml:"currency"`

	// PlatformFeePct is the marketplace commission in percent, applied to the
	// order total net of the processor fee.
	PlatformFeePct float64 `json:"platformFeePct" yaml:"platformFeePct"`
}

// CartConfig holds the ephemeral (cookie) cart backend settings.
type CartConfig struct {
	CookieName   string        `json:"cookieName" yaml:"cookieName"`
	CookieSecret string        `json:"cookieSecret" yaml:"cookieSecret"`
	CookieTTL    time.Duration `json:"cookieTtl" yaml:"cookieTtl"`
}

// PayoutConfig holds the vendor payout batch settings.
type PayoutConfig struct {
	// Epoch is the lower bound of the very first payout window of a vendor.
	Epoch time.Time `json:"epoch" yaml:"epoch"`

	// Interval between batch runs; zero means run once and exit.
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// PubSubConfig defines Pub/Sub configuration for order event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

const (
	defaultCartCookieName = "cartItems"
	defaultCartCookieTTL  = 360 * 24 * time.Hour
	defaultCurrency       = "usd"
)

// LoadWithEnv loads <env>.yaml through koanf and overlays environment variables.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Environment variables override file values. Each ENV_VAR segment is aligned
	// with the existing YAML keys so overrides land on the same path:
	// STRIPE_SECRETKEY -> stripe.secretKey
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToTimeHookFunc(time.RFC3339),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		matched := segment
		var next map[string]any
		for key, value := range current {
			if strings.EqualFold(key, segment) {
				matched = key
				next, _ = value.(map[string]any)

				break
			}
		}

		canonical = append(canonical, matched)
		current = next
	}

	return strings.Join(canonical, ".")
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Cart == nil {
		c.Cart = &CartConfig{}
	}
	if c.Cart.CookieName == "" {
		c.Cart.CookieName = defaultCartCookieName
	}
	if c.Cart.CookieTTL <= 0 {
		c.Cart.CookieTTL = defaultCartCookieTTL
	}

	if c.Checkout == nil {
		c.Checkout = &CheckoutConfig{}
	}
	if c.Checkout.Currency == "" {
		c.Checkout.Currency = defaultCurrency
	}

	if c.Payout == nil {
		c.Payout = &PayoutConfig{}
	}
	if c.Payout.Epoch.IsZero() {
		c.Payout.Epoch = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
}
