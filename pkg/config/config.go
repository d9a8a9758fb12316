package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv          = "PAYPOINT_APP_ENV"
	EnvPort            = "PAYPOINT_APP_PORT"
	EnvUpstreamBaseURL = "PAYPOINT_UPSTREAM_BASE_URL"
	EnvUpstreamAPIKey  = "PAYPOINT_UPSTREAM_API_KEY"
	EnvRedisURL        = "PAYPOINT_REDIS_URL"
	EnvJWTSecret       = "PAYPOINT_JWT_SECRET"
	EnvJWTIssuer       = "PAYPOINT_JWT_ISSUER"
	EnvSaleTaxRate     = "PAYPOINT_SALE_TAX_RATE"
)

type Config struct {
	App           AppConfig
	Upstream      UpstreamConfig
	Redis         RedisConfig
	JWT           JWTConfig
	AuthRateLimit AuthRateLimitConfig
	Sale          SaleConfig
	Invoice       InvoiceConfig
	Journal       JournalConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Sale.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PAYPOINT_APP_ENV" required:"true"`
	Port         string `envconfig:"PAYPOINT_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PAYPOINT_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PAYPOINT_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// UpstreamConfig points the register at the PayPoint platform API that owns
// products, users, customers, and order persistence.
type UpstreamConfig struct {
	BaseURL       string        `envconfig:"PAYPOINT_UPSTREAM_BASE_URL" required:"true"`
	APIKey        string        `envconfig:"PAYPOINT_UPSTREAM_API_KEY"`
	Timeout       time.Duration `envconfig:"PAYPOINT_UPSTREAM_TIMEOUT" default:"10s"`
	SubmitTimeout time.Duration `envconfig:"PAYPOINT_UPSTREAM_SUBMIT_TIMEOUT" default:"8s"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PAYPOINT_REDIS_URL" required:"true"`
	Address      string        `envconfig:"PAYPOINT_REDIS_ADDR"`
	Password     string        `envconfig:"PAYPOINT_REDIS_PASSWORD"`
	DB           int           `envconfig:"PAYPOINT_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PAYPOINT_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PAYPOINT_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PAYPOINT_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PAYPOINT_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PAYPOINT_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"PAYPOINT_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"PAYPOINT_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"PAYPOINT_JWT_EXPIRATION_MINUTES" default:"480"`
	SessionTTLMinutes int    `envconfig:"PAYPOINT_SESSION_TTL_MINUTES" default:"720"`
}

// SessionTTL returns the register session TTL configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"PAYPOINT_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"PAYPOINT_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"PAYPOINT_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

// SaleConfig carries the arithmetic knobs of a sale. Tax rate and the default
// discount are jurisdiction and promotion dependent, never hardcoded.
type SaleConfig struct {
	TaxRate         string `envconfig:"PAYPOINT_SALE_TAX_RATE" default:"0.18"`
	DefaultDiscount string `envconfig:"PAYPOINT_SALE_DEFAULT_DISCOUNT" default:"0"`
	PaymentMethod   string `envconfig:"PAYPOINT_SALE_PAYMENT_METHOD" default:"cash"`
}

// TaxRateDecimal parses the configured tax rate.
func (s SaleConfig) TaxRateDecimal() decimal.Decimal {
	d, err := decimal.NewFromString(s.TaxRate)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// DefaultDiscountDecimal parses the configured default discount amount.
func (s SaleConfig) DefaultDiscountDecimal() decimal.Decimal {
	d, err := decimal.NewFromString(s.DefaultDiscount)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Validate rejects unusable sale settings.
func (s SaleConfig) Validate() error {
	rate, err := decimal.NewFromString(s.TaxRate)
	if err != nil {
		return fmt.Errorf("invalid tax rate %q: %w", s.TaxRate, err)
	}
	if rate.IsNegative() {
		return fmt.Errorf("tax rate must be non-negative, got %s", s.TaxRate)
	}
	disc, err := decimal.NewFromString(s.DefaultDiscount)
	if err != nil {
		return fmt.Errorf("invalid default discount %q: %w", s.DefaultDiscount, err)
	}
	if disc.IsNegative() {
		return fmt.Errorf("default discount must be non-negative, got %s", s.DefaultDiscount)
	}
	return nil
}

// InvoiceConfig describes the issuer identity printed on every invoice and
// the layout knobs of the renderer. Issuer fields default to the house brand.
type InvoiceConfig struct {
	IssuerName    string `envconfig:"PAYPOINT_INVOICE_ISSUER_NAME" default:"PayPoint Solutions"`
	IssuerAddress string `envconfig:"PAYPOINT_INVOICE_ISSUER_ADDRESS" default:"123 Main Street, Cityville, Country"`
	IssuerPhone   string `envconfig:"PAYPOINT_INVOICE_ISSUER_PHONE" default:"+1 (555) 123-4567"`
	IssuerEmail   string `envconfig:"PAYPOINT_INVOICE_ISSUER_EMAIL" default:"info@paypoint.com"`
	IssuerTaxID   string `envconfig:"PAYPOINT_INVOICE_ISSUER_TAX_ID" default:"GSTIN123456789"`
	NameBudget    int    `envconfig:"PAYPOINT_INVOICE_NAME_BUDGET" default:"35"`
}

type JournalConfig struct {
	Path string `envconfig:"PAYPOINT_JOURNAL_PATH" default:"paypoint-journal.db"`
}
