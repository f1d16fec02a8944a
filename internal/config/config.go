package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains storefront configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"DATABASE_"`
	Session  Session  `envPrefix:"SESSION_"`
	Stripe   Stripe   `envPrefix:"STRIPE_"`
	Catalog  Catalog  `envPrefix:"CATALOG_"`
	Storage  Storage  `envPrefix:"MINIO_"`
	Rabbit   Rabbit   `envPrefix:"RABBIT_"`
}

// HTTP contains web server parameters.
type HTTP struct {
	Addr               string `env:"ADDR" envDefault:":5000"`
	BaseURL            string `env:"BASE_URL" envDefault:"http://localhost:5000"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains the user database connection string. The scheme selects
// the driver: sqlite:// or postgres://.
type Database struct {
	URL string `env:"URL" envDefault:"sqlite:///vanashree.db"`
}

// DevSessionSecret is the signing secret used when SESSION_SECRET is unset.
// It is public, so HTTPS deployments must override it.
const DevSessionSecret = "devsecret"

// Session contains session signing parameters.
type Session struct {
	Secret      string        `env:"SECRET" envDefault:"devsecret"`
	TTL         time.Duration `env:"TTL" envDefault:"24h"`
	RememberTTL time.Duration `env:"REMEMBER_TTL" envDefault:"8760h"`
}

// Stripe contains payment processor credentials.
type Stripe struct {
	SecretKey      string `env:"SECRET_KEY"`
	PublishableKey string `env:"PUBLISHABLE_KEY"`
}

// Catalog points at the product list. An empty path selects the bundled
// catalog unless object storage is configured.
type Catalog struct {
	Path      string `env:"PATH"`
	ObjectKey string `env:"OBJECT_KEY" envDefault:"products.json"`
}

// Storage contains object storage parameters. An empty endpoint disables it.
type Storage struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"vanashree-catalog"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
}

// Rabbit contains the contact relay broker parameters. An empty URL disables it.
type Rabbit struct {
	URL   string `env:"URL"`
	Queue string `env:"QUEUE" envDefault:"storefront.contact"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Session.Secret == "" {
		return errors.New("SESSION_SECRET must not be empty")
	}
	if c.HTTP.EnableHTTPS && c.Session.Secret == DevSessionSecret {
		return errors.New("SESSION_SECRET must be set when HTTPS is enabled")
	}
	return nil
}
