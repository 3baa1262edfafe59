// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the gophtasks server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP API.
//   - DatabaseDSN: postgres://... (pgx) or sqlite://<path> / sqlite::memory:.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - AccessTokenValidityDuration: token lifetime; zero issues tokens without expiry.
//   - BcryptCost: work factor for password hashes.
//   - LogLevel: debug, info, warn or error.
//   - OtelEndpoint: OTLP/HTTP collector URL; empty disables tracing.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	EndpointAddrHTTP            string        `env:"TASKS_HTTP_ADDR"`
	DatabaseDSN                 string        `env:"TASKS_DATABASE_DSN"`
	SecretKey                   string        `env:"TASKS_SECRET_KEY"`
	AccessTokenValidityDuration time.Duration `env:"TASKS_TOKEN_TTL"`
	BcryptCost                  int           `env:"TASKS_BCRYPT_COST"`
	LogLevel                    string        `env:"TASKS_LOG_LEVEL"`
	OtelEndpoint                string        `env:"TASKS_OTEL_ENDPOINT"`
	ShutdownTimeout             time.Duration `env:"TASKS_SHUTDOWN_TIMEOUT"`
}

// DefaultSecretKey is only suitable for local development.
const DefaultSecretKey = "dev-secret-key"

// LoadDefaults populates Config with development defaults.
// NOTE: SecretKey must be overridden outside of development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":3000"
	c.DatabaseDSN = "sqlite://tasks.db"
	c.SecretKey = DefaultSecretKey
	c.AccessTokenValidityDuration = 0
	c.BcryptCost = bcrypt.DefaultCost
	c.LogLevel = "info"
	c.OtelEndpoint = ""
	c.ShutdownTimeout = 5 * time.Second
}

// Validate reports settings the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.EndpointAddrHTTP == "" {
		errs = append(errs, errors.New("http address is required"))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database dsn is required"))
	}
	if c.SecretKey == "" {
		errs = append(errs, errors.New("secret key is required"))
	}
	if c.AccessTokenValidityDuration < 0 {
		errs = append(errs, errors.New("token validity must not be negative"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("bcrypt cost must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost))
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags
// taken from args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
