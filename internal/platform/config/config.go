// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values. An optional .env file
is loaded first with 'joho/godotenv' for local development; real environment
variables always win.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to components through
their constructors.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/taibuivan/persona/internal/platform/sec"
	"github.com/taibuivan/persona/pkg/split"
)

// # Configuration Schema

// Config holds all runtime configuration for the API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"3000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// RedisURL enables the refresh-token denylist when set.
	RedisURL string `env:"REDIS_URL"`

	// Token signing secrets, one per token kind. Both are mandatory.
	AccessTokenSecret  string        `env:"ACCESS_TOKEN_SECRET"`
	RefreshTokenSecret string        `env:"REFRESH_TOKEN_SECRET"`
	AccessTokenTTL     time.Duration `env:"ACCESS_TOKEN_TTL"  envDefault:"15m"`
	RefreshTokenTTL    time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"168h"`

	// BcryptCost is the work factor for stored password hashes.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// MetricsPath exposes Prometheus metrics.
	MetricsPath string `env:"METRICS_PATH" envDefault:"/metrics"`

	// AllowedOrigins is a comma-separated CORS allow-list used outside development.
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
}

// # Configuration Loading

// Load reads an optional .env file and parses environment variables into a [Config].
//
// A missing token secret is reported as [sec.ErrConfigurationMissing] so the
// process refuses to start.
func Load(dotenvFiles ...string) (*Config, error) {
	if err := godotenv.Load(dotenvFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to read .env file: %w", err)
	}

	cfg := &Config{}

	// Fields tagged required,notEmpty fail here when unset or blank.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces the token invariants that struct tags cannot express.
func (c *Config) validate() error {
	if strings.TrimSpace(c.AccessTokenSecret) == "" {
		return fmt.Errorf("config: ACCESS_TOKEN_SECRET: %w", sec.ErrConfigurationMissing)
	}
	if strings.TrimSpace(c.RefreshTokenSecret) == "" {
		return fmt.Errorf("config: REFRESH_TOKEN_SECRET: %w", sec.ErrConfigurationMissing)
	}
	if c.AccessTokenSecret == c.RefreshTokenSecret {
		return fmt.Errorf("config: %w", sec.ErrSecretsNotDistinct)
	}
	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("config: token TTLs must be positive")
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// Origins returns the parsed CORS allow-list.
func (c *Config) Origins() []string {
	return split.Comma(c.AllowedOrigins)
}

// RevocationEnabled reports whether a Redis denylist backs refresh tokens.
func (c *Config) RevocationEnabled() bool {
	return c.RedisURL != ""
}
