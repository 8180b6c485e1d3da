// Package config loads the process-wide configuration from environment
// variables. The configuration is parsed once at startup and treated as
// immutable for the process lifetime.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every knob the server needs. The signing secret is required;
// everything else has a sensible default.
type Config struct {
	// Port is the HTTP listen port.
	Port string `env:"PORT" envDefault:"8080"`

	// JWTSecret signs and verifies issued tokens. Required, non-empty.
	JWTSecret string `env:"JWT_SECRET,notEmpty"`

	// TokenExpiry is the lifetime of issued tokens.
	TokenExpiry time.Duration `env:"TOKEN_EXPIRY" envDefault:"2h"`

	// BcryptCost is the password hashing work factor.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// DBDriver selects the database backend: "sqlite" or "postgres".
	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`

	// DBDSN is the database connection string. For sqlite this is a file path.
	DBDSN string `env:"DB_DSN" envDefault:"auth.db"`

	// RunMigrations enables schema auto-migration at startup.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"false"`

	// RedisAddr enables the user lookup cache when set. Empty disables caching.
	RedisAddr string `env:"REDIS_ADDR"`

	// UserCacheTTL bounds how long cached user lookups are served.
	UserCacheTTL time.Duration `env:"USER_CACHE_TTL" envDefault:"5m"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
