package config

import (
	"context"
	"errors"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	envProduction = "production"
	devSecret     = "supersecretkey"
)

type Config struct {
	Port          string        `env:"PORT, default=8000"`
	Env           string        `env:"ENV, default=development"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL, default=24h"`
	LogLevel      string        `env:"LOG_LEVEL, default=info"`
	LogPretty     bool          `env:"LOG_PRETTY, default=false"`

	SQLite SQLiteConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

type SQLiteConfig struct {
	Path        string `env:"SQLITE_PATH, default=./data/tracker.db"`
	SeedOnStart bool   `env:"SEED_ON_START, default=true"`
}

// MongoConfig enables the audit trail when URI is set.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=billable"`
}

// RedisConfig enables session revocation when Addr is set.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

func (c *Config) Production() bool { return c.Env == envProduction }

// Validate fills development defaults and rejects unsafe production settings.
func (c *Config) Validate() error {
	if c.SessionSecret == "" {
		if c.Production() {
			return errors.New("SESSION_SECRET is required in production")
		}
		c.SessionSecret = devSecret
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.SQLite.Path == "" {
		return errors.New("SQLITE_PATH must not be empty")
	}
	return nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through an arbitrary lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
