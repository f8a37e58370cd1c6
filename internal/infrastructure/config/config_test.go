package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, devSecret, cfg.SessionSecret)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "./data/tracker.db", cfg.SQLite.Path)
	assert.True(t, cfg.SQLite.SeedOnStart)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.Mongo.URI)
	assert.Equal(t, "billable", cfg.Mongo.Database)
	assert.False(t, cfg.Production())
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":           "9090",
		"SESSION_SECRET": "s3cret",
		"SESSION_TTL":    "2h",
		"SQLITE_PATH":    "/var/lib/billable/db.sqlite",
		"SEED_ON_START":  "false",
		"REDIS_ADDR":     "localhost:6379",
		"REDIS_DB":       "2",
		"MONGO_URI":      "mongodb://localhost:27017",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.SQLite.SeedOnStart)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{"ENV": "production"}))
	require.Error(t, err)

	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":            "production",
		"SESSION_SECRET": "x",
	}))
	require.NoError(t, err)
	assert.True(t, cfg.Production())
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{"SESSION_TTL": "0s"}))
	require.Error(t, err)
}
