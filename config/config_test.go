package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "file", cfg.StoreBackend)
	assert.Equal(t, "kerala_lottery:", cfg.RedisKeyPrefix)
	assert.Equal(t, int64(2000), cfg.DefaultWalletBalance)
	assert.Equal(t, time.Duration(0), cfg.PurchaseDelay)
	assert.True(t, cfg.EnableMetrics)
	assert.False(t, cfg.NotificationsEnabled())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DEFAULT_WALLET_BALANCE", "500")
	t.Setenv("PURCHASE_DELAY", "1500ms")
	t.Setenv("ENABLE_METRICS", "false")
	t.Setenv("PUBNUB_PUBLISH_KEY", "pub")
	t.Setenv("PUBNUB_SUBSCRIBE_KEY", "sub")

	cfg := LoadConfig()

	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, int64(500), cfg.DefaultWalletBalance)
	assert.Equal(t, 1500*time.Millisecond, cfg.PurchaseDelay)
	assert.False(t, cfg.EnableMetrics)
	assert.True(t, cfg.NotificationsEnabled())
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("CHECK_DELAY", "soon")

	assert.Equal(t, 2*time.Second, getEnvAsDuration("CHECK_DELAY", "2s"))
}

func TestGetEnvAsInt_Invalid(t *testing.T) {
	t.Setenv("REDIS_DB", "two")

	assert.Equal(t, 7, getEnvAsInt("REDIS_DB", 7))
}
