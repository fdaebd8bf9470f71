package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string

	// Store configuration
	StoreBackend string // memory, file, redis, sqlite
	StoreDir     string
	SQLiteDSN    string

	// Redis configuration
	RedisURL       string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	// PubNub configuration
	PubNubPublishKey   string
	PubNubSubscribeKey string
	PubNubSecretKey    string

	// Account defaults
	DefaultWalletBalance int64

	// Simulated processing delays
	PurchaseDelay time.Duration
	CheckDelay    time.Duration

	// Monitoring
	EnableMetrics bool
	MetricsPort   string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),

		// Store
		StoreBackend: getEnv("STORE_BACKEND", "file"),
		StoreDir:     getEnv("STORE_DIR", "lottery_data"),
		SQLiteDSN:    getEnv("SQLITE_DSN", "lottery_data/store.db"),

		// Redis
		RedisURL:       getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),
		RedisKeyPrefix: getEnv("REDIS_KEY_PREFIX", "kerala_lottery:"),

		// PubNub
		PubNubPublishKey:   getEnv("PUBNUB_PUBLISH_KEY", ""),
		PubNubSubscribeKey: getEnv("PUBNUB_SUBSCRIBE_KEY", ""),
		PubNubSecretKey:    getEnv("PUBNUB_SECRET_KEY", ""),

		// Accounts
		DefaultWalletBalance: int64(getEnvAsInt("DEFAULT_WALLET_BALANCE", 2000)),

		// Delays
		PurchaseDelay: getEnvAsDuration("PURCHASE_DELAY", "0s"),
		CheckDelay:    getEnvAsDuration("CHECK_DELAY", "0s"),

		// Monitoring
		EnableMetrics: getEnvAsBool("ENABLE_METRICS", true),
		MetricsPort:   getEnv("METRICS_PORT", "9090"),
	}
}

// NotificationsEnabled reports whether purchase notifications can be published.
func (c *Config) NotificationsEnabled() bool {
	return c.PubNubPublishKey != "" && c.PubNubSubscribeKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}

	// If parsing fails, fall back to the default value
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
