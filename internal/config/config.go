package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Asset store backends selectable via ASSET_STORE.
const (
	StoreMock     = "mock"
	StorePostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Asset store
	AssetStore string

	// Simulated latency for the mock store. Mirrors the latency the
	// dashboard was originally built against.
	MockListLatency   time.Duration
	MockLookupLatency time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),
		AssetStore: getEnv("ASSET_STORE", StoreMock),

		MockListLatency:   getEnvMillis("MOCK_LIST_LATENCY_MS", 800),
		MockLookupLatency: getEnvMillis("MOCK_LOOKUP_LATENCY_MS", 500),
	}

	if config.AssetStore != StoreMock && config.AssetStore != StorePostgres {
		log.Printf("Warning: unknown ASSET_STORE %q, falling back to %q\n", config.AssetStore, StoreMock)
		config.AssetStore = StoreMock
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvMillis parses a non-negative millisecond value from the environment.
func getEnvMillis(key string, defaultMillis int) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return time.Duration(defaultMillis) * time.Millisecond
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("Warning: invalid %s value %q, falling back to %dms\n", key, raw, defaultMillis)
		return time.Duration(defaultMillis) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
