package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the engine
type Config struct {
	Content ContentConfig
	Redis   RedisConfig
	Combat  CombatConfig
}

// ContentConfig holds content catalog configuration
type ContentConfig struct {
	Dir string // Directory containing the YAML content catalogs
}

// RedisConfig holds Redis-specific configuration for the template store
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CombatConfig holds combat resolution tuning
type CombatConfig struct {
	ChainDepthCap int // Max generations of chained trigger events per dispatch
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Content: ContentConfig{
			Dir: getEnvOrDefault("CONTENT_DIR", "content"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Combat: CombatConfig{
			ChainDepthCap: getEnvAsIntOrDefault("CHAIN_DEPTH_CAP", 8),
		},
	}

	if cfg.Combat.ChainDepthCap < 1 {
		return nil, fmt.Errorf("CHAIN_DEPTH_CAP must be at least 1")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
