package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port string

	// HTTP server timeouts.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Converter screen retention.
	SessionMaxCount int           // max number of screens held (0 = unlimited)
	SessionMaxIdle  time.Duration // idle age before a screen is pruned (0 = never)

	// PruneInterval controls how often idle screens are pruned.
	PruneInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")

	var err error
	if cfg.ReadTimeout, err = getenvDuration("HTTP_READ_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.WriteTimeout, err = getenvDuration("HTTP_WRITE_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	cfg.SessionMaxCount = getenvInt("SESSION_MAX_COUNT", 1000)

	if cfg.SessionMaxIdle, err = getenvDuration("SESSION_MAX_IDLE", "30m"); err != nil {
		return nil, err
	}
	if cfg.PruneInterval, err = getenvDuration("PRUNE_INTERVAL", "1m"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
